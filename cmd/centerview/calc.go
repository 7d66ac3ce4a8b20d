package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/dshills/centerview/internal/center"
	"github.com/dshills/centerview/internal/center/geometry"
	"github.com/dshills/centerview/internal/config"
)

type calcFlags struct {
	viewportWidth int
	frameWidth    int
	left          int
	minSize       int
	maxSize       int
	maxScale      float64
	leftOffset    int
	rightOffset   int
	json          bool
}

// calcResult is what calc reports for one computation.
type calcResult struct {
	Mode    string
	Applied bool
	Pair    geometry.MarginPair
	Reason  center.Reason
}

func newCalcCmd(root *rootFlags) *cobra.Command {
	f := &calcFlags{}
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Print the margins centerview would apply",
		Long: `calc runs the margin calculation for a viewport without a terminal.
Unset sizing flags come from the configuration.

It prints "left/right", or "no-op" with a reason when nothing would be
applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load(cmd)
			if err != nil {
				return err
			}
			f.apply(cmd, &cfg.Center)
			if err := geometry.CheckSizing(cfg.Center); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
			}

			res, err := calculate(f.dimensions(), cfg.Center)
			if err != nil {
				return err
			}
			out := res.String()
			if f.json {
				if out, err = res.JSON(); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.IntVarP(&f.viewportWidth, "viewport-width", "w", 0, "Viewport width in columns (required)")
	fl.IntVar(&f.frameWidth, "frame-width", 0, "Frame width in columns (default: left + viewport width)")
	fl.IntVar(&f.left, "left", 0, "Viewport's leftmost column within the frame")
	fl.IntVar(&f.minSize, "min-size", 0, "Minimum viewport width to center")
	fl.IntVar(&f.maxSize, "max-size", 0, "Desired content width")
	fl.Float64Var(&f.maxScale, "max-scale", 0, "Desired content width as a fraction of the viewport")
	fl.IntVar(&f.leftOffset, "left-offset", 0, "Columns added to the left margin")
	fl.IntVar(&f.rightOffset, "right-offset", 0, "Columns added to the right margin")
	fl.BoolVar(&f.json, "json", false, "Print the result as JSON")
	_ = cmd.MarkFlagRequired("viewport-width")
	return cmd
}

// apply overlays the flags the user set onto c.
func (f *calcFlags) apply(cmd *cobra.Command, c *config.Centering) {
	flags := cmd.Flags()
	if flags.Changed("min-size") {
		c.MinSize = f.minSize
	}
	if flags.Changed("max-size") {
		c.MaxSize = f.maxSize
	}
	if flags.Changed("max-scale") {
		c.MaxScale = f.maxScale
	}
	if flags.Changed("left-offset") {
		c.MarginLeftOffset = f.leftOffset
	}
	if flags.Changed("right-offset") {
		c.MarginRightOffset = f.rightOffset
	}
}

func (f *calcFlags) dimensions() geometry.Dimensions {
	frame := f.frameWidth
	if frame <= 0 {
		frame = f.left + f.viewportWidth
	}
	return geometry.Dimensions{
		ViewportWidth: f.viewportWidth,
		FrameWidth:    frame,
		ViewportLeft:  f.left,
	}
}

// calculate applies the eligibility thresholds and the selected mode to
// one viewport. The single-window and ignore-list checks need a live
// layout and are not applied.
func calculate(d geometry.Dimensions, c config.Centering) (calcResult, error) {
	if d.ViewportWidth <= 0 {
		return calcResult{}, fmt.Errorf("viewport width must be positive, got %d", d.ViewportWidth)
	}

	res := calcResult{Mode: "relative"}
	if c.UseAbsoluteCentering {
		res.Mode = "absolute"
	}

	switch {
	case d.ViewportWidth < c.MinSize:
		res.Reason = center.ReasonTooSmallMin
		return res, nil
	case d.ViewportWidth < c.MaxSize:
		res.Reason = center.ReasonTooSmallMax
		return res, nil
	case geometry.CheckSizing(c) != nil:
		res.Reason = center.ReasonInvalidConfig
		return res, nil
	}

	if c.UseAbsoluteCentering {
		pair, ok := geometry.Absolute(d, c)
		if !ok {
			res.Reason = center.ReasonNoRoom
			return res, nil
		}
		res.Pair, res.Applied = pair, true
		return res, nil
	}

	res.Pair = geometry.Relative(d.ViewportWidth, c, geometry.AdjustmentFrom(c))
	res.Applied = true
	return res, nil
}

func (r calcResult) String() string {
	if !r.Applied {
		return "no-op: " + r.Reason.String()
	}
	return r.Pair.String()
}

// JSON renders r as an indented document.
func (r calcResult) JSON() (string, error) {
	doc := "{}"
	var err error
	set := func(path string, v any) {
		if err == nil {
			doc, err = sjson.Set(doc, path, v)
		}
	}

	set("mode", r.Mode)
	set("applied", r.Applied)
	if r.Applied {
		set("left", r.Pair.Left)
		set("right", r.Pair.Right)
	} else {
		set("reason", r.Reason.String())
	}
	if err != nil {
		return "", fmt.Errorf("encoding result: %w", err)
	}
	return strings.TrimRight(string(pretty.Pretty([]byte(doc))), "\n"), nil
}
