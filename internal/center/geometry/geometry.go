// Package geometry computes centering margins.
//
// Every function here is pure: dimensions and configuration come in, a
// margin pair comes out. Callers sample dimensions fresh for each call.
package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/dshills/centerview/internal/config"
)

// MarginPair is a computed pair of margins in columns.
type MarginPair struct {
	Left  int
	Right int
}

// String formats the pair as "left/right".
func (p MarginPair) String() string {
	return fmt.Sprintf("%d/%d", p.Left, p.Right)
}

// Dimensions is the geometry of one viewport inside its frame.
type Dimensions struct {
	ViewportWidth int
	FrameWidth    int
	// ViewportLeft is the column at which the viewport starts in the frame.
	ViewportLeft int
}

// RightEdge returns the column just past the viewport's last column.
func (d Dimensions) RightEdge() int {
	return d.ViewportLeft + d.ViewportWidth
}

// Adjustment nudges and rescales a raw margin independently per side.
// Factors are applied as given, so a zero factor zeroes that side.
type Adjustment struct {
	LeftOffset  int
	RightOffset int
	LeftFactor  float64
	RightFactor float64
}

// AdjustmentFrom extracts the offsets and factors from cfg.
func AdjustmentFrom(cfg config.Centering) Adjustment {
	return Adjustment{
		LeftOffset:  cfg.MarginLeftOffset,
		RightOffset: cfg.MarginRightOffset,
		LeftFactor:  cfg.MarginLeftFactor,
		RightFactor: cfg.MarginRightFactor,
	}
}

// ErrInvalidConfig is matched by InvalidConfigError through errors.Is.
var ErrInvalidConfig = errors.New("invalid centering config")

// InvalidConfigError reports a sizing configuration that cannot produce
// a desired width. Centering with it is a no-op.
type InvalidConfigError struct {
	MaxSize  int
	MaxScale float64
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid centering config: max-scale %g with no max-size", e.MaxScale)
}

// Is reports whether target is ErrInvalidConfig.
func (e *InvalidConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// CheckSizing reports whether cfg can derive a desired width.
func CheckSizing(cfg config.Centering) error {
	if cfg.MaxSize <= 0 && cfg.MaxScale <= 0 {
		return &InvalidConfigError{MaxSize: cfg.MaxSize, MaxScale: cfg.MaxScale}
	}
	return nil
}

// DesiredWidth returns the target content width: MaxSize when positive,
// otherwise MaxScale of the viewport width. An unusable configuration
// yields the full viewport width.
func DesiredWidth(viewportWidth int, cfg config.Centering) int {
	if cfg.MaxSize > 0 {
		return cfg.MaxSize
	}
	if cfg.MaxScale <= 0 {
		return viewportWidth
	}
	return int(math.Floor(cfg.MaxScale * float64(viewportWidth)))
}

// Relative centers content within the viewport itself. Margins are not
// clamped: a viewport narrower than the desired width yields negative
// raw margins.
func Relative(viewportWidth int, cfg config.Centering, adj Adjustment) MarginPair {
	desired := DesiredWidth(viewportWidth, cfg)
	return OffsetAndScale(half(viewportWidth-desired), adj)
}

// Absolute centers content within the frame. The viewport's own distance
// from each frame edge is subtracted from the frame-level margin, so only
// the outer edges of a split layout receive padding. The left margin is
// at least one column; the right may be zero.
//
// ok is false when the desired width fills the frame, in which case the
// caller applies nothing.
func Absolute(d Dimensions, cfg config.Centering) (pair MarginPair, ok bool) {
	desired := DesiredWidth(d.ViewportWidth, cfg)
	margin := half(d.FrameWidth - desired)
	if margin <= 0 {
		return MarginPair{}, false
	}
	return MarginPair{
		Left:  max(1, margin-d.ViewportLeft),
		Right: max(0, margin-(d.FrameWidth-d.RightEdge())),
	}, true
}

// OffsetAndScale applies per-side offsets, then factors, to raw.
func OffsetAndScale(raw int, adj Adjustment) MarginPair {
	return MarginPair{
		Left:  scale(raw+adj.LeftOffset, adj.LeftFactor),
		Right: scale(raw+adj.RightOffset, adj.RightFactor),
	}
}

func scale(n int, factor float64) int {
	return int(math.Floor(float64(n) * factor))
}

// half returns floor(n/2), rounding toward negative infinity.
func half(n int) int {
	return int(math.Floor(0.5 * float64(n)))
}
