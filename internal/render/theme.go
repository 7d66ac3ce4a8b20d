package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme holds the styles the renderer draws with.
type Theme struct {
	Text      tcell.Style
	Filler    tcell.Style
	Margin    tcell.Style
	Separator tcell.Style
	Status    tcell.Style
	// Centered styles the status line of a centered focused viewport.
	Centered tcell.Style
}

// NewTheme derives a theme from the margin colour, given as "#rrggbb".
// Separator and status colours are the margin colour blended toward white.
func NewTheme(marginHex string) (Theme, error) {
	margin, err := colorful.Hex(marginHex)
	if err != nil {
		return Theme{}, fmt.Errorf("margin color %q: %w", marginHex, err)
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	accent := colorful.Color{R: 0.54, G: 0.71, B: 0.98}

	sep := margin.BlendLab(white, 0.35).Clamped()
	status := margin.BlendLab(white, 0.15).Clamped()

	return Theme{
		Text:      tcell.StyleDefault,
		Filler:    tcell.StyleDefault.Foreground(toTcell(sep)),
		Margin:    tcell.StyleDefault.Background(toTcell(margin)),
		Separator: tcell.StyleDefault.Foreground(toTcell(sep)).Background(toTcell(margin)),
		Status:    tcell.StyleDefault.Background(toTcell(status)).Foreground(tcell.ColorWhite),
		Centered:  tcell.StyleDefault.Background(toTcell(accent)).Foreground(tcell.ColorBlack).Bold(true),
	}, nil
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
