// Package render draws the window layout onto a tcell screen.
package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/centerview/internal/window"
)

// SourceFunc returns the lines to display for a content name.
type SourceFunc func(content string) []string

// View is everything one frame shows.
type View struct {
	Windows []window.Info

	// Centered marks viewports with centering active.
	Centered map[window.ID]bool

	// Message is the last command message for the status line.
	Message string
}

// Renderer draws Views. It must be used from the goroutine that owns the
// screen.
type Renderer struct {
	screen tcell.Screen
	theme  Theme
	source SourceFunc
}

// New creates a renderer on screen. A nil source shows empty viewports.
func New(screen tcell.Screen, theme Theme, source SourceFunc) *Renderer {
	if source == nil {
		source = func(string) []string { return nil }
	}
	return &Renderer{screen: screen, theme: theme, source: source}
}

// SetTheme replaces the styles used from the next Draw on.
func (r *Renderer) SetTheme(theme Theme) {
	r.theme = theme
}

// Draw paints v and shows it. The bottom row is the status line.
func (r *Renderer) Draw(v View) {
	r.screen.Clear()
	_, height := r.screen.Size()
	rows := height - 1

	for i, w := range v.Windows {
		r.drawViewport(w, rows)
		if i < len(v.Windows)-1 {
			for y := 0; y < rows; y++ {
				r.screen.SetContent(w.Left+w.Width, y, tcell.RuneVLine, nil, r.theme.Separator)
			}
		}
	}
	if height > 0 {
		r.drawStatus(v, height-1)
	}
	r.screen.Show()
}

// Area returns the columns between a viewport's margins. Negative margins
// draw as zero and margins never exceed the viewport.
func Area(w window.Info) (left, right int) {
	l, rt := w.Margins.Width()
	l = clamp(l, 0, w.Width)
	rt = clamp(rt, 0, w.Width-l)
	return w.Left + l, w.Left + w.Width - rt
}

func (r *Renderer) drawViewport(w window.Info, rows int) {
	textLeft, textRight := Area(w)
	lines := r.source(w.Content)

	for y := 0; y < rows; y++ {
		for x := w.Left; x < textLeft; x++ {
			r.screen.SetContent(x, y, ' ', nil, r.theme.Margin)
		}
		for x := textRight; x < w.Left+w.Width; x++ {
			r.screen.SetContent(x, y, ' ', nil, r.theme.Margin)
		}

		if y < len(lines) {
			drawText(r.screen, textLeft, y, textRight-textLeft, lines[y], r.theme.Text)
		} else if textRight > textLeft {
			r.screen.SetContent(textLeft, y, '~', nil, r.theme.Filler)
		}
	}
}

func (r *Renderer) drawStatus(v View, y int) {
	width, _ := r.screen.Size()
	style := r.theme.Status

	var left string
	for _, w := range v.Windows {
		if !w.Focused {
			continue
		}
		left = " " + w.Content
		if v.Centered[w.ID] {
			style = r.theme.Centered
			left += fmt.Sprintf(" [centered %s]", w.Margins)
		}
	}
	if v.Message != "" {
		left += " | " + v.Message
	}

	for x := 0; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
	drawText(r.screen, 0, y, width, left, style)
}

// drawText draws s from column x, grapheme by grapheme, stopping before
// the first cluster that would cross maxWidth columns. It returns the
// columns used.
func drawText(screen tcell.Screen, x, y, maxWidth int, s string, style tcell.Style) int {
	s = strings.ReplaceAll(s, "\t", "    ")
	used := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		var width int
		cluster, s, width, state = uniseg.FirstGraphemeClusterInString(s, state)
		if width == 0 {
			continue
		}
		if used+width > maxWidth {
			break
		}
		runes := []rune(cluster)
		screen.SetContent(x+used, y, runes[0], runes[1:], style)
		used += width
	}
	return used
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return min(max(v, lo), hi)
}
