package command

import (
	"fmt"

	"github.com/tidwall/sjson"

	"github.com/dshills/centerview/internal/center"
	"github.com/dshills/centerview/internal/window"
)

// StatusJSON renders the centering status as a JSON document:
//
//	{
//	  "focused": "<id>",
//	  "active": true,
//	  "viewports": [
//	    {"id": "...", "content": "...", "eligible": true, "reason": "",
//	     "offsets": {"left": 0, "right": 0},
//	     "margins": {"left": 10, "right": 10},
//	     "original": {"left": null, "right": null}}
//	  ]
//	}
//
// Unset margins are null.
func StatusJSON(focused window.ID, active bool, statuses []center.Status) (string, error) {
	b := &jsonBuilder{doc: `{}`}
	b.set("focused", string(focused))
	b.set("active", active)
	b.setRaw("viewports", `[]`)
	for i, st := range statuses {
		p := fmt.Sprintf("viewports.%d.", i)
		b.set(p+"id", string(st.ID))
		b.set(p+"content", st.Content)
		b.set(p+"eligible", st.Reason == center.ReasonNone)
		b.set(p+"reason", string(st.Reason))
		b.set(p+"offsets.left", st.LeftOffset)
		b.set(p+"offsets.right", st.RightOffset)
		b.margins(p+"margins", st.Margins)
		b.margins(p+"original", st.Original)
	}
	if b.err != nil {
		return "", fmt.Errorf("build status: %w", b.err)
	}
	return b.doc, nil
}

// jsonBuilder applies sjson edits, keeping the first error.
type jsonBuilder struct {
	doc string
	err error
}

func (b *jsonBuilder) set(path string, v any) {
	if b.err == nil {
		b.doc, b.err = sjson.Set(b.doc, path, v)
	}
}

func (b *jsonBuilder) setRaw(path, raw string) {
	if b.err == nil {
		b.doc, b.err = sjson.SetRaw(b.doc, path, raw)
	}
}

func (b *jsonBuilder) margins(path string, m window.Margins) {
	b.side(path+".left", m.Left)
	b.side(path+".right", m.Right)
}

func (b *jsonBuilder) side(path string, v *int) {
	if v == nil {
		b.setRaw(path, `null`)
		return
	}
	b.set(path, *v)
}
