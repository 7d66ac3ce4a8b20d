package app

import (
	"fmt"
	"os"
	"strings"
)

// library supplies the lines a viewport displays. Content names that are
// readable files show the file; anything else shows the scratch page.
// Files are read once and cached for the session.
type library struct {
	cache   map[string][]string
	scratch []string
}

func newLibrary(bindings []binding) *library {
	return &library{
		cache:   make(map[string][]string),
		scratch: scratchPage(bindings),
	}
}

// Lines returns the lines of content.
func (l *library) Lines(content string) []string {
	if lines, ok := l.cache[content]; ok {
		return lines
	}

	lines := l.scratch
	if data, err := os.ReadFile(content); err == nil {
		lines = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	}
	l.cache[content] = lines
	return lines
}

func scratchPage(bindings []binding) []string {
	lines := []string{
		"centerview",
		"",
		"Pads the focused viewport with margins so its text sits in the middle.",
		"",
	}
	for _, b := range bindings {
		lines = append(lines, fmt.Sprintf("  %-5s %s", keyName(b), b.help))
	}
	return append(lines, fmt.Sprintf("  %-5s %s", "q", "quit"))
}
