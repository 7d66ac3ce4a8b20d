package event

import "testing"

func TestTopic_Matches(t *testing.T) {
	tests := []struct {
		topic   Topic
		pattern Topic
		want    bool
	}{
		{"window.layout.changed", "window.layout.changed", true},
		{"window.layout.changed", "window.layout.resized", false},
		{"window.layout.changed", "window.*.changed", true},
		{"window.layout.changed", "window.*", false},
		{"window.layout.changed", "window.**", true},
		{"window.focus", "window.**", true},
		{"window", "window.**", true},
		{"config.reloaded", "window.**", false},
		{"config.reloaded", "**", true},
		{"a.b.c.d", "a.**.d", true},
		{"a.b", "a.b.c", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.topic)+"~"+string(tt.pattern), func(t *testing.T) {
			if got := tt.topic.Matches(tt.pattern); got != tt.want {
				t.Errorf("%q.Matches(%q) = %v, want %v", tt.topic, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestTopic_IsValid(t *testing.T) {
	tests := []struct {
		topic Topic
		want  bool
	}{
		{"window.layout.changed", true},
		{"window", true},
		{"", false},
		{".window", false},
		{"window.", false},
		{"window..layout", false},
	}

	for _, tt := range tests {
		if got := tt.topic.IsValid(); got != tt.want {
			t.Errorf("%q.IsValid() = %v, want %v", tt.topic, got, tt.want)
		}
	}
}
