package engine

import (
	"context"
	"errors"
	"testing"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"padded", "  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFences(tt.in); got != tt.want {
				t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractJSONField(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		field string
		want  string
	}{
		{"well formed", `{"reason": "solid match"}`, "reason", "solid match"},
		{"escaped quote", `{"reason": "uses \"Go\" daily"}`, "reason", `uses "Go" daily`},
		{"unescaped newline", "{\"reason\": \"line one\nline two\"}", "reason", "line one\nline two"},
		{"missing field", `{"other": "x"}`, "reason", ""},
		{"not a string", `{"reason": 42}`, "reason", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractJSONField(tt.raw, tt.field); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCallLLMDisabled(t *testing.T) {
	Init(Config{AnalyzerMode: ModeRegex})
	_, err := CallLLM(context.Background(), "prompt")
	if !errors.Is(err, ErrLLMDisabled) {
		t.Errorf("got %v, want ErrLLMDisabled", err)
	}
}
