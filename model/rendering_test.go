package model

import (
	"bytes"
	"testing"
)

func TestTerminalRendererDisplay(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf)
	if err := r.Display(gridOf(t, "#.", ".#")); err != nil {
		t.Fatalf("Display: %v", err)
	}
	want := "│██  │\n│  ██│\n"
	if buf.String() != want {
		t.Fatalf("Display wrote %q, want %q", buf.String(), want)
	}
}

func TestTerminalRendererClear(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTerminalRenderer(&buf).Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if buf.String() != ansiClear {
		t.Fatalf("Clear wrote %q", buf.String())
	}
}
