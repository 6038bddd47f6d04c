package tui

import (
	"strings"
	"testing"

	"github.com/akarpov/snaketui/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "abc") {
		t.Errorf("first line %q missing text", lines[0])
	}
	if !strings.Contains(lines[1], "de") {
		t.Errorf("second line %q missing text", lines[1])
	}
}

func TestRenderScreenColoredRuns(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.SetColor(0, 0, 'x', core.ColorGreen)
	s.SetColor(1, 0, 'y', core.ColorGreen)
	s.SetColor(2, 0, 'z', core.ColorRed)

	out := RenderScreen(s)

	// Regardless of whether the terminal profile emits ANSI codes,
	// the visible runes must survive in order.
	stripped := strings.Map(func(r rune) rune {
		if r == 'x' || r == 'y' || r == 'z' || r == ' ' {
			return r
		}
		return -1
	}, out)
	if !strings.Contains(stripped, "xyz") {
		t.Errorf("rendered output %q lost cell runes", out)
	}
}

func TestRenderScreenUnknownColorFallsBack(t *testing.T) {
	s := core.NewScreen(2, 1)
	s.SetColor(0, 0, 'q', core.Color(200)) // Not in the style map

	out := RenderScreen(s)
	if !strings.Contains(out, "q") {
		t.Errorf("rendered output %q missing rune for unknown color", out)
	}
}
