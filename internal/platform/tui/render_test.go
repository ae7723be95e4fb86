package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(0, 0, "left")
	s.SetColored(5, 1, '●', core.ColorBrightWhite)
	s.SetColored(9, 2, '█', core.ColorCyan)

	out := RenderScreen(s)

	if lines := strings.Count(out, "\n") + 1; lines != 3 {
		t.Errorf("RenderScreen() has %d lines, expected 3", lines)
	}
	for _, want := range []string{"left", "●", "█"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() missing %q", want)
		}
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	if out := RenderScreen(core.NewScreen(0, 0)); out != "" {
		t.Errorf("RenderScreen(empty) = %q, expected empty", out)
	}
}
