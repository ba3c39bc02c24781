package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/spacey-invader/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "Score: 3")
	s.DrawTextColored(2, 1, "▲", core.ColorBrightCyan)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "Score: 3    " {
		t.Errorf("uncolored row = %q", lines[0])
	}
	if !strings.Contains(lines[1], "▲") {
		t.Errorf("colored row lost its glyph: %q", lines[1])
	}
}

func TestRunColorIgnoresBlanks(t *testing.T) {
	if runColor(core.Cell{Rune: ' ', Color: core.ColorRed}) != core.ColorDefault {
		t.Error("blank cells should not carry color")
	}
	if runColor(core.Cell{Rune: 'x', Color: core.ColorRed}) != core.ColorRed {
		t.Error("non-blank cells keep their color")
	}
}
