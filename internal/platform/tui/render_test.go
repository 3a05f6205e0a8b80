package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/skyhop/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.SetColored(3, 0, core.GlyphBlock, core.ColorGreen)
	s.DrawText(0, 1, "xyz", core.ColorDefault)

	got := RenderScreen(s)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if got := strings.TrimRight(lines[0], " "); got != "ab █" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if got := strings.TrimRight(lines[1], " "); got != "xyz" {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorBrightWhite; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for %v", c)
		}
	}
}
