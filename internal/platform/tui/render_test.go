package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-hotcold/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawTextColored(0, 0, "hot", core.ColorDefault)
	s.DrawTextColored(0, 1, "cold", core.ColorBlue)

	out := RenderScreen(s, UnicodeGlyphs)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "hot") || !strings.Contains(lines[1], "cold") {
		t.Errorf("RenderScreen() = %q", out)
	}
}

func TestRenderScreenASCIIFallback(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawBox(core.NewRect(0, 0, 6, 3), core.ColorGray)
	s.SetCell(2, 1, '█', core.ColorRed)
	s.SetCell(3, 1, '░', core.ColorYellow)

	out := RenderScreen(s, ASCIIGlyphs)

	for _, r := range "┌─│█░" {
		if strings.ContainsRune(out, r) {
			t.Errorf("ASCII output still contains %q: %q", r, out)
		}
	}
	for _, r := range "+-|#." {
		if !strings.ContainsRune(out, r) {
			t.Errorf("ASCII output lacks %q: %q", r, out)
		}
	}
}

func TestGlyphsMap(t *testing.T) {
	tests := []struct {
		in, unicode, ascii rune
	}{
		{'a', 'a', 'a'},
		{'█', '█', '#'},
		{'┘', '┘', '+'},
		{'★', '★', '*'},
		{'漢', '漢', '?'},
	}

	for _, tc := range tests {
		if got := UnicodeGlyphs.Map(tc.in); got != tc.unicode {
			t.Errorf("UnicodeGlyphs.Map(%q) = %q", tc.in, got)
		}
		if got := ASCIIGlyphs.Map(tc.in); got != tc.ascii {
			t.Errorf("ASCIIGlyphs.Map(%q) = %q, expected %q", tc.in, got, tc.ascii)
		}
	}

	if got := ASCIIGlyphs.MapString("← q"); got != "< q" {
		t.Errorf("MapString() = %q", got)
	}
}

func TestDetectGlyphs(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		ascii bool
	}{
		{"utf-8 lang", map[string]string{"LANG": "en_US.UTF-8"}, false},
		{"utf8 lower", map[string]string{"LANG": "de_DE.utf8"}, false},
		{"c locale", map[string]string{"LANG": "C"}, true},
		{"lc_all wins", map[string]string{"LC_ALL": "POSIX", "LANG": "en_US.UTF-8"}, true},
		{"lc_ctype before lang", map[string]string{"LC_CTYPE": "UTF-8", "LANG": "C"}, false},
		{"nothing set", map[string]string{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := detectGlyphs(func(k string) string { return tc.env[k] })
			if g.ASCII() != tc.ascii {
				t.Errorf("ASCII() = %v, expected %v", g.ASCII(), tc.ascii)
			}
		})
	}
}
