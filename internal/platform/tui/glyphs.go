package tui

import (
	"os"
	"strings"
)

// Glyphs decides how screen runes reach the terminal.
type Glyphs struct {
	ascii bool
}

// UnicodeGlyphs passes every rune through.
var UnicodeGlyphs = Glyphs{}

// ASCIIGlyphs replaces block and box drawing runes with printable ASCII.
var ASCIIGlyphs = Glyphs{ascii: true}

var asciiFallback = map[rune]rune{
	'█': '#',
	'▓': '#',
	'░': '.',
	'┌': '+',
	'┐': '+',
	'└': '+',
	'┘': '+',
	'─': '-',
	'│': '|',
	'★': '*',
	'✦': '*',
	'·': '.',
	'•': '*',
	'…': '.',
	'←': '<',
	'→': '>',
	'↑': '^',
	'↓': 'v',
}

// Map returns the rune to print for r.
func (g Glyphs) Map(r rune) rune {
	if !g.ascii || r < 0x80 {
		return r
	}
	if fb, ok := asciiFallback[r]; ok {
		return fb
	}
	return '?'
}

// MapString applies Map to every rune of s.
func (g Glyphs) MapString(s string) string {
	if !g.ascii {
		return s
	}
	return strings.Map(g.Map, s)
}

// ASCII reports whether the fallback is active.
func (g Glyphs) ASCII() bool {
	return g.ascii
}

// DetectGlyphs picks Unicode glyphs when the locale is UTF-8.
// The first of LC_ALL, LC_CTYPE and LANG that is set decides.
func DetectGlyphs() Glyphs {
	return detectGlyphs(os.Getenv)
}

func detectGlyphs(getenv func(string) string) Glyphs {
	for _, name := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := getenv(name)
		if v == "" {
			continue
		}
		v = strings.ToLower(v)
		if strings.Contains(v, "utf-8") || strings.Contains(v, "utf8") {
			return UnicodeGlyphs
		}
		return ASCIIGlyphs
	}
	return ASCIIGlyphs
}
