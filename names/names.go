// Package names maps exact colors to human-readable names and back.
//
// Two tables are consulted in order: a short list of names the picker
// has always shown (Japanese Maple for its default neighbourhood, plus
// the primaries), then the SVG 1.1 keywords. There is no nearest-match
// search; a color either has a name or it does not.
package names

import (
	"strings"
	"sync"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/colorpick"
)

// local names take precedence over the SVG keywords.
var local = []struct {
	c    colorpick.RGB
	name string
}{
	{colorpick.RGB{R: 0x78, G: 0x01, B: 0x01}, "Japanese Maple"},
	{colorpick.RGB{}, "Black"},
	{colorpick.RGB{R: 0xff, G: 0xff, B: 0xff}, "White"},
	{colorpick.RGB{R: 0xff}, "Red"},
	{colorpick.RGB{G: 0xff}, "Green"},
	{colorpick.RGB{B: 0xff}, "Blue"},
}

type tables struct {
	byColor map[colorpick.RGB]string
	byName  map[string]colorpick.RGB // keys case-folded
}

var (
	loadOnce sync.Once
	loaded   tables
)

func load() *tables {
	loadOnce.Do(func() {
		title := cases.Title(language.English)
		fold := cases.Fold()

		t := tables{
			byColor: make(map[colorpick.RGB]string, len(colornames.Names)+len(local)),
			byName:  make(map[string]colorpick.RGB, len(colornames.Names)+len(local)),
		}
		for _, e := range local {
			t.byColor[e.c] = e.name
			t.byName[fold.String(e.name)] = e.c
		}
		// colornames.Names is sorted, so the lexically first keyword
		// claims a shared value ("aqua" before "cyan").
		for _, n := range colornames.Names {
			v := colornames.Map[n]
			c := colorpick.RGB{R: v.R, G: v.G, B: v.B}
			display := title.String(n)
			if owner, ok := t.byName[fold.String(n)]; ok && owner != c {
				// A local name took the keyword ("green" is #00FF00 here).
				display = "Web " + display
				t.byName[fold.String(display)] = c
			} else if !ok {
				t.byName[fold.String(n)] = c
			}
			if _, ok := t.byColor[c]; !ok {
				t.byColor[c] = display
			}
		}
		loaded = t
	})
	return &loaded
}

// Lookup returns the name of the color written as hex, or "" when the
// color has no name or hex is not a valid color.
func Lookup(hex string) string {
	c, err := colorpick.ParseHex(hex)
	if err != nil {
		return ""
	}
	return Name(c)
}

// Resolve parses s as a hex color, falling back to Find when it is not
// hex. When s is neither, the hex parse error is returned; it wraps
// colorpick.ErrInvalidHex.
func Resolve(s string) (colorpick.RGB, error) {
	c, err := colorpick.ParseHex(s)
	if err == nil {
		return c, nil
	}
	if named, ok := Find(s); ok {
		return named, nil
	}
	return colorpick.RGB{}, err
}

// Name returns the name of c, or "".
func Name(c colorpick.RGB) string {
	return load().byColor[c]
}

// Find returns the color with the given name. Matching ignores case and
// surrounding space. A name that does not match as written is retried
// with its spaces removed, so "dark slate gray" finds DarkSlateGray.
// Every name returned by Name resolves back to its own color.
func Find(name string) (colorpick.RGB, bool) {
	t := load()
	key := cases.Fold().String(strings.TrimSpace(name))
	if c, ok := t.byName[key]; ok {
		return c, true
	}
	c, ok := t.byName[strings.ReplaceAll(key, " ", "")]
	return c, ok
}
