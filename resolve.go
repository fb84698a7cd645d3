package colorcode

import (
	"errors"
	"fmt"
	"github.com/brandquad/colorcode/colorutils"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"sort"
)

var ErrColorNotDefined = errors.New("color not defined")

// Resolve looks a CSS/SVG color name up in the named color table.
// Lookup ignores case; whitespace is significant.
func Resolve(name string) (colorutils.RGB, error) {
	key := cases.Lower(language.Und).String(name)
	c, ok := colornames.Map[key]
	if !ok {
		return colorutils.RGB{}, fmt.Errorf("%q: %w", name, ErrColorNotDefined)
	}
	return colorutils.RGB{R: c.R, G: c.G, B: c.B}, nil
}

// Names returns every known color name in sorted order
func Names() []string {
	names := make([]string, 0, len(colornames.Map))
	for name := range colornames.Map {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
