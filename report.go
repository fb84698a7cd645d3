package colorcode

import (
	"fmt"
	"github.com/brandquad/colorcode/colorutils"
	"io"
)

// Entries converts rgb into every supported format, in report order
func Entries(name string, rgb colorutils.RGB) []Entry {
	return []Entry{
		{Title: FormatRGBA, Name: name, Code: colorutils.Rgb2rgba(rgb)},
		{Title: FormatHex, Name: name, Code: colorutils.Rgb2hex(rgb)},
		{Title: FormatHSL, Name: name, Code: colorutils.Rgb2hsl(rgb)},
		{Title: FormatHSV, Name: name, Code: colorutils.Rgb2hsv(rgb)},
		{Title: FormatCMY, Name: name, Code: colorutils.Rgb2cmy(rgb)},
		{Title: FormatYIQ, Name: name, Code: colorutils.Rgb2yiq(rgb)},
		{Title: FormatYUV, Name: name, Code: colorutils.Rgb2yuv(rgb)},
		{Title: FormatHunterLab, Name: name, Code: colorutils.Rgb2hunterLab(rgb)},
	}
}

func WriteEntry(w io.Writer, e Entry) error {
	_, err := fmt.Fprintf(w, "\nColor Format: %s\nColor: %s\n%s Color Code: %s\n", e.Title, e.Name, e.Title, e.Code)
	return err
}

// Render writes entries to w, stopping on the first write error
func Render(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if err := WriteEntry(w, e); err != nil {
			return err
		}
	}
	return nil
}
