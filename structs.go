package colorcode

import (
	"fmt"
	"github.com/brandquad/colorcode/colorutils"
)

const DefaultFolderPerm = 0777

// Format is the title a color model is reported under
type Format string

const (
	FormatRGBA      Format = "RGBA (Red, Green, Blue, Alpha)"
	FormatHex       Format = "HEX (Hexadecimal)"
	FormatHSL       Format = "HSL (Hue, Saturation, Lightness)"
	FormatHSV       Format = "HSV (Hue, Saturation, Value)"
	FormatCMY       Format = "CMY (Cyan, Magenta, Yellow)"
	FormatYIQ       Format = "YIQ (Luminance, I, Q)"
	FormatYUV       Format = "YUV (Y, U, V)"
	FormatHunterLab Format = "Hunter Lab"
)

// Entry is one section of a report
type Entry struct {
	Title Format
	Name  string
	Code  fmt.Stringer
}

type Report struct {
	Name     string
	RGB      colorutils.RGB
	Entries  []Entry
	Filepath string
}

type Config struct {
	OutputDir string
	DebugMode bool
}
