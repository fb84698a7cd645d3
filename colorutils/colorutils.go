package colorutils

import (
	"fmt"
	"github.com/lucasb-eyer/go-colorful"
)

// hunterScale is applied to CIELab b* to approximate Hunter b.
const hunterScale = 1.0 / 1.7

// RGB is an 8-bit per channel color as resolved from a color name
type RGB struct {
	R, G, B uint8
}

func (c RGB) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

func (c RGB) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Rgb2rgba appends an opaque alpha channel
func Rgb2rgba(c RGB) RGBA {
	return RGBA{c.R, c.G, c.B, 255}
}

// Rgb2hex converts an RGB color value to a lowercase #rrggbb string
func Rgb2hex(c RGB) Hex {
	return Hex(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// Rgb2hsl converts an RGB color value to HSL, every component in [0, 1]
func Rgb2hsl(c RGB) Triple {
	h, s, l := c.toColorful().Hsl()
	return Triple{hue(h), s, l}
}

// Rgb2hsv converts an RGB color value to HSV, every component in [0, 1]
func Rgb2hsv(c RGB) Triple {
	h, s, v := c.toColorful().Hsv()
	return Triple{hue(h), s, v}
}

// Rgb2cmy converts an RGB color value to CMY, the plain complement without a key channel
func Rgb2cmy(c RGB) Triple {
	return Triple{
		1.0 - float64(c.R)/255.0,
		1.0 - float64(c.G)/255.0,
		1.0 - float64(c.B)/255.0,
	}
}

// Rgb2yiq converts an RGB color value to NTSC YIQ
func Rgb2yiq(c RGB) Triple {
	cf := c.toColorful()
	y := 0.30*cf.R + 0.59*cf.G + 0.11*cf.B
	i := 0.74*(cf.R-y) - 0.27*(cf.B-y)
	q := 0.48*(cf.R-y) + 0.41*(cf.B-y)
	return Triple{y, i, q}
}

// Rgb2yuv converts an RGB color value to YUV. Y keeps the 0..255 range of the input.
func Rgb2yuv(c RGB) Triple {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	y := 0.299*r + 0.587*g + 0.114*b
	u := (b - y) * 0.565
	v := (r - y) * 0.713
	return Triple{y, u, v}
}

// Rgb2lab converts an sRGB color value to CIELab (D65), L* in [0, 100]
func Rgb2lab(c RGB) Triple {
	l, a, b := c.toColorful().Lab()
	return Triple{l * 100, a * 100, b * 100}
}

// Rgb2hunterLab approximates Hunter Lab from CIELab: L and a pass through,
// b is scaled by 1/1.7. This is not a colorimetric Hunter Lab transform.
func Rgb2hunterLab(c RGB) Triple {
	lab := Rgb2lab(c)
	return Triple{lab[0], lab[1], lab[2] * hunterScale}
}

// hue maps degrees to [0, 1)
func hue(deg float64) float64 {
	h := deg / 360.0
	if h >= 1 {
		h -= 1
	}
	return h
}
