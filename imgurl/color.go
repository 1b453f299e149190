package imgurl

import (
	"fmt"
	"math"
)

// ColorModel tells how the channels of a Color are to be read.
type ColorModel int

const (
	// ColorModelUnknown is any color space the encoder doesn't know about.
	ColorModelUnknown ColorModel = iota
	// ColorModelMonochrome carries a single gray channel.
	ColorModelMonochrome
	// ColorModelRGB carries red, green and blue channels, in that order.
	ColorModelRGB
)

// Color is a plain color value: a model tag plus channel values in [0, 1].
type Color struct {
	Model    ColorModel
	Channels []float64
}

// RGB builds a Color from red, green and blue values in [0, 1].
func RGB(r, g, b float64) Color {
	return Color{
		Model:    ColorModelRGB,
		Channels: []float64{r, g, b},
	}
}

// Monochrome builds a Color from a single gray value in [0, 1].
func Monochrome(gray float64) Color {
	return Color{
		Model:    ColorModelMonochrome,
		Channels: []float64{gray},
	}
}

// fallbackColor stands in whenever a color cannot be read. A frobbed color
// is not worth failing the whole URL over.
const fallbackColor = "ffffff"

// hexColor renders a Color as six hex digits, RRGGBB without the leading #.
// Colors with a missing channel or an unknown model fall back to white.
func hexColor(c Color) string {
	var r, g, b float64

	switch c.Model {
	case ColorModelMonochrome:
		if len(c.Channels) < 1 {
			return fallbackColor
		}
		r = c.Channels[0]
		g, b = r, r
	case ColorModelRGB:
		if len(c.Channels) < 3 {
			return fallbackColor
		}
		r, g, b = c.Channels[0], c.Channels[1], c.Channels[2]
	default:
		return fallbackColor
	}

	return fmt.Sprintf("%02X%02X%02X", hexByte(r), hexByte(g), hexByte(b))
}

// hexByte scales a [0, 1] channel to a byte, rounding half away from zero.
func hexByte(v float64) int {
	return int(math.Round(v * 255))
}
