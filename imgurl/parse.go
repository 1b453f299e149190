package imgurl

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// error messages
var sizePairError = "`w` and `h` come in pairs: got %d width(s) and %d height(s)"
var sizeParseError = "`w` and `h` must both be whole numbers: got %#v x %#v"
var qualityParseError = "`q` must be a whole number: got %#v"
var radiusParseError = "`r` must be a number: got %#v"
var formatError = "`fm` argument is not recognized: %#v"
var fitError = "`fit` argument is not recognized: %#v"
var focusError = "`f` argument is not recognized: %#v"
var backgroundError = "`bg` must be a RRGGBB color: got %#v"

var focuses = map[Focus]struct{}{
	FocusTop:         {},
	FocusBottom:      {},
	FocusLeft:        {},
	FocusRight:       {},
	FocusTopLeft:     {},
	FocusTopRight:    {},
	FocusBottomLeft:  {},
	FocusBottomRight: {},
	FocusFace:        {},
	FocusFaces:       {},
}

// ParseOptions translates front-end query parameters into transformation
// options: `w`+`h`, `fm` with `q` or `fl`, `fit` with `f` or `bg`, and `r`.
// Unknown parameters are ignored, the way the remote service ignores them.
// A repeated parameter comes out as a repeated option so that the duplicate
// check can reject the request.
func ParseOptions(query url.Values) ([]Option, error) {
	var options []Option

	widths := query[keyWidth]
	heights := query[keyHeight]
	if len(widths) != len(heights) {
		message := fmt.Sprintf(sizePairError, len(widths), len(heights))
		return nil, InvalidParametersError{message}
	}
	for i := range widths {
		w, errW := strconv.Atoi(widths[i])
		h, errH := strconv.Atoi(heights[i])
		if errW != nil || errH != nil {
			message := fmt.Sprintf(sizeParseError, widths[i], heights[i])
			return nil, InvalidParametersError{message}
		}
		options = append(options, SizeTo{Width: w, Height: h})
	}

	quality := first(query[keyQuality])
	flags := first(query[keyFlags])
	for _, name := range query[keyFormat] {
		format, err := parseFormat(name, quality, flags)
		if err != nil {
			return nil, err
		}
		options = append(options, FormatAs{Format: format})
	}

	focus := first(query[keyFocus])
	background := first(query[keyBackground])
	for _, name := range query[keyFit] {
		fit, err := parseFit(name, focus, background)
		if err != nil {
			return nil, err
		}
		options = append(options, FitFor{Fit: fit})
	}

	for _, value := range query[keyRadius] {
		radius, err := strconv.ParseFloat(value, 64)
		if err != nil {
			message := fmt.Sprintf(radiusParseError, value)
			return nil, InvalidParametersError{message}
		}
		options = append(options, CornerRadius{Radius: radius})
	}

	return options, nil
}

func parseFormat(name string, quality string, flags string) (Format, error) {
	switch name {
	case "jpg", "jpeg":
		if flags == "progressive" {
			return JPG{Quality: Progressive{}}, nil
		}
		if quality != "" {
			q, err := strconv.ParseUint(quality, 10, 32)
			if err != nil {
				message := fmt.Sprintf(qualityParseError, quality)
				return nil, InvalidParametersError{message}
			}
			return JPG{Quality: QualityPercent(q)}, nil
		}
		return JPG{}, nil
	case "png":
		return PNG{}, nil
	case "webp":
		return WebP{}, nil
	}

	message := fmt.Sprintf(formatError, name)
	return nil, InvalidParametersError{message}
}

func parseFit(name string, focus string, background string) (Fit, error) {
	switch name {
	case "pad":
		if background == "" {
			return Pad{}, nil
		}
		color, err := parseHexColor(background)
		if err != nil {
			return nil, err
		}
		return Pad{Background: &color}, nil
	case "crop":
		f, err := parseFocus(focus)
		if err != nil {
			return nil, err
		}
		return Crop{Focus: f}, nil
	case "fill":
		f, err := parseFocus(focus)
		if err != nil {
			return nil, err
		}
		return Fill{Focus: f}, nil
	case "thumb":
		f, err := parseFocus(focus)
		if err != nil {
			return nil, err
		}
		return Thumb{Focus: f}, nil
	case "scale":
		return Scale{}, nil
	}

	message := fmt.Sprintf(fitError, name)
	return nil, InvalidParametersError{message}
}

// parseFocus checks the value against the closed set of positions. An empty
// value is no focus at all.
func parseFocus(value string) (Focus, error) {
	if value == "" {
		return "", nil
	}

	f := Focus(value)
	if _, ok := focuses[f]; !ok {
		message := fmt.Sprintf(focusError, value)
		return "", InvalidParametersError{message}
	}

	return f, nil
}

// parseHexColor reads a RRGGBB color, with or without the leading #.
func parseHexColor(value string) (Color, error) {
	hex := strings.TrimPrefix(value, "#")
	if len(hex) != 6 {
		message := fmt.Sprintf(backgroundError, value)
		return Color{}, InvalidParametersError{message}
	}

	var channels [3]float64
	for i := 0; i < 3; i++ {
		b, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			message := fmt.Sprintf(backgroundError, value)
			return Color{}, InvalidParametersError{message}
		}
		channels[i] = float64(b) / 255.
	}

	return RGB(channels[0], channels[1], channels[2]), nil
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
