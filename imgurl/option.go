package imgurl

import (
	"fmt"
	"strconv"
)

// error messages
var duplicateError = "two or more `%s` options were given, at most one is allowed"
var sizeError = "width and height must be within (0, %d]: got %vx%v"
var qualityError = "JPG quality must be within [0, 100]: got %v"

// MaxDimension is the largest width or height the remote service resizes to.
const MaxDimension = 4000

// Option is a single image-transformation directive. Two options of the same
// kind never belong in the same URL, whatever their payloads are.
type Option interface {
	// kind discriminates the options for the duplicate check.
	kind() string
	// queryItems renders the option into query string pairs.
	queryItems() ([]QueryItem, error)
}

// SizeTo resizes the image to width x height pixels.
type SizeTo struct {
	Width  int
	Height int
}

func (s SizeTo) kind() string { return "size" }

func (s SizeTo) queryItems() ([]QueryItem, error) {
	if s.Width <= 0 || s.Width > MaxDimension ||
		s.Height <= 0 || s.Height > MaxDimension {
		message := fmt.Sprintf(sizeError, MaxDimension, s.Width, s.Height)
		return nil, InvalidParametersError{message}
	}

	return []QueryItem{
		{keyWidth, strconv.Itoa(s.Width)},
		{keyHeight, strconv.Itoa(s.Height)},
	}, nil
}

// FormatAs requests the image in another file format.
type FormatAs struct {
	Format Format
}

func (f FormatAs) kind() string { return "format" }

func (f FormatAs) queryItems() ([]QueryItem, error) {
	return argumentItems(keyFormat, f.Format)
}

// FitFor tells how the image should fill the requested size.
type FitFor struct {
	Fit Fit
}

func (f FitFor) kind() string { return "fit" }

func (f FitFor) queryItems() ([]QueryItem, error) {
	return argumentItems(keyFit, f.Fit)
}

// CornerRadius rounds the image corners by radius pixels. The remote service
// accepts any value here, so no range is enforced.
type CornerRadius struct {
	Radius float64
}

func (c CornerRadius) kind() string { return "radius" }

func (c CornerRadius) queryItems() ([]QueryItem, error) {
	return []QueryItem{
		{keyRadius, strconv.FormatFloat(c.Radius, 'f', -1, 64)},
	}, nil
}

// validateOptions refuses a list carrying two options of the same kind. The
// payloads are irrelevant: two different formats collide just the same.
func validateOptions(options []Option) error {
	seen := make(map[string]struct{}, len(options))
	for _, option := range options {
		k := option.kind()
		if _, ok := seen[k]; ok {
			message := fmt.Sprintf(duplicateError, k)
			return InvalidParametersError{message}
		}
		seen[k] = struct{}{}
	}
	return nil
}
