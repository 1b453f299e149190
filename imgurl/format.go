package imgurl

import (
	"fmt"
	"strconv"
)

// argument is the shared shape of formats and fit modes: a mandatory wire
// value for the main key, plus at most one extra query item.
type argument interface {
	wireArgument() string
	extraItem() (*QueryItem, error)
}

// argumentItems emits the main key/argument pair followed by the optional
// extra item the argument carries.
func argumentItems(key string, arg argument) ([]QueryItem, error) {
	items := []QueryItem{{key, arg.wireArgument()}}

	extra, err := arg.extraItem()
	if err != nil {
		return nil, err
	}
	if extra != nil {
		items = append(items, *extra)
	}

	return items, nil
}

// Format is one of the file formats the remote service encodes to.
type Format interface {
	argument
	format()
}

// JPG encodes to JPEG, optionally refined by a quality directive. A nil
// Quality leaves the encoder settings to the remote service.
type JPG struct {
	Quality JPGQuality
}

func (JPG) format() {}

func (JPG) wireArgument() string { return "jpg" }

func (j JPG) extraItem() (*QueryItem, error) {
	if j.Quality == nil {
		return nil, nil
	}
	return j.Quality.qualityItem()
}

// PNG encodes to PNG.
type PNG struct{}

func (PNG) format() {}

func (PNG) wireArgument() string { return "png" }

func (PNG) extraItem() (*QueryItem, error) { return nil, nil }

// WebP encodes to WebP.
type WebP struct{}

func (WebP) format() {}

func (WebP) wireArgument() string { return "webp" }

func (WebP) extraItem() (*QueryItem, error) { return nil, nil }

// JPGQuality refines how the JPEG encoder behaves.
type JPGQuality interface {
	qualityItem() (*QueryItem, error)
}

// QualityDefault asks for nothing special.
type QualityDefault struct{}

func (QualityDefault) qualityItem() (*QueryItem, error) { return nil, nil }

// QualityPercent asks for a given compression quality, 0 to 100.
type QualityPercent uint

func (q QualityPercent) qualityItem() (*QueryItem, error) {
	if q > 100 {
		message := fmt.Sprintf(qualityError, uint(q))
		return nil, InvalidParametersError{message}
	}
	return &QueryItem{keyQuality, strconv.FormatUint(uint64(q), 10)}, nil
}

// Progressive asks for a progressive JPEG.
type Progressive struct{}

func (Progressive) qualityItem() (*QueryItem, error) {
	return &QueryItem{keyFlags, "progressive"}, nil
}
