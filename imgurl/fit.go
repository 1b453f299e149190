package imgurl

// Focus is the anchor point biasing the crop-like fit modes.
type Focus string

// The focus positions the remote service understands.
const (
	FocusTop         Focus = "top"
	FocusBottom      Focus = "bottom"
	FocusLeft        Focus = "left"
	FocusRight       Focus = "right"
	FocusTopLeft     Focus = "top_left"
	FocusTopRight    Focus = "top_right"
	FocusBottomLeft  Focus = "bottom_left"
	FocusBottomRight Focus = "bottom_right"
	FocusFace        Focus = "face"
	FocusFaces       Focus = "faces"
)

// Fit is the server-side strategy reconciling the requested size with the
// source image's aspect ratio.
type Fit interface {
	argument
	fit()
}

// Pad letterboxes the image within the requested size, optionally over a
// background color.
type Pad struct {
	Background *Color
}

func (Pad) fit() {}

func (Pad) wireArgument() string { return "pad" }

func (p Pad) extraItem() (*QueryItem, error) {
	if p.Background == nil {
		return nil, nil
	}
	return &QueryItem{keyBackground, hexColor(*p.Background)}, nil
}

// Crop cuts the image down to the requested size.
type Crop struct {
	Focus Focus
}

func (Crop) fit() {}

func (Crop) wireArgument() string { return "crop" }

func (c Crop) extraItem() (*QueryItem, error) { return focusItem(c.Focus) }

// Fill resizes then crops so the whole requested size is covered.
type Fill struct {
	Focus Focus
}

func (Fill) fit() {}

func (Fill) wireArgument() string { return "fill" }

func (f Fill) extraItem() (*QueryItem, error) { return focusItem(f.Focus) }

// Thumb creates a thumbnail biased towards the focus area.
type Thumb struct {
	Focus Focus
}

func (Thumb) fit() {}

func (Thumb) wireArgument() string { return "thumb" }

func (t Thumb) extraItem() (*QueryItem, error) { return focusItem(t.Focus) }

// Scale stretches the image to the requested size, ignoring the aspect
// ratio.
type Scale struct{}

func (Scale) fit() {}

func (Scale) wireArgument() string { return "scale" }

func (Scale) extraItem() (*QueryItem, error) { return nil, nil }

// focusItem renders an optional focus. The zero Focus means none.
func focusItem(f Focus) (*QueryItem, error) {
	if f == "" {
		return nil, nil
	}
	return &QueryItem{keyFocus, string(f)}, nil
}
