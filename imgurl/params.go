package imgurl

// Wire-level query keys understood by the remote image service. Their names
// and value formats are a compatibility contract and must not change.
const (
	keyWidth      = "w"
	keyHeight     = "h"
	keyRadius     = "r"
	keyFocus      = "f"
	keyBackground = "bg"
	keyFit        = "fit"
	keyFormat     = "fm"
	keyQuality    = "q"
	keyFlags      = "fl"
)

// QueryItem is a single key/value pair of the generated query string.
type QueryItem struct {
	Key   string
	Value string
}
