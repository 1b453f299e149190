package imgurl

import (
	"fmt"
)

// InvalidParametersError reports an option list the remote service would
// reject: duplicate option kinds, a size outside the allowed range or a JPG
// quality above 100. Adjusting the inputs makes it go away.
type InvalidParametersError struct {
	Message string
}

// Error formats the InvalidParametersError message.
func (e InvalidParametersError) Error() string {
	return e.Message
}

// InvalidURLError reports a base URL that cannot be parsed back into
// components, or a final URL that cannot be put together again. It points at
// malformed upstream data rather than a bad option list.
type InvalidURLError struct {
	Source string
}

// Error formats the InvalidURLError message.
func (e InvalidURLError) Error() string {
	return fmt.Sprintf("cannot build a valid URL from %#v", e.Source)
}
