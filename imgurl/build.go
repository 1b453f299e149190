package imgurl

import (
	"net/url"
	"strings"
)

// BuildURL appends the query string encoding the given options to the base
// asset URL. Any query already present on the base URL is replaced, not
// merged. Without options, the base URL comes back untouched.
//
// Options are encoded in the order they were given. The first failing option
// aborts the whole construction; no partial URL is ever returned.
func BuildURL(base *url.URL, options ...Option) (*url.URL, error) {
	if len(options) == 0 {
		return base, nil
	}

	if err := validateOptions(options); err != nil {
		return nil, err
	}

	// Re-parsing the string form is stricter than the components and weeds
	// out the pathological bases.
	components, err := url.Parse(base.String())
	if err != nil {
		return nil, InvalidURLError{base.String()}
	}

	var items []QueryItem
	for _, option := range options {
		qi, err := option.queryItems()
		if err != nil {
			return nil, err
		}
		items = append(items, qi...)
	}

	components.RawQuery = encodeQuery(items)

	return components, nil
}

// BuildRawURL is BuildURL for a base URL still in string form.
func BuildRawURL(base string, options ...Option) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", InvalidURLError{base}
	}

	built, err := BuildURL(u, options...)
	if err != nil {
		return "", err
	}

	return built.String(), nil
}

// encodeQuery renders the items as a query string, keeping their order.
// url.Values.Encode would sort the keys and lose the request order.
func encodeQuery(items []QueryItem) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(item.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(item.Value))
	}
	return b.String()
}
