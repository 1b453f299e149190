package imgurl

import (
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/golang/groupcache"
	"github.com/gorilla/mux"
)

// error messages
var assetMissing = "the `asset` parameter is required"

// IndexHandler describes the service.
func IndexHandler(w http.ResponseWriter, r *http.Request) {
	config, _ := r.Context().Value(ContextKey("config")).(*Config)

	info := ServiceInfo{
		Name:   "imgurl",
		Remote: config.Remote,
		Keys: []string{
			keyWidth,
			keyHeight,
			keyFormat,
			keyQuality,
			keyFlags,
			keyFit,
			keyFocus,
			keyBackground,
			keyRadius,
		},
	}

	writeJSON(w, info)
}

// BuildHandler responds with the remote URL for the requested asset and
// transformations, without redirecting anybody.
func BuildHandler(w http.ResponseWriter, r *http.Request) {
	config, _ := r.Context().Value(ContextKey("config")).(*Config)

	query := r.URL.Query()
	asset := query.Get("asset")
	if asset == "" {
		http.Error(w, assetMissing, http.StatusBadRequest)
		return
	}
	query.Del("asset")

	options, err := ParseOptions(query)
	if err != nil {
		http.Error(w, err.Error(), errorStatus(err))
		return
	}

	built, err := BuildRawURL(joinRemote(config.Remote, asset), options...)
	if err != nil {
		http.Error(w, err.Error(), errorStatus(err))
		return
	}

	writeJSON(w, BuildResponse{
		URL:   built,
		Query: queryMap(built),
	})
}

// RedirectHandler sends the client over to the remote service.
func RedirectHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	debug("redirecting %s", vars["asset"])

	ctx := r.Context()
	config, _ := ctx.Value(ContextKey("config")).(*Config)
	urls, _ := ctx.Value(ContextKey("urls")).(*groupcache.Group)

	requestURI := r.URL.RequestURI()

	var built string
	var err error
	if urls != nil {
		err = urls.Get(config, requestURI, groupcache.StringSink(&built))
	} else {
		built, err = remoteURL(config, requestURI)
	}

	if err != nil {
		http.Error(w, err.Error(), errorStatus(err))
		return
	}

	header := w.Header()
	header.Set("ETag", getETag(requestURI))
	header.Set("Cache-Control", fmt.Sprintf("max-age=%v, public", config.Cache.HTTP))

	http.Redirect(w, r, built, http.StatusSeeOther)
}

// errorStatus maps the typed errors onto HTTP status codes. A bad option
// list is the caller's fault, a bad URL is the configuration's.
func errorStatus(err error) int {
	switch err.(type) {
	case InvalidParametersError:
		return http.StatusBadRequest
	case InvalidURLError:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, body interface{}) {
	buffer, err := json.Marshal(body)
	if err != nil {
		http.Error(w, "cannot encode the response", http.StatusInternalServerError)
		return
	}

	header := w.Header()
	header.Set("Content-Type", "application/json")
	header.Set("Access-Control-Allow-Origin", "*")
	header.Set("Access-Control-Allow-Methods", "GET, HEAD, OPTIONS")
	w.Write(buffer)
}

// queryMap flattens the query string of a built URL for the JSON response.
func queryMap(built string) map[string]string {
	m := map[string]string{}

	u, err := url.Parse(built)
	if err != nil {
		return m
	}
	for k, vs := range u.Query() {
		if len(vs) > 0 {
			m[k] = vs[0]
		}
	}

	return m
}

func getETag(str string) string {
	return fmt.Sprintf("\"%x\"", sha1.Sum([]byte(str)))
}
