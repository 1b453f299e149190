package imgurl

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/golang/groupcache"
	"github.com/gorilla/mux"

	d "github.com/tj/go-debug"
)

var debug = d.Debug("imgurl")

// MakeRouter constructs the basic router (no middlewares).
func MakeRouter() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/", IndexHandler)
	router.HandleFunc("/v1/url", BuildHandler)
	router.HandleFunc("/{asset:.*}", RedirectHandler)

	return router
}

// SetGroupCache wraps the router with the cache of built URLs, so that hot
// asset paths skip re-encoding their options. Without any peer there is
// nothing to cache on: the router comes back bare.
func SetGroupCache(router http.Handler, config *Config, peers ...string) http.Handler {
	if len(peers) == 0 {
		return router
	}

	// Caching
	pool := groupcache.NewHTTPPool(peers[0])
	pool.Set(peers...)

	var urls = groupcache.NewGroup("urls", config.Cache.URLsSize, groupcache.GetterFunc(
		func(ctx groupcache.Context, key string, dest groupcache.Sink) error {
			c := ctx.(*Config)
			built, err := remoteURL(c, key)
			if err != nil {
				return err
			}
			debug("caching %s", key)
			dest.SetString(built)
			return nil
		},
	))

	return WithGroupCaches(router, map[string]*groupcache.Group{
		"urls": urls,
	})
}

// remoteURL translates a front-end request URI into the remote service URL.
func remoteURL(config *Config, requestURI string) (string, error) {
	u, err := url.ParseRequestURI(requestURI)
	if err != nil {
		return "", InvalidURLError{requestURI}
	}

	options, err := ParseOptions(u.Query())
	if err != nil {
		return "", err
	}

	return BuildRawURL(joinRemote(config.Remote, u.Path), options...)
}

// joinRemote glues an asset path onto the remote base URL.
func joinRemote(remote string, asset string) string {
	return strings.TrimSuffix(remote, "/") + "/" + strings.TrimPrefix(asset, "/")
}
