package imgurl

// Config stores the front-end configuration.
type Config struct {
	Host   string      `toml:"host"`
	Port   int         `toml:"port"`
	Remote string      `toml:"remote"`
	Cache  CacheConfig `toml:"cache"`
}

// CacheConfig represents the configuration information regarding the caches.
type CacheConfig struct {
	HTTP     int64  `toml:"http"`
	URLs     string `toml:"urls"`
	URLsSize int64
}

// ServiceInfo describes the front-end on the index page.
type ServiceInfo struct {
	Name   string   `json:"name"`
	Remote string   `json:"remote"`
	Keys   []string `json:"keys"`
}

// BuildResponse is the JSON document returned by BuildHandler.
type BuildResponse struct {
	URL   string            `json:"url"`
	Query map[string]string `json:"query"`
}
