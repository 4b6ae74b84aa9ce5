package config

// Config holds runtime settings for the bookmarkd CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend HTTP endpoint.
//   - CacheFile: path of the local SQLite cache database.
type Config struct {
	ServerEndpointAddr string
	CacheFile          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:3333"
	c.CacheFile = "bookmarks.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
