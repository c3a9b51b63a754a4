// Package config handles configuration for the terminal client, layering
// defaults, an optional JSON file and command-line flags.
package config

// Config holds runtime settings for the techcards CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend HTTP API.
//   - PageSize: how many cards each browse request fetches.
//   - StudyMaxCards: cap on the study-mode working set; at most this many
//     cards are fetched when a session starts.
type Config struct {
	ServerEndpointAddr string
	PageSize           int
	StudyMaxCards      int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:3000"
	c.PageSize = 20
	c.StudyMaxCards = 500
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
