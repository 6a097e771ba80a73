package config

import "time"

// Config holds runtime settings for the Refugio client.
//
// AutosaveInterval drives the draft persistence ticker; the idle, ack and
// prompt rotation timings are fixed by the editor.
type Config struct {
	ServerEndpointAddr string
	DatabasePath       string
	LogFile            string
	AutosaveInterval   time.Duration
	Debug              bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DatabasePath = "refugio.db"
	c.LogFile = "refugio.log"
	c.AutosaveInterval = 5 * time.Second
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
