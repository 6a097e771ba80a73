package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/refugio/internal/flagx"
	"github.com/dmitrijs2005/refugio/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	DatabasePath       string         `json:"database_path"`
	LogFile            string         `json:"log_file"`
	AutosaveInterval   timex.Duration `json:"autosave_interval"`
	Debug              bool           `json:"debug"`
}

// parseJson overlays Config with values loaded from the file given by -c or
// -config. Fields missing from the file keep their current value. Read or
// unmarshal errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigPath()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogFile != "" {
		cfg.LogFile = jc.LogFile
	}
	if jc.AutosaveInterval.Duration > 0 {
		cfg.AutosaveInterval = jc.AutosaveInterval.Duration
	}
	if jc.Debug {
		cfg.Debug = true
	}
}
