package config

import (
	"encoding/json"
	"os"

	"github.com/kyraymege/bookmarkd/internal/flagx"
)

// JsonConfig is the intermediate DTO for reading JSON configuration files.
type JsonConfig struct {
	ServerEndpointAddr string `json:"server_endpoint_addr"`
	CacheFile          string `json:"cache_file"`
}

// parseJson loads configuration values from the JSON file named by the
// -c or -config flags. Missing flag means nothing to load; an unreadable or
// invalid file panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.ServerEndpointAddr = c.ServerEndpointAddr
	config.CacheFile = c.CacheFile
}
