package config

import (
	"encoding/json"
	"os"

	"github.com/avolkovs/techcards/internal/flagx"
)

// JsonConfig is the DTO for the optional JSON configuration file. Zero-valued
// fields leave the corresponding Config values untouched.
type JsonConfig struct {
	ServerEndpointAddr string `json:"server_endpoint_addr"`
	PageSize           int    `json:"page_size"`
	StudyMaxCards      int    `json:"study_max_cards"`
}

// parseJson overlays Config with values from the JSON file named by the
// -c/-config flags. No flag means nothing is loaded. A file that was
// explicitly pointed at must parse, so read or unmarshal errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
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
	if jc.PageSize != 0 {
		cfg.PageSize = jc.PageSize
	}
	if jc.StudyMaxCards != 0 {
		cfg.StudyMaxCards = jc.StudyMaxCards
	}
}
