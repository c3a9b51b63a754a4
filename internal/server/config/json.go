package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/avolkovs/techcards/internal/flagx"
	"github.com/avolkovs/techcards/internal/timex"
)

// JsonConfig is the DTO for the optional JSON configuration file. Interval
// fields use timex.Duration, which accepts both strings such as "168h" and
// integer nanoseconds. After unmarshalling, values are copied into the
// runtime Config.
type JsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	CookieSecure          *bool          `json:"cookie_secure"`
	BcryptCost            int            `json:"bcrypt_cost"`
	DefaultPageSize       int            `json:"default_page_size"`
	StudyMaxCards         int            `json:"study_max_cards"`
}

// parseJson loads configuration from the JSON file named by the -c/-config
// flags. If no flag is given, nothing is loaded. Zero-valued fields in the
// file leave the corresponding Config values untouched, so a partial file
// only overrides what it names. An unreadable or invalid file panics: a
// config file that was explicitly pointed at must parse.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
	}
	if c.CookieSecure != nil {
		config.CookieSecure = *c.CookieSecure
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.DefaultPageSize != 0 {
		config.DefaultPageSize = c.DefaultPageSize
	}
	if c.StudyMaxCards != 0 {
		config.StudyMaxCards = c.StudyMaxCards
	}
}
