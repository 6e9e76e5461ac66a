package config

import (
	"encoding/json"
	"os"

	"github.com/biteai-labs/biteai-core/internal/flagx"
	"github.com/biteai-labs/biteai-core/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// rely on timex.Duration so JSON can specify them either as strings like
// "800ms" or as integer nanoseconds. Only fields present in the file
// override the running Config.
type JsonConfig struct {
	DatabasePath  *string         `json:"database_path"`
	TokenSecret   *string         `json:"token_secret"`
	BcryptCost    *int            `json:"bcrypt_cost"`
	SessionTTL    *timex.Duration `json:"session_ttl"`
	RegisterDelay *timex.Duration `json:"register_delay"`
	LoginDelay    *timex.Duration `json:"login_delay"`
	LogoutDelay   *timex.Duration `json:"logout_delay"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flags. No file means no overrides. Read or unmarshal
// errors panic; the caller decides whether to recover.
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

	applyJson(cfg, &jc)
}

func applyJson(cfg *Config, jc *JsonConfig) {
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.TokenSecret != nil {
		cfg.TokenSecret = *jc.TokenSecret
	}
	if jc.BcryptCost != nil {
		cfg.BcryptCost = *jc.BcryptCost
	}
	if jc.SessionTTL != nil {
		cfg.SessionTTL = jc.SessionTTL.Duration
	}
	if jc.RegisterDelay != nil {
		cfg.RegisterDelay = jc.RegisterDelay.Duration
	}
	if jc.LoginDelay != nil {
		cfg.LoginDelay = jc.LoginDelay.Duration
	}
	if jc.LogoutDelay != nil {
		cfg.LogoutDelay = jc.LogoutDelay.Duration
	}
}
