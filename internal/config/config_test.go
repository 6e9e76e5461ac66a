package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "biteai.db", c.DatabasePath)
	assert.Equal(t, 10, c.BcryptCost)
	assert.Equal(t, 7*24*time.Hour, c.SessionTTL)
	assert.Equal(t, 800*time.Millisecond, c.RegisterDelay)
	assert.Equal(t, 800*time.Millisecond, c.LoginDelay)
	assert.Equal(t, 300*time.Millisecond, c.LogoutDelay)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "biteai.db", cfg.DatabasePath)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
}
