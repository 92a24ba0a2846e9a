package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigFormatFallback(t *testing.T) {
	t.Setenv("LIFEBEYOND_FORMAT", "")

	cfg := LoadConfig()
	assert.Equal(t, "json", cfg.Format)
}

func TestLoadConfigReadsEnvironment(t *testing.T) {
	t.Setenv("LIFEBEYOND_FORMAT", "png")
	t.Setenv("LIFEBEYOND_WINGS_DIR", "/tmp/wings")
	t.Setenv("LIFEBEYOND_DEBUG", "true")
	t.Setenv("LIFEBEYOND_NO_COLOR", "true")

	cfg := LoadConfig()
	assert.Equal(t, "png", cfg.Format)
	assert.Equal(t, "/tmp/wings", cfg.WingsDir)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.NoColor)
}

func TestLoadConfigIgnoresMalformedValues(t *testing.T) {
	t.Setenv("LIFEBEYOND_DEBUG", "banana")
	t.Setenv("LIFEBEYOND_FORMAT", "")

	cfg := LoadConfig()
	assert.False(t, cfg.Debug)
	assert.Equal(t, "json", cfg.Format)
}
