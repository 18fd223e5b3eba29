package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	// Defaults reproduce the classic run: ./views, .ejs, skip backup dirs.
	assert.Equal(t, "./views", cfg.ViewsDir)
	assert.Equal(t, []string{".ejs"}, cfg.Extensions)
	assert.Equal(t, []string{"backup"}, cfg.ExcludeDirs)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.Console)
	assert.Empty(t, cfg.MetricsPort)
	assert.False(t, cfg.History.Enabled)
	assert.Equal(t, "./fa2emoji.db", cfg.History.DatabasePath)
	assert.False(t, cfg.DryRun)
}
