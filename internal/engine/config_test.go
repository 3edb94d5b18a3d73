package engine

import (
	"os"
	"path/filepath"
	"testing"

	"Lumen3D/internal/logger"
	"Lumen3D/internal/renderer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lumen.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, int32(1600), cfg.Window.Width)
	assert.Equal(t, int32(1200), cfg.Window.Height)
	assert.Equal(t, float32(1.5), cfg.FontScale)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{"variant": "basic", "window": {"width": 800, "height": 600}}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, VariantBasic, cfg.Variant)
	assert.Equal(t, int32(800), cfg.Window.Width)
	// untouched fields keep their defaults
	assert.Equal(t, "screenshots", cfg.ScreenshotDir)
	assert.Equal(t, DefaultConfig().Textures, cfg.Textures)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, `{"variant": `)

	_, err := LoadConfig(path)

	assert.Error(t, err)
}

func TestResolveFlags(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Resolve(Flags{Variant: VariantMulti, DebugLog: true}))

	assert.Equal(t, VariantMulti, cfg.Variant)
	assert.True(t, cfg.DebugLog)
}

func TestResolveRejectsUnknownVariant(t *testing.T) {
	cfg := DefaultConfig()

	err := cfg.Resolve(Flags{Variant: "deferred"})

	assert.ErrorContains(t, err, "deferred")
}

func TestResolveRejectsBadWindow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window.Height = 0

	assert.Error(t, cfg.Resolve(Flags{}))
}

func TestPreset(t *testing.T) {
	tests := []struct {
		variant  string
		model    renderer.LightingModel
		overlays bool
	}{
		{VariantBasic, renderer.SINGLE_LIGHT, false},
		{VariantMulti, renderer.POINT_LIGHT_ARRAY, false},
		{VariantDebug, renderer.POINT_LIGHT_ARRAY, true},
	}
	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			model, overlays, err := Preset(tt.variant)
			require.NoError(t, err)
			assert.Equal(t, tt.model, model)
			assert.Equal(t, tt.overlays, overlays)
		})
	}

	_, _, err := Preset("")
	assert.Error(t, err)
}

func TestSampleConfigMatchesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "..", "lumen.json"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigLogsDefaultsFallback(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	previous := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = previous })

	path := filepath.Join(t.TempDir(), "absent.json")
	_, err := LoadConfig(path)
	require.NoError(t, err)

	entries := logs.FilterMessage("No config file found, using defaults").All()
	require.Len(t, entries, 1)
	assert.Equal(t, path, entries[0].ContextMap()["path"])
}
