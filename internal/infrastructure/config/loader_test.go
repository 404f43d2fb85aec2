package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	loader := NewLoader("../../../cmd/ghostview/configs")

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, 480, cfg.Viewer.ScreenWidth)
	assert.Equal(t, 360, cfg.Viewer.ScreenHeight)
	assert.Equal(t, 60, cfg.Viewer.Framerate)
	assert.Equal(t, FormatText, cfg.Report.Format)
	assert.False(t, cfg.Decode.StrictDuration)
	assert.NoError(t, cfg.Validate())
}

func TestLoader_LoadFile_KeepsDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"partial.json": {Data: []byte(`{"report": {"format": "yaml"}, "viewer": {"speed": 4}}`)},
	}
	loader := NewFSLoader(fsys, ".")

	cfg, err := loader.LoadFile("partial.json")
	require.NoError(t, err)

	assert.Equal(t, FormatYAML, cfg.Report.Format)
	assert.Equal(t, 4.0, cfg.Viewer.Speed)
	assert.Equal(t, Default().Report.Collectors, cfg.Report.Collectors)
	assert.Equal(t, 480, cfg.Viewer.ScreenWidth)
	assert.Equal(t, 0.05, cfg.Decode.DurationTolerance)
}

func TestLoader_LoadFile_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.json": {Data: []byte(`{"report": `)},
	}
	loader := NewFSLoader(fsys, ".")

	_, err := loader.LoadFile("missing.json")
	assert.ErrorContains(t, err, "failed to read missing.json")

	_, err = loader.LoadFile("broken.json")
	assert.ErrorContains(t, err, "failed to parse broken.json")
}

func TestLoader_LoadAll_AppliesEnv(t *testing.T) {
	t.Setenv("GHOST_STRICT_DURATION", "true")
	t.Setenv("GHOST_DURATION_TOLERANCE", "0.5")
	t.Setenv("GHOST_REPORT_FORMAT", "json")
	t.Setenv("GHOST_COLLECTORS", "velocity,events")
	t.Setenv("GHOST_DB_PATH", "/tmp/ghosts.db")
	t.Setenv("GHOST_VIEWER_SPEED", "2.5")

	fsys := fstest.MapFS{FileName: {Data: []byte(`{}`)}}
	cfg, err := NewFSLoader(fsys, ".").LoadAll()
	require.NoError(t, err)

	assert.True(t, cfg.Decode.StrictDuration)
	assert.Equal(t, 0.5, cfg.Decode.DurationTolerance)
	assert.Equal(t, FormatJSON, cfg.Report.Format)
	assert.Equal(t, []string{"velocity", "events"}, cfg.Report.Collectors)
	assert.Equal(t, "/tmp/ghosts.db", cfg.Store.Path)
	assert.Equal(t, 2.5, cfg.Viewer.Speed)
}

func TestLoader_LoadAll_InvalidEnv(t *testing.T) {
	t.Setenv("GHOST_VIEWER_SCALE", "big")

	fsys := fstest.MapFS{FileName: {Data: []byte(`{}`)}}
	_, err := NewFSLoader(fsys, ".").LoadAll()
	assert.ErrorContains(t, err, "parse env:")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"negative tolerance", func(c *Config) { c.Decode.DurationTolerance = -1 }, "durationTolerance"},
		{"unknown format", func(c *Config) { c.Report.Format = "xml" }, "report.format"},
		{"no collectors", func(c *Config) { c.Report.Collectors = nil }, "report.collectors"},
		{"zero width", func(c *Config) { c.Viewer.ScreenWidth = 0 }, "viewer screen"},
		{"zero speed", func(c *Config) { c.Viewer.Speed = 0 }, "viewer.speed"},
		{"negative trail", func(c *Config) { c.Viewer.Trail = -1 }, "viewer.trail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}

	assert.NoError(t, Default().Validate())
}

func TestLoader_LoadAllFile(t *testing.T) {
	fsys := fstest.MapFS{
		"viewer.json": {Data: []byte(`{"viewer": {"trail": 120}}`)},
		"bad.json":    {Data: []byte(`{"report": {"format": "xml"}}`)},
	}
	loader := NewFSLoader(fsys, ".")

	cfg, err := loader.LoadAllFile("viewer.json")
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Viewer.Trail)

	_, err = loader.LoadAllFile("bad.json")
	assert.ErrorContains(t, err, "report.format")
}
