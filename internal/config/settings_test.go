package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/compound-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsFrom_MissingFileGivesDefaults(t *testing.T) {
	s, err := LoadSettingsFrom(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
	assert.Equal(t, domain.DefaultParameters(), s.Parameters())
}

func TestSaveSettingsTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	s := DefaultSettings()
	s.Output.Format = "csv"
	s.Output.Schedule = "monthly"
	s.Defaults.Principal = 2500
	s.Defaults.CompoundingFrequency = int(domain.Quarterly)
	require.NoError(t, SaveSettingsTo(path, s))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := LoadSettingsFrom(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestLoadSettingsFrom_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output]\nformat = \"json\"\n"), 0o600))

	s, err := LoadSettingsFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "json", s.Output.Format)
	assert.Equal(t, string(domain.GranularityAnnual), s.Output.Schedule)
	assert.Equal(t, DefaultSettings().Defaults, s.Defaults)
}

func TestLoadSettingsFrom_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"malformed toml", "[output\nformat = 1", "parsing settings"},
		{"bad schedule", "[output]\nschedule = \"weekly\"\n", "output.schedule"},
		{"bad defaults", "[defaults]\nyears = 0\n", "defaults"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			s, err := LoadSettingsFrom(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Equal(t, DefaultSettings(), s)
		})
	}
}

func TestSaveSettingsTo_ReportsWriteFailure(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	err := SaveSettingsTo("/dev/full", DefaultSettings())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing settings")
}

func TestSaveSettingsTo_OverwritesLongerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("# stale\n", 500)), 0o600))

	s := DefaultSettings()
	s.Output.Format = "html"
	require.NoError(t, SaveSettingsTo(path, s))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
	loaded, err := LoadSettingsFrom(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestSettingsDir_HonoursXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "compound"), SettingsDir())
	assert.Equal(t, filepath.Join(dir, "compound", "config.toml"), SettingsPath())
}
