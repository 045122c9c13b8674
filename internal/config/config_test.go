package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/bnema/companion/internal/domain"
)

func writeConfig(t *testing.T, home, body string) string {
	t.Helper()

	dir := filepath.Join(home, ".companion")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, domain.LocaleEnUS, cfg.DefaultLocale)
	assert.Equal(t, zapcore.WarnLevel, cfg.LogLevel)
	assert.False(t, cfg.SpeechEnabled)
	assert.Zero(t, cfg.Seed)
	assert.Empty(t, cfg.BundlePath)
	assert.Nil(t, cfg.BundlePaths())
	assert.Empty(t, cfg.File)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := writeConfig(t, home, `
[bundle]
path = "~/bundles"

[locale]
default = "ta-lk"

[log]
level = "debug"

[speech]
enabled = true

[engine]
seed = 42
`)

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, domain.LocaleTaLK, cfg.DefaultLocale)
	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
	assert.True(t, cfg.SpeechEnabled)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, filepath.Join(home, "bundles"), cfg.BundlePath)
	assert.Equal(t, []string{filepath.Join(home, "bundles")}, cfg.BundlePaths())
	assert.Equal(t, path, cfg.File)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, "[locale]\ndefault = \"en-GB\"\n")
	t.Setenv("COMPANION_LOCALE_DEFAULT", "ta-IN")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, domain.LocaleTaIN, cfg.DefaultLocale)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{name: "locale", body: "[locale]\ndefault = \"fr-FR\"\n", want: domain.ErrUnsupportedLocale},
		{name: "log level", body: "[log]\nlevel = \"loud\"\n"},
		{name: "syntax", body: "[locale\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("HOME", home)
			writeConfig(t, home, tt.body)

			_, err := Load(viper.New())
			require.Error(t, err)
			if tt.want != nil {
				require.ErrorIs(t, err, tt.want)
			}
		})
	}
}
