package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/bnema/companion/internal/domain"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".companion"
	envPrefix  = "COMPANION"

	BundlePathKey    = "bundle.path"
	LocaleDefaultKey = "locale.default"
	LogLevelKey      = "log.level"
	SpeechEnabledKey = "speech.enabled"
	EngineSeedKey    = "engine.seed"
)

type Config struct {
	BundlePath    string
	DefaultLocale domain.Locale
	LogLevel      zapcore.Level
	SpeechEnabled bool
	Seed          uint64
	File string
}

func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(BundlePathKey, "")
	cfg.SetDefault(LocaleDefaultKey, string(domain.DefaultLocale))
	cfg.SetDefault(LogLevelKey, "warn")
	cfg.SetDefault(SpeechEnabledKey, false)
	cfg.SetDefault(EngineSeedKey, 0)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	locale, err := domain.ParseLocale(cfg.GetString(LocaleDefaultKey))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", LocaleDefaultKey, err)
	}

	level, err := zapcore.ParseLevel(cfg.GetString(LogLevelKey))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", LogLevelKey, err)
	}

	bundlePath, err := normalizeBundlePath(cfg.GetString(BundlePathKey), homeDir)
	if err != nil {
		return Config{}, err
	}

	return Config{
		BundlePath:    bundlePath,
		DefaultLocale: locale,
		LogLevel:      level,
		SpeechEnabled: cfg.GetBool(SpeechEnabledKey),
		Seed:          cfg.GetUint64(EngineSeedKey),
		File:          cfg.ConfigFileUsed(),
	}, nil
}

func (c Config) BundlePaths() []string {
	if c.BundlePath == "" {
		return nil
	}
	return []string{c.BundlePath}
}

func normalizeBundlePath(path, homeDir string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		path = filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve bundle path: %w", err)
	}

	return filepath.Clean(absPath), nil
}
