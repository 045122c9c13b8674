package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	bundlefile "github.com/bnema/companion/internal/adapters/bundle/file"
	memoryrender "github.com/bnema/companion/internal/adapters/render/memory"
	"github.com/bnema/companion/internal/adapters/speech/console"
	"github.com/bnema/companion/internal/application"
	"github.com/bnema/companion/internal/config"
	"github.com/bnema/companion/internal/domain"
	"github.com/bnema/companion/internal/engine"
	"github.com/bnema/companion/internal/ports"
)

type rootFlags struct {
	verbose bool
	locale  string
	bundle  string
	speak   bool
}

type app struct {
	cfg            config.Config
	logger         *zap.Logger
	memoryRenderer func(application.MemorySummary, memoryrender.RenderOptions) (string, error)
}

func (a *app) wire(flags rootFlags) error {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if flags.locale != "" {
		locale, err := domain.ParseLocale(flags.locale)
		if err != nil {
			return fmt.Errorf("--locale: %w", err)
		}
		cfg.DefaultLocale = locale
	}
	if flags.bundle != "" {
		cfg.BundlePath = flags.bundle
	}
	if flags.speak {
		cfg.SpeechEnabled = true
	}

	logger, err := newLogger(cfg, flags.verbose)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	a.memoryRenderer = memoryrender.Render
	if cfg.File != "" {
		logger.Debug("config loaded", zap.String("file", cfg.File))
	}
	return nil
}

func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func newLogger(cfg config.Config, verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	return zcfg.Build()
}

func (a *app) loadBundle(ctx context.Context, extra ...string) (domain.Bundle, error) {
	paths := append(a.cfg.BundlePaths(), extra...)
	var source ports.BundleSource = bundlefile.NewLoader(paths, bundlefile.WithLogger(a.logger))
	bundle, err := source.Load(ctx)
	if err != nil {
		return domain.Bundle{}, fmt.Errorf("load locale bundle: %w", err)
	}
	return bundle, nil
}

func (a *app) newEngine(ctx context.Context, extra ...string) (*engine.Engine, error) {
	bundle, err := a.loadBundle(ctx, extra...)
	if err != nil {
		return nil, err
	}

	e, err := engine.New(bundle,
		engine.WithSeed(a.cfg.Seed),
		engine.WithClock(ports.SystemClock{}),
		engine.WithLogger(a.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}
	return e, nil
}

func (a *app) newService(ctx context.Context, out io.Writer) (*application.Service, error) {
	e, err := a.newEngine(ctx)
	if err != nil {
		return nil, err
	}

	var speaker ports.Speaker
	if a.cfg.SpeechEnabled {
		speaker = console.NewSpeaker(out)
	}

	return application.NewService(e, a.cfg.DefaultLocale, speaker, a.logger), nil
}
