package application

import (
	"bytes"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/eugenenazirov/linkplan/internal/config"
	"github.com/eugenenazirov/linkplan/internal/emitter"
	"github.com/eugenenazirov/linkplan/internal/render"
	"github.com/eugenenazirov/linkplan/internal/settings"
)

// App encapsulates the translation pipeline dependencies.
type App struct {
	cfg     config.Config
	loader  *settings.Loader
	emitter *emitter.Emitter
	logger  *zap.Logger
}

// New initializes the pipeline with all dependencies from the provided
// configuration.
func New(cfg config.Config, logger *zap.Logger) *App {
	var loaderOpts []settings.LoaderOption
	if cfg.SettingsFile != "" {
		loaderOpts = append(loaderOpts, settings.WithSettingsFile(cfg.SettingsFile))
	}

	return &App{
		cfg:    cfg,
		loader: settings.NewLoader(cfg.BuildOutputDir, loaderOpts...),
		emitter: emitter.New(
			emitter.WithPreserveDuplicatePaths(cfg.PreserveDuplicatePaths),
		),
		logger: logger,
	}
}

// Run executes the pipeline: load settings, emit the plan, render it, and
// write the result to w in a single write. Emission is all-or-nothing; a
// failure at any stage leaves w untouched.
func (a *App) Run(w io.Writer) error {
	a.logger.Info("loading settings", zap.String("path", a.loader.Path()))
	cfg, err := a.loader.Load()
	if err != nil {
		return err
	}
	a.logger.Info("settings loaded", zap.Int("settings", len(cfg)))

	plan, err := a.emitter.Emit(cfg)
	if err != nil {
		return fmt.Errorf("emit link plan: %w", err)
	}
	a.logger.Info("link plan emitted",
		zap.Int("directives", len(plan)),
		zap.String("format", a.cfg.Format),
	)

	var buf bytes.Buffer
	if err := render.Write(&buf, plan, render.Format(a.cfg.Format)); err != nil {
		return fmt.Errorf("render link plan: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write link plan: %w", err)
	}
	return nil
}
