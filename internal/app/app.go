package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/specialistvlad/pagegrid/internal/config"
	"github.com/specialistvlad/pagegrid/internal/ctxlog"
	"github.com/specialistvlad/pagegrid/internal/descriptor"
	"github.com/specialistvlad/pagegrid/internal/esbuild"
	"github.com/specialistvlad/pagegrid/internal/render"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	loader config.Loader
	config *Config
}

// NewApp is the constructor for the main application. Descriptors go to outW,
// logs go to logW through an isolated logger.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		loader: loader,
		config: cfg,
	}
}

// Describe loads the configuration and assembles a fresh descriptor from it.
func (a *App) Describe(ctx context.Context) (*descriptor.Descriptor, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	model, err := a.loader.Load(ctx, a.config.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if a.config.OutputDir != "" {
		out, err := filepath.Abs(a.config.OutputDir)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve output directory %s: %w", a.config.OutputDir, err)
		}
		model.OutputDir = out
	}
	a.logger.Debug("Configuration loaded.", "build", model.Name, "modules", model.Modules)

	d, err := descriptor.Assemble(model)
	if err != nil {
		return nil, err
	}
	a.logger.Info("Descriptor assembled.", "build", d.Name, "entries", len(d.Entry), "pages", len(d.Plugins.Pages), "rules", len(d.Module.Rules))
	return d, nil
}

// emit hands d to the configured target.
func (a *App) emit(ctx context.Context, d *descriptor.Descriptor) error {
	switch a.config.Emit {
	case EmitEsbuild:
		plan, err := esbuild.NewPlan(d)
		if err != nil {
			return err
		}
		res, err := plan.Run(ctxlog.WithLogger(ctx, a.logger))
		if err != nil {
			return err
		}
		for _, out := range res.Outputs {
			fmt.Fprintln(a.outW, out)
		}
		return nil
	default:
		return render.Write(a.outW, a.config.Format, d)
	}
}
