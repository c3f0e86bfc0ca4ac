package app

import (
	"context"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/rook-computer/duelicons/internal/export"
	"github.com/rook-computer/duelicons/internal/pack"
	"github.com/rook-computer/duelicons/internal/render"
	"github.com/rook-computer/duelicons/internal/state"
	"github.com/rook-computer/duelicons/internal/system"
)

// Config holds the compiled-in output locations.
type Config struct {
	IconDir string
}

// DefaultConfig writes into build/icons below the working directory.
func DefaultConfig() Config {
	return Config{IconDir: filepath.Join("build", "icons")}
}

type App struct {
	Config   Config
	Store    *state.Store
	Render   render.Renderer
	Exporter *export.Exporter
	Iconset  *pack.IconsetPackager
	Logger   Logger
}

func New(cfg Config, store *state.Store, renderer render.Renderer, runner system.Runner) *App {
	return &App{
		Config:   cfg,
		Store:    store,
		Render:   renderer,
		Exporter: export.NewExporter(cfg.IconDir),
		Iconset:  pack.NewIconsetPackager(cfg.IconDir, runner, store),
		Logger:   NoopLogger{},
	}
}

// Run renders the logo, writes the PNG set and the ICO, then attempts the
// ICNS. Steps run strictly in order and the first error ends the run.
func (app *App) Run(ctx context.Context) error {
	if app.Store == nil {
		app.Store = state.NewStore()
	}
	if app.Render == nil {
		app.Render = render.NewLogoRenderer()
	}
	if lr, ok := app.Render.(*render.LogoRenderer); ok {
		lr.Logger = app.Logger
	}
	app.Exporter.Logger = app.Logger
	app.Iconset.Logger = app.Logger
	if app.Iconset.Store == nil {
		app.Iconset.Store = app.Store
	}

	canvas, err := app.Render.Render(ctx)
	if err != nil {
		app.Logger.Errorf("app", "render error: %v", err)
		return err
	}

	written, err := app.Exporter.WritePNGSet(canvas)
	for _, w := range written {
		app.Store.AddArtifact(state.Artifact{Path: w.Path, Kind: "png", Size: w.Size})
	}
	if err != nil {
		app.Logger.Errorf("app", "export error: %v", err)
		return err
	}

	icoPath := filepath.Join(app.Config.IconDir, pack.ICOName)
	if err := pack.WriteICO(icoPath, canvas, pack.ICOSizes); err != nil {
		app.Logger.Errorf("ico", "%v", err)
		return err
	}
	app.Store.AddArtifact(state.Artifact{Path: icoPath, Kind: "ico"})
	app.Logger.Infof("ico", "wrote %s with %d sizes", icoPath, len(pack.ICOSizes))

	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "run interrupted before icns packaging")
	}
	return app.Iconset.Package(ctx, canvas)
}
