package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kyokomi/emoji/v2"
	"github.com/rs/zerolog/log"

	"github.com/haytac/fa2emoji/internal/config"
	"github.com/haytac/fa2emoji/internal/database"
	"github.com/haytac/fa2emoji/internal/icons"
	"github.com/haytac/fa2emoji/internal/locate"
	"github.com/haytac/fa2emoji/internal/metrics"
	"github.com/haytac/fa2emoji/internal/report"
	"github.com/haytac/fa2emoji/internal/rewrite"
	"github.com/haytac/fa2emoji/pkg/interfaces"
)

// Application holds all dependencies for one rewrite run.
type Application struct {
	Config   *config.AppConfig
	Locator  interfaces.Locator
	Rewriter interfaces.Rewriter
	Reporter *report.Console

	DB       *database.DB
	RunStore *database.RunStore
}

// NewApplication wires the pipeline from config. The history database is
// only opened when enabled; the default run is stateless.
func NewApplication(cfg *config.AppConfig) (*Application, error) {
	app := &Application{
		Config:   cfg,
		Locator:  locate.NewFSLocator(cfg.Extensions, cfg.ExcludeDirs),
		Rewriter: rewrite.NewIconRewriter(icons.Default(), cfg.DryRun),
		Reporter: report.NewConsole(os.Stdout),
	}

	if cfg.History.Enabled {
		db, err := database.Connect(cfg.History.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open history database: %w", err)
		}
		app.DB = db
		app.RunStore = database.NewRunStore(db)
	}

	return app, nil
}

// Run is the whole pipeline: Locate → for each path {Rewrite → Report} →
// Summarize. Strictly sequential; ctx is checked between files so an
// interrupt stops cleanly at a file boundary.
func (app *Application) Run(ctx context.Context) error {
	metrics.StartServer(app.Config.MetricsPort)

	candidates, err := app.Locator.FindCandidates(app.Config.ViewsDir)
	if err != nil {
		if errors.Is(err, locate.ErrRootNotFound) {
			// Missing root is a message, not a process failure.
			emoji.Printf(":x: Views directory not found: %s\n", app.Config.ViewsDir)
			return nil
		}
		return fmt.Errorf("locating candidate files: %w", err)
	}

	if app.Config.DryRun {
		log.Info().Msg("Dry run: no files will be written")
	}

	app.Reporter.Start(len(candidates))

	started := time.Now()
	results := make([]interfaces.FileResult, 0, len(candidates))
	for _, path := range candidates {
		select {
		case <-ctx.Done():
			log.Warn().Int("remaining", len(candidates)-len(results)).Msg("Run interrupted, remaining files untouched")
			return ctx.Err()
		default:
		}

		res := app.Rewriter.RewriteFile(ctx, path)
		results = append(results, res)
		app.Reporter.FileDone(app.Config.ViewsDir, res)
		metrics.ObserveResult(res.Count, res.Modified, res.Err != nil)
	}
	metrics.RunDuration.Set(time.Since(started).Seconds())

	app.Reporter.Summarize()

	if app.RunStore != nil {
		if _, err := app.RunStore.RecordRun(ctx, app.Config.ViewsDir, app.Config.DryRun, results); err != nil {
			log.Error().Err(err).Msg("Failed to record run history")
		}
	}

	return nil
}

// Close releases the history database, if open.
func (app *Application) Close() {
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing history database")
		}
	}
}
