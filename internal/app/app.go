// Package app implements the application layer for livecheck.
package app

import (
	"context"
	"runtime"

	"go.trai.ch/livecheck/internal/core/domain"
	"go.trai.ch/livecheck/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	loader      ports.DefinitionLoader
	logger      ports.Logger
	concurrency int
}

// Result is the livecheck configuration of one package definition.
type Result struct {
	Name     string
	Path     string
	Snapshot domain.Snapshot
}

// New creates a new App instance.
func New(loader ports.DefinitionLoader, logger ports.Logger) *App {
	return &App{
		loader:      loader,
		logger:      logger,
		concurrency: runtime.NumCPU(),
	}
}

// WithConcurrency limits how many definitions are loaded at once.
// Values below one keep the current limit.
func (a *App) WithConcurrency(n int) *App {
	if n > 0 {
		a.concurrency = n
	}
	return a
}

// Show loads the given package definitions and returns their livecheck
// snapshots in the order the paths were given. Loading stops at the first error.
func (a *App) Show(ctx context.Context, paths []string) ([]Result, error) {
	if len(paths) == 0 {
		return nil, domain.ErrNoDefinitions
	}

	results := make([]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			f, err := a.loader.Load(path)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to load package definition"), "path", path)
			}

			results[i] = Result{
				Name:     f.Name.String(),
				Path:     path,
				Snapshot: f.LivecheckSnapshot(),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, r := range results {
		if !r.Snapshot.Skip {
			continue
		}
		msg := "livecheck skipped for " + r.Name
		if r.Snapshot.SkipMessage != nil {
			msg += ": " + *r.Snapshot.SkipMessage
		}
		a.logger.Warn(msg)
	}

	return results, nil
}
