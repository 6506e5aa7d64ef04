package app

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"go.trai.ch/sourcerer/internal/core/domain"
	"go.trai.ch/sourcerer/internal/core/ports"
)

// IndexImportOptions configuration for the IndexImport method.
type IndexImportOptions struct {
	ConfigPath string
	Request    domain.ImportRequest
	// Wait polls the service until the import completes or stops.
	Wait bool
}

// IndexImport starts an import on the indexing service.
func (a *App) IndexImport(ctx context.Context, opts IndexImportOptions) error {
	cfg, svc, err := a.indexService(opts.ConfigPath)
	if err != nil {
		return err
	}

	status, err := svc.FullImport(ctx, opts.Request)
	if err != nil {
		return err
	}
	a.printStatus(status)
	if !opts.Wait {
		return nil
	}
	return a.waitForImport(ctx, svc, cfg.Index.PollInterval)
}

// waitForImport polls the import status until the service reports it
// completed. An idle service without a completion message means the import
// stopped early; that is reported as a warning and polling ends.
func (a *App) waitForImport(ctx context.Context, svc ports.IndexService, interval time.Duration) error {
	if interval <= 0 {
		interval = domain.DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		status, err := svc.Status(ctx)
		if err != nil {
			return err
		}

		switch status.Phase() {
		case domain.PhaseCompleted:
			a.printStatus(status)
			a.logger.Info("indexing completed")
			return nil
		case domain.PhaseIdle:
			a.printStatus(status)
			a.logger.Warn("indexing service is idle but did not report completion")
			return nil
		case domain.PhaseRunning, domain.PhaseFinished:
			a.logger.Info(fmt.Sprintf("indexing %s", status.Phase()))
		}
	}
}

// IndexStatus prints the state of the current import.
func (a *App) IndexStatus(ctx context.Context, configPath string) error {
	_, svc, err := a.indexService(configPath)
	if err != nil {
		return err
	}
	status, err := svc.Status(ctx)
	if err != nil {
		return err
	}
	a.printStatus(status)
	return nil
}

// IndexAbort stops the current import.
func (a *App) IndexAbort(ctx context.Context, configPath string) error {
	_, svc, err := a.indexService(configPath)
	if err != nil {
		return err
	}
	status, err := svc.Abort(ctx)
	if err != nil {
		return err
	}
	a.printStatus(status)
	return nil
}

func (a *App) indexService(configPath string) (*domain.Config, ports.IndexService, error) {
	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	svc, err := a.index(cfg.Index)
	if err != nil {
		return nil, nil, err
	}
	return cfg, svc, nil
}

func (a *App) printStatus(status *domain.ImportStatus) {
	_, _ = fmt.Fprintf(a.stdout, "status: %s (%s)\n", status.Status, status.Phase())
	for _, k := range slices.Sorted(maps.Keys(status.Messages)) {
		if k == "" {
			_, _ = fmt.Fprintf(a.stdout, "  %s\n", status.Messages[k])
			continue
		}
		_, _ = fmt.Fprintf(a.stdout, "  %s: %s\n", k, status.Messages[k])
	}
}
