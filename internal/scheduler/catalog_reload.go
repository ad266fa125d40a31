package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/thoth-pub/cc-license/internal/catalog"
	"github.com/thoth-pub/cc-license/internal/logger"
)

// CatalogReloader handles periodic reloading of the jurisdiction catalog.
type CatalogReloader struct {
	loader        *catalog.Loader
	catalog       *catalog.Catalog
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewCatalogReloader creates a new catalog reloader.
func NewCatalogReloader(
	jurisdictionsFile string,
	cat *catalog.Catalog,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *CatalogReloader {
	return &CatalogReloader{
		loader:        catalog.NewLoader(jurisdictionsFile),
		catalog:       cat,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start loads the catalog once and begins the periodic reload loop.
func (cr *CatalogReloader) Start(ctx context.Context) error {
	if err := cr.Reload(); err != nil {
		return fmt.Errorf("initial catalog load failed: %w", err)
	}

	ticker := time.NewTicker(cr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := cr.Reload(); err != nil {
					cr.logger.Error("failed to reload jurisdiction catalog",
						logger.Error(err))
				}
			case <-cr.manualTrigger:
				cr.logger.Info("manual catalog reload triggered")
				if err := cr.Reload(); err != nil {
					cr.logger.Error("failed to reload jurisdiction catalog",
						logger.Error(err))
				}
			case <-cr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader.
func (cr *CatalogReloader) Stop() {
	close(cr.stopCh)
}

// Reload loads the jurisdictions file and swaps the catalog content.
// A load failure leaves the previous catalog in place.
func (cr *CatalogReloader) Reload() error {
	config, err := cr.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load jurisdictions: %w", err)
	}

	cr.catalog.Update(config)
	cr.logger.Info("jurisdiction catalog reloaded",
		logger.Int("count", cr.catalog.Count()))

	return nil
}
