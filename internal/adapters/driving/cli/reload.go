package cli

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch/internal/core/ports/driving"
	"github.com/custodia-labs/docsearch/internal/logger"
)

// reloadingServices forwards to the current services and swaps them when the
// config file changes. Long-running commands use it so server settings can be
// edited without a restart.
type reloadingServices struct {
	current atomic.Pointer[Services]
}

func (r *reloadingServices) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) (domain.SearchOutcome, error) {
	return r.current.Load().Search.Search(ctx, query, opts)
}

func (r *reloadingServices) Get(ctx context.Context, id domain.DocID) (*domain.Document, error) {
	doc := r.current.Load().Document
	if doc == nil {
		return nil, fmt.Errorf("document service not configured: %w", domain.ErrSearchUnavailable)
	}
	return doc.Get(ctx, id)
}

// reload rebuilds the services from the updated store. Invalid settings are
// logged and the previous services stay in place.
func (r *reloadingServices) reload(cmd *cobra.Command, store driven.ConfigStore) {
	cfg, err := buildConfig(cmd, store)
	if err != nil {
		logger.Warn("Ignoring config change: %v", err)
		return
	}
	svcs, err := serviceFactory(cfg, userAgent())
	if err != nil {
		logger.Warn("Ignoring config change: %v", err)
		return
	}
	if svcs == nil || svcs.Search == nil {
		logger.Warn("Ignoring config change: no search service")
		return
	}
	r.current.Store(svcs)
	logger.Info("Search server settings reloaded (%s)", cfg.ServerURL)
}

// liveServices returns the services for a long-running command. When the
// config file can be watched, they follow changes to it until the command's
// context ends; otherwise the resolved services are returned as they are.
func liveServices(cmd *cobra.Command) (driving.SearchService, driving.DocumentService) {
	watcher, ok := configStore.(driven.ConfigWatcher)
	if !ok || searchService == nil || serviceFactory == nil {
		return searchService, documentService
	}

	live := &reloadingServices{}
	live.current.Store(&Services{Search: searchService, Document: documentService})

	store := configStore
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	go func() {
		if err := watcher.Watch(ctx, func() { live.reload(cmd, store) }); err != nil {
			logger.Warn("Config watch stopped: %v", err)
		}
	}()

	var doc driving.DocumentService
	if documentService != nil {
		doc = live
	}
	return live, doc
}
