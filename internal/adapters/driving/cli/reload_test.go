package cli

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// watchingConfigStore is a mockConfigStore whose changes are triggered by the test.
type watchingConfigStore struct {
	mockConfigStore
	changes chan map[string]any
}

func (w *watchingConfigStore) Watch(ctx context.Context, onChange func()) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case values := <-w.changes:
			w.values = values
			onChange()
		}
	}
}

func outcomeFrom(name string) func(context.Context, string, domain.SearchOptions) (domain.SearchOutcome, error) {
	return func(_ context.Context, query string, _ domain.SearchOptions) (domain.SearchOutcome, error) {
		return domain.SearchOutcome{Query: name + ":" + query}, nil
	}
}

func newWatchedCommand(t *testing.T) (*cobra.Command, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	cmd := &cobra.Command{}
	cmd.SetContext(ctx)
	return cmd, cancel
}

func TestLiveServices_WithoutWatcher(t *testing.T) {
	first := &mockSearchService{}
	setupTestServices(t, first, nil)
	searchService = first
	configStore = &mockConfigStore{values: map[string]any{}}

	search, doc := liveServices(&cobra.Command{})

	assert.Same(t, first, search)
	assert.Nil(t, doc)
}

func TestLiveServices_SwapsOnChange(t *testing.T) {
	first := &mockSearchService{SearchFunc: outcomeFrom("first")}
	second := &mockSearchService{SearchFunc: outcomeFrom("second")}
	setupTestServices(t, nil, nil)

	var built []domain.ClientConfig
	SetServiceFactory(func(cfg domain.ClientConfig, _ string) (*Services, error) {
		built = append(built, cfg)
		return &Services{Search: second, Document: &mockDocumentService{}}, nil
	})
	searchService = first
	documentService = &mockDocumentService{}
	store := &watchingConfigStore{
		mockConfigStore: mockConfigStore{values: map[string]any{"server.url": "http://one:1"}},
		changes:         make(chan map[string]any),
	}
	configStore = store

	cmd, cancel := newWatchedCommand(t)
	search, doc := liveServices(cmd)
	require.NotNil(t, doc)

	outcome, err := search.Search(context.Background(), "q", domain.SearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, "first:q", outcome.Query)

	store.changes <- map[string]any{"server.url": "http://two:2"}

	assert.Eventually(t, func() bool {
		outcome, err := search.Search(context.Background(), "q", domain.SearchOptions{})
		return err == nil && outcome.Query == "second:q"
	}, 2*time.Second, 10*time.Millisecond)
	require.Len(t, built, 1)
	assert.Equal(t, "http://two:2", built[0].ServerURL)

	cancel()
}

func TestLiveServices_InvalidChangeKeepsServices(t *testing.T) {
	first := &mockSearchService{SearchFunc: outcomeFrom("first")}
	setupTestServices(t, nil, nil)

	factoryCalls := make(chan struct{}, 1)
	SetServiceFactory(func(domain.ClientConfig, string) (*Services, error) {
		factoryCalls <- struct{}{}
		return &Services{Search: &mockSearchService{}}, nil
	})
	searchService = first
	store := &watchingConfigStore{
		mockConfigStore: mockConfigStore{values: map[string]any{}},
		changes:         make(chan map[string]any),
	}
	configStore = store

	cmd, _ := newWatchedCommand(t)
	search, doc := liveServices(cmd)
	assert.Nil(t, doc)

	// The unbuffered send completes once Watch has received it; the next
	// send completes only after the rejected reload has finished.
	store.changes <- map[string]any{"server.url": "ftp://nope"}
	store.changes <- map[string]any{"server.url": "ftp://still-nope"}

	assert.Empty(t, factoryCalls)
	outcome, err := search.Search(context.Background(), "q", domain.SearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, "first:q", outcome.Query)
}

func TestReloadingServices_GetWithoutDocumentService(t *testing.T) {
	live := &reloadingServices{}
	live.current.Store(&Services{Search: &mockSearchService{}})

	_, err := live.Get(context.Background(), "1")

	assert.ErrorIs(t, err, domain.ErrSearchUnavailable)
}
