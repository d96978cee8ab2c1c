package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// mockSearchService implements driving.SearchService for CLI tests.
type mockSearchService struct {
	SearchFunc func(ctx context.Context, query string, opts domain.SearchOptions) (domain.SearchOutcome, error)

	mu      sync.Mutex
	queries []string
	opts    []domain.SearchOptions
}

func (m *mockSearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) (domain.SearchOutcome, error) {
	m.mu.Lock()
	m.queries = append(m.queries, query)
	m.opts = append(m.opts, opts)
	m.mu.Unlock()

	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, opts)
	}
	return domain.SearchOutcome{Query: query}, nil
}

func (m *mockSearchService) Queries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.queries...)
}

// mockDocumentService implements driving.DocumentService for CLI tests.
type mockDocumentService struct {
	doc *domain.Document
	err error

	lastID domain.DocID
}

func (m *mockDocumentService) Get(_ context.Context, id domain.DocID) (*domain.Document, error) {
	m.lastID = id
	return m.doc, m.err
}

// mockConfigStore implements driven.ConfigStore over a flat key map.
type mockConfigStore struct {
	values map[string]any
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	s, _ := m.values[key].(string)
	return s
}

func (m *mockConfigStore) GetInt(key string) int {
	switch v := m.values[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

func (m *mockConfigStore) GetFloat(key string) float64 {
	switch v := m.values[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func (m *mockConfigStore) GetDuration(key string) (time.Duration, error) {
	switch v := m.values[key].(type) {
	case string:
		return time.ParseDuration(v)
	case time.Duration:
		return v, nil
	}
	return 0, domain.ErrInvalidConfig
}

func (m *mockConfigStore) Path() string {
	return "test.toml"
}

// testEnv captures what the service factory was asked to build.
type testEnv struct {
	configs    []domain.ClientConfig
	userAgents []string
}

// setupTestServices installs a factory returning the given services and
// restores all package state when the test ends.
func setupTestServices(t *testing.T, search *mockSearchService, doc *mockDocumentService) *testEnv {
	t.Helper()

	env := &testEnv{}
	SetServiceFactory(func(cfg domain.ClientConfig, userAgent string) (*Services, error) {
		env.configs = append(env.configs, cfg)
		env.userAgents = append(env.userAgents, userAgent)
		svcs := &Services{}
		if search != nil {
			svcs.Search = search
		}
		if doc != nil {
			svcs.Document = doc
		}
		return svcs, nil
	})

	t.Cleanup(func() {
		serviceFactory = nil
		configLoader = nil
		configStore = nil
		searchService = nil
		documentService = nil
		clientConfig = domain.DefaultClientConfig()
		resetFlags(rootCmd)
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	return env
}

// resetFlags restores every flag in the command tree to its default.
// pflag keeps values and Changed between Execute calls.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// executeRoot runs the root command with stdin and returns stdout.
func executeRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	out := new(bytes.Buffer)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(args)

	err := Execute(context.Background())
	return out.String(), err
}
