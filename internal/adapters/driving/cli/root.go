// Package cli implements the docsearch command line on top of cobra.
//
// The root command searches: with a query argument it runs one search and
// exits, without one it reads queries from stdin until "quit" or EOF.
// Subcommands fetch single documents and expose the same search service through
// a TUI and an MCP server.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch/internal/core/ports/driving"
	"github.com/custodia-labs/docsearch/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services holds the driving ports the commands run against.
type Services struct {
	Search   driving.SearchService
	Document driving.DocumentService
}

// ServiceFactory builds the services for a resolved configuration.
type ServiceFactory func(cfg domain.ClientConfig, userAgent string) (*Services, error)

// ConfigLoader opens the configuration file given with --config.
type ConfigLoader func(path string) (driven.ConfigStore, error)

var (
	serviceFactory ServiceFactory
	configLoader   ConfigLoader

	// Resolved by setup before any command runs.
	configStore     driven.ConfigStore
	searchService   driving.SearchService
	documentService driving.DocumentService
	clientConfig    = domain.DefaultClientConfig()
)

// Persistent flag values.
var (
	flagURL     string
	flagLimit   int
	flagTimeout time.Duration
	flagRate    float64
	flagToken   string
	flagColor   string
	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "docsearch [query]",
	Short: "Search documents on a remote search server",
	Long: `Queries a document search server over HTTP, fetches the matching
documents and prints them with the query terms highlighted.

Without a query, docsearch starts an interactive prompt that runs one search
per line. Type 'quit' or send EOF (Ctrl+D) to exit.`,
	Example: `  docsearch "inverted index"
  docsearch --url http://search.local:7878 -n 3 rust
  docsearch`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runSearch,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagURL, "url", domain.DefaultServerURL, "search server URL")
	pf.IntVarP(&flagLimit, "limit", "n", domain.DefaultMaxResults, "maximum number of documents to fetch")
	pf.DurationVar(&flagTimeout, "timeout", domain.DefaultTimeout, "timeout for each request to the server")
	pf.Float64Var(&flagRate, "rate", 0, "maximum requests per second to the server (0 = unlimited)")
	pf.StringVar(&flagToken, "token", "", "bearer token for the search server")
	pf.StringVar(&flagColor, "color", string(domain.ColorAlways), "colour output: always, auto or never")
	pf.StringVar(&flagConfig, "config", "", "TOML file with default settings")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "print debug logs to stderr")
}

// SetServiceFactory sets how the search service is built once flags are parsed.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

// SetConfigLoader sets how --config files are read.
func SetConfigLoader(l ConfigLoader) {
	configLoader = l
}

// SetVersion sets the version reported by the version command and user agent.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// setup resolves configuration and builds the search service.
func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	clientConfig = cfg
	logger.Debug("Server: %s, limit: %d, timeout: %s, rate: %g, colour: %s",
		cfg.ServerURL, cfg.MaxResults, cfg.Timeout, cfg.RateLimit, cfg.Color)

	if serviceFactory == nil {
		return nil
	}
	svcs, err := serviceFactory(cfg, userAgent())
	if err != nil {
		return fmt.Errorf("create search service: %w", err)
	}
	if svcs != nil {
		searchService = svcs.Search
		documentService = svcs.Document
	}
	return nil
}

// userAgent identifies this client to the search server.
func userAgent() string {
	return "docsearch/" + version
}

// resolveConfig loads the optional config file and layers it with defaults
// and explicit flags.
func resolveConfig(cmd *cobra.Command) (domain.ClientConfig, error) {
	configStore = nil
	if flagConfig != "" {
		if configLoader == nil {
			return domain.ClientConfig{}, fmt.Errorf("%w: config files are not supported", domain.ErrInvalidConfig)
		}
		store, err := configLoader(flagConfig)
		if err != nil {
			return domain.ClientConfig{}, fmt.Errorf("load config: %w", err)
		}
		logger.Debug("Loaded config from %s", store.Path())
		configStore = store
	}
	return buildConfig(cmd, configStore)
}

// buildConfig layers defaults, the store when present and flags set on the
// command line, in that order.
func buildConfig(cmd *cobra.Command, store driven.ConfigStore) (domain.ClientConfig, error) {
	cfg := domain.DefaultClientConfig()
	if store != nil {
		if err := applyConfigStore(&cfg, store); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("url") {
		cfg.ServerURL = flagURL
	}
	if flags.Changed("limit") {
		cfg.MaxResults = flagLimit
	}
	if flags.Changed("timeout") {
		cfg.Timeout = flagTimeout
	}
	if flags.Changed("rate") {
		cfg.RateLimit = flagRate
	}
	if flags.Changed("token") {
		cfg.Token = flagToken
	}
	if flags.Changed("color") {
		cfg.Color = domain.ColorMode(flagColor)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyConfigStore copies the keys present in the store onto cfg.
func applyConfigStore(cfg *domain.ClientConfig, store driven.ConfigStore) error {
	if v := store.GetString("server.url"); v != "" {
		cfg.ServerURL = v
	}
	if _, ok := store.Get("server.timeout"); ok {
		d, err := store.GetDuration("server.timeout")
		if err != nil {
			return err
		}
		cfg.Timeout = d
	}
	if _, ok := store.Get("server.rate"); ok {
		cfg.RateLimit = store.GetFloat("server.rate")
	}
	if v := store.GetString("server.token"); v != "" {
		cfg.Token = v
	}
	if v := store.GetInt("search.limit"); v != 0 {
		cfg.MaxResults = v
	}
	if v := store.GetString("display.color"); v != "" {
		cfg.Color = domain.ColorMode(v)
	}
	return nil
}

// colorEnabled decides whether match highlights go to w.
func colorEnabled(mode domain.ColorMode, w io.Writer) bool {
	switch mode {
	case domain.ColorNever:
		return false
	case domain.ColorAuto:
		return isTerminal(w)
	default:
		return true
	}
}

// chromeEnabled decides whether headers and errors are styled. Forced
// colour only highlights matches, so scripts and pipes get stable headers.
func chromeEnabled(mode domain.ColorMode, w io.Writer) bool {
	return mode == domain.ColorAuto && isTerminal(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
