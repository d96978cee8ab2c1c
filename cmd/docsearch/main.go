// Command docsearch searches a remote document server from the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/docsearch/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docsearch/internal/adapters/driven/searchserver"
	"github.com/custodia-labs/docsearch/internal/adapters/driving/cli"
	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch/internal/core/services"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetConfigLoader(func(path string) (driven.ConfigStore, error) {
		return file.NewConfigStore(path)
	})
	cli.SetServiceFactory(newServices)

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

// newServices wires the HTTP search server adapter into the core services.
func newServices(cfg domain.ClientConfig, userAgent string) (*cli.Services, error) {
	client, err := searchserver.NewClient(cfg.ServerURL, searchserver.Options{
		Timeout:   cfg.Timeout,
		RateLimit: cfg.RateLimit,
		Token:     cfg.Token,
		UserAgent: userAgent,
	})
	if err != nil {
		return nil, err
	}

	return &cli.Services{
		Search:   services.NewSearchService(client),
		Document: services.NewDocumentService(client),
	}, nil
}
