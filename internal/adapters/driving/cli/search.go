package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsearch/internal/adapters/driving/display"
	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/logger"
)

// Prompt shown before each interactive query.
const interactivePrompt = "Enter search term (or 'quit' to exit): "

// quitCommand ends the interactive loop, compared case-insensitively.
const quitCommand = "quit"

// maxQueryLine bounds one line of interactive input.
const maxQueryLine = 1024 * 1024

var searchJSON bool

func init() {
	rootCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return fmt.Errorf("search service not configured: %w", domain.ErrSearchUnavailable)
	}

	out := cmd.OutOrStdout()
	printer := display.NewPrinter(out, colorEnabled(clientConfig.Color, out), chromeEnabled(clientConfig.Color, out))
	search := func(ctx context.Context, query string) {
		outcome, err := searchService.Search(ctx, query, domain.SearchOptions{
			MaxResults: clientConfig.MaxResults,
		})
		if searchJSON {
			writeSearchJSON(out, query, outcome, err)
			return
		}
		printer.Outcome(query, outcome, err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if len(args) == 1 && args[0] != "" {
		search(ctx, args[0])
		return nil
	}

	return runInteractive(ctx, cmd.InOrStdin(), out, search)
}

// runInteractive prompts for queries until quit, EOF or cancellation.
// Blank lines re-prompt; every other line runs exactly one search.
func runInteractive(
	ctx context.Context,
	in io.Reader,
	out io.Writer,
	search func(ctx context.Context, query string),
) error {
	readCtx, stopReading := context.WithCancel(ctx)
	defer stopReading()
	lines, readErr := readLines(readCtx, in)

	for {
		fmt.Fprint(out, interactivePrompt)

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return nil
		case line, ok = <-lines:
		}
		if !ok {
			fmt.Fprintln(out)
			return <-readErr
		}

		query := strings.TrimSpace(line)
		if strings.EqualFold(query, quitCommand) {
			return nil
		}
		if query == "" {
			continue
		}

		logger.Debug("Interactive query: %q", query)
		search(ctx, query)
		if ctx.Err() != nil {
			return nil
		}
	}
}

// readLines scans in on its own goroutine so a blocked read never delays
// cancellation. The error channel yields the scanner error after lines closes.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(errc)
		defer close(lines)

		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxQueryLine)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			errc <- fmt.Errorf("read query: %w", err)
		}
	}()

	return lines, errc
}

// searchJSONOutput is the --json form of one search.
type searchJSONOutput struct {
	Query        string            `json:"query"`
	TotalResults int               `json:"total_results"`
	Documents    []domain.Document `json:"documents"`
	Error        string            `json:"error,omitempty"`
}

func writeSearchJSON(w io.Writer, query string, outcome domain.SearchOutcome, err error) {
	output := searchJSONOutput{
		Query:        query,
		TotalResults: outcome.TotalResults,
		Documents:    outcome.Documents,
	}
	if output.Documents == nil {
		output.Documents = []domain.Document{}
	}
	if err != nil {
		output.Error = err.Error()
	}

	data, mErr := json.MarshalIndent(output, "", "  ")
	if mErr != nil {
		fmt.Fprintf(w, "%s%v\n", display.ErrorPrefix, mErr)
		return
	}
	fmt.Fprintln(w, string(data))
}
