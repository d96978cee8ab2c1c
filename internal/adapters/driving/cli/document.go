package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsearch/internal/adapters/driving/display"
	"github.com/custodia-labs/docsearch/internal/core/domain"
)

var documentCmd = &cobra.Command{
	Use:   "document [doc-id]",
	Short: "Fetch a single document by ID",
	Long: `Fetches one document from the search server without running a search.

Use --highlight to mark a term in the content the same way search results are
marked.`,
	Example: `  docsearch document 42
  docsearch document 42 --highlight "inverted index"`,
	Args: cobra.ExactArgs(1),
	RunE: runDocument,
}

var (
	documentJSON      bool
	documentHighlight string
)

func init() {
	documentCmd.Flags().BoolVar(&documentJSON, "json", false, "output the document as JSON")
	documentCmd.Flags().StringVar(&documentHighlight, "highlight", "", "term to highlight in the content")
	rootCmd.AddCommand(documentCmd)
}

func runDocument(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return fmt.Errorf("document service not configured: %w", domain.ErrSearchUnavailable)
	}

	doc, err := documentService.Get(cmd.Context(), domain.DocID(args[0]))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if documentJSON {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal document: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	printer := display.NewPrinter(out, colorEnabled(clientConfig.Color, out), chromeEnabled(clientConfig.Color, out))
	printer.Results(documentHighlight, []domain.Document{*doc})
	return nil
}
