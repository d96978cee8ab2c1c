package driving

import (
	"context"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// SearchService provides search capabilities to external actors.
type SearchService interface {
	// Search queries the server and resolves the top hits into documents.
	// A non-nil error means no documents were returned.
	Search(ctx context.Context, query string, opts domain.SearchOptions) (domain.SearchOutcome, error)
}
