package driven

import (
	"context"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// SearchServer is the remote document search service.
// Backed by HTTP in production; implementations must not retry.
type SearchServer interface {
	// Search runs a query and returns the server's hit list.
	Search(ctx context.Context, query string) (*domain.SearchResponse, error)

	// Document fetches the full document for a hit.
	Document(ctx context.Context, id domain.DocID) (*domain.Document, error)
}
