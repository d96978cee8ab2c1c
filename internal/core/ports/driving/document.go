package driving

import (
	"context"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// DocumentService fetches single documents by ID.
type DocumentService interface {
	// Get returns the document the server holds under id.
	Get(ctx context.Context, id domain.DocID) (*domain.Document, error)
}
