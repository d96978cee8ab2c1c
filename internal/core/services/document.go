package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch/internal/core/ports/driving"
	"github.com/custodia-labs/docsearch/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService fetches documents directly, without a search.
type DocumentService struct {
	server driven.SearchServer
}

// NewDocumentService creates a new document service.
func NewDocumentService(server driven.SearchServer) *DocumentService {
	return &DocumentService{server: server}
}

// Get fetches one document. Matches is left empty since no search produced it.
func (s *DocumentService) Get(ctx context.Context, id domain.DocID) (*domain.Document, error) {
	if s.server == nil {
		return nil, domain.ErrSearchUnavailable
	}
	if strings.TrimSpace(id.String()) == "" {
		return nil, fmt.Errorf("%w: empty document id", domain.ErrInvalidInput)
	}

	logger.Debug("Fetching document %s", id)
	doc, err := s.server.Document(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch document %s: %w", id, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("fetch document %s: %w: empty body", id, domain.ErrMalformedResponse)
	}
	return doc, nil
}
