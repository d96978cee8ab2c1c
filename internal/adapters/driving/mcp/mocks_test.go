package mcp

import (
	"context"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	outcome domain.SearchOutcome
	err     error

	lastQuery string
	lastOpts  domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	query string,
	opts domain.SearchOptions,
) (domain.SearchOutcome, error) {
	m.lastQuery = query
	m.lastOpts = opts
	return m.outcome, m.err
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	document *domain.Document
	err      error

	lastID domain.DocID
}

func (m *mockDocumentService) Get(_ context.Context, id domain.DocID) (*domain.Document, error) {
	m.lastID = id
	return m.document, m.err
}
