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

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService resolves server hits into documents.
type SearchService struct {
	server driven.SearchServer
}

// NewSearchService creates a new search service backed by the given server.
func NewSearchService(server driven.SearchServer) *SearchService {
	return &SearchService{server: server}
}

// Search runs the query, then fetches each of the first MaxResults hits in
// server order, one request at a time. The first failed fetch aborts the whole
// search: callers get an error and no documents, never a partial list.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) (domain.SearchOutcome, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	if s.server == nil {
		return domain.SearchOutcome{}, domain.ErrSearchUnavailable
	}
	if strings.TrimSpace(query) == "" {
		return domain.SearchOutcome{}, fmt.Errorf("%w: empty query", domain.ErrInvalidInput)
	}

	limit := opts.EffectiveMaxResults()
	logger.Debug("Max results: %d", limit)

	resp, err := s.server.Search(ctx, query)
	if err != nil {
		logger.Warn("Search request failed: %v", err)
		return domain.SearchOutcome{}, fmt.Errorf("search: %w", err)
	}
	if resp == nil {
		return domain.SearchOutcome{}, fmt.Errorf("search: %w: empty body", domain.ErrMalformedResponse)
	}

	outcome := domain.SearchOutcome{
		Query:        query,
		TotalResults: resp.TotalResults,
		Documents:    []domain.Document{},
	}

	if resp.TotalResults == 0 {
		logger.Info("Server reported no results")
		return outcome, nil
	}

	hits := resp.Results
	if len(hits) > limit {
		hits = hits[:limit]
	}
	logger.Debug("Server returned %d hits (total %d), fetching %d",
		len(resp.Results), resp.TotalResults, len(hits))

	docs := make([]domain.Document, 0, len(hits))
	for i := range hits {
		doc, err := s.fetch(ctx, hits[i])
		if err != nil {
			logger.Warn("Document %s failed, discarding %d fetched: %v", hits[i].DocID, len(docs), err)
			return domain.SearchOutcome{}, err
		}
		docs = append(docs, doc)
	}

	outcome.Documents = docs
	logger.Debug("Fetched %d documents", len(docs))
	return outcome, nil
}

func (s *SearchService) fetch(ctx context.Context, hit domain.SearchResult) (domain.Document, error) {
	doc, err := s.server.Document(ctx, hit.DocID)
	if err != nil {
		return domain.Document{}, fmt.Errorf("fetch document %s: %w", hit.DocID, err)
	}
	if doc == nil {
		return domain.Document{}, fmt.Errorf("fetch document %s: %w: empty body", hit.DocID, domain.ErrMalformedResponse)
	}

	out := *doc
	out.Matches = hit.Matches
	return out, nil
}
