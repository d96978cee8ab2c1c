package mcp

import (
	"github.com/custodia-labs/docsearch/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Search runs queries against the remote server.
	Search driving.SearchService

	// Document fetches single documents. Optional; without it the
	// document resource reports not found.
	Document driving.DocumentService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
