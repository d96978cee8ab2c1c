// Package mcp provides an MCP (Model Context Protocol) server adapter for docsearch.
// It lets AI assistants query the remote document search server through the
// same search service the command line uses.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
