package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search query sent to the document server"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of documents to fetch (default 10)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Documents    []DocumentOutput `json:"documents"`
	Count        int              `json:"count"`
	TotalResults int              `json:"total_results"`
}

// DocumentInput is the input schema for the get_document tool.
type DocumentInput struct {
	DocumentID string `json:"document_id" jsonschema:"the server-side document identifier"`
}

// DocumentOutput represents one fetched document.
type DocumentOutput struct {
	DocumentID string `json:"document_id"`
	Filename   string `json:"filename"`
	Content    string `json:"content"`
	Matches    string `json:"matches,omitempty"`
	URI        string `json:"uri"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search the remote document server and return the matching documents",
	}, s.handleSearch)

	if s.ports.Document != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "get_document",
			Description: "Fetch a single document from the remote document server by ID",
		}, s.handleGetDocument)
	}
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	opts := domain.SearchOptions{MaxResults: input.Limit}
	outcome, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Documents:    make([]DocumentOutput, len(outcome.Documents)),
		Count:        len(outcome.Documents),
		TotalResults: outcome.TotalResults,
	}
	for i := range outcome.Documents {
		output.Documents[i] = toDocumentOutput(&outcome.Documents[i])
	}

	return nil, output, nil
}

// handleGetDocument handles the get_document tool invocation.
func (s *Server) handleGetDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DocumentInput,
) (*mcp.CallToolResult, DocumentOutput, error) {
	doc, err := s.ports.Document.Get(ctx, domain.DocID(input.DocumentID))
	if err != nil {
		return nil, DocumentOutput{}, fmt.Errorf("getting document: %w", err)
	}
	return nil, toDocumentOutput(doc), nil
}

func toDocumentOutput(doc *domain.Document) DocumentOutput {
	return DocumentOutput{
		DocumentID: doc.ID.String(),
		Filename:   doc.Filename,
		Content:    doc.Content,
		Matches:    doc.Matches.String(),
		URI:        documentURI(doc.ID),
	}
}
