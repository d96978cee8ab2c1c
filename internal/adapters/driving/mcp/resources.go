package mcp

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for docsearch resources.
	uriScheme = "docsearch://"

	documentsPrefix = uriScheme + "documents/"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: documentsPrefix + "{documentId}",
		Name:        "document-content",
		Description: "Content of a document held by the search server",
		MIMEType:    "text/plain",
	}, s.handleDocumentContentResource)
}

// handleDocumentContentResource returns the content of a specific document.
func (s *Server) handleDocumentContentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Document == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	docID := extractDocumentID(req.Params.URI)
	if docID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	doc, err := s.ports.Document.Get(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("getting document content: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     doc.Content,
		}},
	}, nil
}

// documentURI builds the resource URI for a document.
func documentURI(id domain.DocID) string {
	return documentsPrefix + url.PathEscape(id.String())
}

// extractDocumentID extracts the document ID from a URI like docsearch://documents/{documentId}.
func extractDocumentID(uri string) domain.DocID {
	if !strings.HasPrefix(uri, documentsPrefix) {
		return ""
	}

	id, err := url.PathUnescape(strings.TrimPrefix(uri, documentsPrefix))
	if err != nil {
		return ""
	}
	return domain.DocID(id)
}
