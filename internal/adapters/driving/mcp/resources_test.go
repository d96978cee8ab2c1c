package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

func TestExtractDocumentID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected domain.DocID
	}{
		{name: "valid document URI", uri: "docsearch://documents/doc-456", expected: "doc-456"},
		{name: "escaped ID", uri: "docsearch://documents/a%20b", expected: "a b"},
		{name: "invalid prefix", uri: "file://documents/doc-456", expected: ""},
		{name: "bad escape", uri: "docsearch://documents/%zz", expected: ""},
		{name: "empty URI", uri: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractDocumentID(tt.uri))
		})
	}
}

func TestDocumentURI_RoundTrip(t *testing.T) {
	id := domain.DocID("notes/2024 q1")
	assert.Equal(t, id, extractDocumentID(documentURI(id)))
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleDocumentContentResource(t *testing.T) {
	ctx := context.Background()

	t.Run("nil document service returns not found", func(t *testing.T) {
		server, err := NewServer(&Ports{Search: &mockSearchService{}})
		require.NoError(t, err)

		_, err = server.handleDocumentContentResource(ctx, makeReadResourceRequest("docsearch://documents/1"))

		require.Error(t, err)
	})

	t.Run("invalid URI returns not found", func(t *testing.T) {
		mockDoc := &mockDocumentService{}
		server, err := NewServer(&Ports{Search: &mockSearchService{}, Document: mockDoc})
		require.NoError(t, err)

		_, err = server.handleDocumentContentResource(ctx, makeReadResourceRequest("docsearch://invalid/uri"))

		require.Error(t, err)
		assert.Empty(t, mockDoc.lastID)
	})

	t.Run("returns content successfully", func(t *testing.T) {
		mockDoc := &mockDocumentService{
			document: &domain.Document{ID: "1", Filename: "one.txt", Content: "first line\nsecond line"},
		}
		server, err := NewServer(&Ports{Search: &mockSearchService{}, Document: mockDoc})
		require.NoError(t, err)

		result, err := server.handleDocumentContentResource(ctx, makeReadResourceRequest("docsearch://documents/1"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "first line\nsecond line", result.Contents[0].Text)
		assert.Equal(t, "text/plain", result.Contents[0].MIMEType)
		assert.Equal(t, domain.DocID("1"), mockDoc.lastID)
	})

	t.Run("returns error on fetch failure", func(t *testing.T) {
		mockDoc := &mockDocumentService{err: domain.ErrTransport}
		server, err := NewServer(&Ports{Search: &mockSearchService{}, Document: mockDoc})
		require.NoError(t, err)

		_, err = server.handleDocumentContentResource(ctx, makeReadResourceRequest("docsearch://documents/1"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "getting document content")
	})
}
