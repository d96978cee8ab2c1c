package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil search service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingSearchService)
	})

	t.Run("nil ports returns error", func(t *testing.T) {
		_, err := NewServer(nil)
		assert.ErrorIs(t, err, ErrMissingSearchService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{Search: &mockSearchService{}})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})

	t.Run("document port is optional", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Search:   &mockSearchService{},
			Document: &mockDocumentService{},
		})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestServerInstructions(t *testing.T) {
	tests := []struct {
		name        string
		ports       *Ports
		contains    []string
		notContains []string
	}{
		{
			name:        "search only",
			ports:       &Ports{Search: &mockSearchService{}},
			contains:    []string{"search tool", "limit"},
			notContains: []string{"get_document", "docsearch://documents/"},
		},
		{
			name: "search and document",
			ports: &Ports{
				Search:   &mockSearchService{},
				Document: &mockDocumentService{},
			},
			contains: []string{"search tool", "get_document", "docsearch://documents/{documentId}"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := serverInstructions(tt.ports)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, got, unwanted)
			}
		})
	}
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil search service returns error", func(t *testing.T) {
		ports := &Ports{Document: &mockDocumentService{}}
		assert.ErrorIs(t, ports.Validate(), ErrMissingSearchService)
	})

	t.Run("search only is valid", func(t *testing.T) {
		ports := &Ports{Search: &mockSearchService{}}
		assert.NoError(t, ports.Validate())
	})
}
