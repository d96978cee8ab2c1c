package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// DocID is the opaque identifier the search server assigns to a document.
// The server may send it as a JSON string or number; the textual form is
// kept unchanged so it can be handed back as the docID query parameter.
type DocID string

// String returns the identifier as sent by the server.
func (id DocID) String() string {
	return string(id)
}

// UnmarshalJSON accepts a JSON string or any other scalar literal.
func (id *DocID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("%w: empty document id", ErrMalformedResponse)
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = DocID(s)
	case '{', '[':
		return fmt.Errorf("%w: document id must be a scalar, got %s", ErrMalformedResponse, data)
	default:
		if string(data) == "null" {
			return fmt.Errorf("%w: document id is null", ErrMalformedResponse)
		}
		*id = DocID(data)
	}
	return nil
}

// MarshalJSON writes numeric identifiers as numbers and everything else as strings.
func (id DocID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseFloat(string(id), 64); err == nil && json.Valid([]byte(id)) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// Matches is the opaque relevance indicator attached to a search hit.
// The raw JSON value is carried from the search result to the document
// without interpretation.
type Matches json.RawMessage

// String renders the value for display: strings without quotes,
// everything else as compact JSON.
func (m Matches) String() string {
	if len(m) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(m, &s); err == nil {
		return s
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, m); err != nil {
		return string(m)
	}
	return buf.String()
}

// MarshalJSON returns the raw value, or null when absent.
func (m Matches) MarshalJSON() ([]byte, error) {
	if len(m) == 0 {
		return []byte("null"), nil
	}
	return m, nil
}

// UnmarshalJSON stores a copy of the raw value.
func (m *Matches) UnmarshalJSON(data []byte) error {
	if m == nil {
		return fmt.Errorf("domain.Matches: UnmarshalJSON on nil pointer")
	}
	*m = append((*m)[0:0], data...)
	return nil
}

// SearchResult is a single hit returned by the search endpoint.
type SearchResult struct {
	// DocID references the document to fetch.
	DocID DocID `json:"doc_id"`

	// Matches is passed through to the fetched document.
	Matches Matches `json:"matches"`
}

// SearchResponse is the body of the search endpoint.
type SearchResponse struct {
	// TotalResults is the number of hits the server found.
	TotalResults int `json:"total_results"`

	// Results lists hits in server order.
	Results []SearchResult `json:"results"`
}

// Document is a full document fetched from the server.
type Document struct {
	// ID is the server's identifier for the document.
	ID DocID `json:"document_id"`

	// Filename is the name the server indexed the document under.
	Filename string `json:"filename"`

	// Content is the full text of the document.
	Content string `json:"content"`

	// Matches is copied client-side from the SearchResult that referenced
	// this document.
	Matches Matches `json:"matches,omitempty"`
}
