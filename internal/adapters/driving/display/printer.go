// Package display renders search outcomes for people: the numbered document
// layout with highlighted content, the no-results notice and search errors.
// The CLI prints through a Printer; the TUI renders the same layout to a string.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/highlight"
)

// Notices printed in place of results.
const (
	NoResultsMessage = "No results found."
	ErrorPrefix      = "Error performing search: "
)

// Printer writes search output to a writer.
type Printer struct {
	out         io.Writer
	styles      *Styles
	highlighter highlight.Highlighter
}

// NewPrinter creates a printer. color wraps matches in ANSI highlight
// markers. styled additionally colours the document headers and the error
// line; without it those lines are written as plain text.
func NewPrinter(w io.Writer, color, styled bool) *Printer {
	h := highlight.Plain()
	if color {
		h = highlight.Default()
	}
	return &Printer{
		out:         w,
		styles:      NewStyles(w, nil, styled),
		highlighter: h,
	}
}

// Styles returns the styles bound to the printer's writer.
func (p *Printer) Styles() *Styles {
	return p.styles
}

// Outcome prints the result of one search: the error, the no-results notice,
// or the documents.
func (p *Printer) Outcome(query string, outcome domain.SearchOutcome, err error) {
	switch {
	case err != nil:
		p.Error(err)
	case outcome.NoResults():
		p.NoResults()
	default:
		p.Results(query, outcome.Documents)
	}
}

// Results prints each document with a 1-based index header.
func (p *Printer) Results(query string, docs []domain.Document) {
	fmt.Fprint(p.out, RenderResults(query, docs, p.highlighter, p.styles))
}

// NoResults prints the zero-results notice.
func (p *Printer) NoResults() {
	fmt.Fprintln(p.out, NoResultsMessage)
}

// Error prints a search failure.
func (p *Printer) Error(err error) {
	fmt.Fprintln(p.out, p.styles.Error.Render(ErrorPrefix+err.Error()))
}

// RenderResults renders documents in the numbered layout:
//
//	--- Document 1 ---
//	Document ID: 7
//	Filename: notes.txt
//	Content:
//	<content with query highlighted>
//	Matches: 3
//
// Each block is preceded by an empty line.
func RenderResults(query string, docs []domain.Document, h highlight.Highlighter, s *Styles) string {
	var b strings.Builder
	for i := range docs {
		doc := &docs[i]
		b.WriteString("\n")
		b.WriteString(s.Header.Render(fmt.Sprintf("--- Document %d ---", i+1)))
		b.WriteString("\n")
		fmt.Fprintf(&b, "Document ID: %s\n", doc.ID)
		fmt.Fprintf(&b, "Filename: %s\n", doc.Filename)
		b.WriteString("Content:\n")
		b.WriteString(h.Highlight(doc.Content, query))
		b.WriteString("\n")
		fmt.Fprintf(&b, "Matches: %s\n", doc.Matches)
	}
	return b.String()
}
