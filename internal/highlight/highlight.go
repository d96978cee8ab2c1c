// Package highlight marks query terms in document text for terminal display.
//
// Highlighting runs as a fixed sequence of regex passes: the whole query as a
// phrase first, then each of its words on its own. Every pass scans the output
// of the previous one, so markers inserted by an earlier pass are visible to
// later passes. A word pass may therefore wrap text that the phrase pass
// already wrapped (nested markers), or skip a word glued to a preceding marker
// because the marker ends in a word character. Callers see that output as is.
//
// A word only matches as a standalone token: the runes around it must not be
// letters, digits, combining marks or underscores, in any script.
package highlight

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ANSI markers used by default: bold yellow, then reset.
const (
	ANSIOpen  = "\033[1;33m"
	ANSIClose = "\033[0m"
)

// Highlighter wraps matches in an opening and closing marker.
type Highlighter struct {
	Open  string
	Close string
}

// Default returns a highlighter using ANSI bold yellow.
func Default() Highlighter {
	return Highlighter{Open: ANSIOpen, Close: ANSIClose}
}

// Plain returns a highlighter that leaves text unchanged.
func Plain() Highlighter {
	return Highlighter{}
}

// Highlight marks term in text using the default ANSI markers.
func Highlight(text, term string) string {
	return Default().Highlight(text, term)
}

// Highlight marks every case-insensitive occurrence of term in text, then
// every standalone occurrence of each whitespace-separated word of term.
// An empty term returns text unchanged.
func (h Highlighter) Highlight(text, term string) string {
	if term == "" {
		return text
	}
	if h.Open == "" && h.Close == "" {
		return text
	}

	wrap := func(match string) string {
		return h.Open + match + h.Close
	}

	out := phrasePattern(term).ReplaceAllStringFunc(text, wrap)
	for _, word := range strings.Fields(term) {
		out = replaceWord(out, word, wrap)
	}
	return out
}

func phrasePattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term))
}

// replaceWord wraps each standalone, case-insensitive occurrence of word.
// RE2's \b only knows ASCII word characters, so boundaries are checked on the
// neighbouring runes instead.
func replaceWord(text, word string, wrap func(string) string) string {
	re := phrasePattern(word)

	var b strings.Builder
	last, pos := 0, 0
	for pos <= len(text) {
		loc := re.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if end == start || !standalone(text, start, end) {
			// Retry one rune later so overlapping candidates are not lost.
			_, size := utf8.DecodeRuneInString(text[start:])
			pos = start + max(size, 1)
			continue
		}
		b.WriteString(text[last:start])
		b.WriteString(wrap(text[start:end]))
		last, pos = end, end
	}
	if last == 0 {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

// standalone reports whether text[start:end] is not glued to word runes.
func standalone(text string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(text[:start]); isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		if r, _ := utf8.DecodeRuneInString(text[end:]); isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}
