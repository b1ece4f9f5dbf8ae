package extract

import (
	"regexp"
	"unicode/utf8"
)

// termKind is the result of the name-vs-term classification of a glossary entry
type termKind int

const (
	kindName termKind = iota
	kindTerm
)

var (
	// Chinese personal names: 2-4 CJK ideographs and nothing else
	cjkNamePattern = regexp.MustCompile(`^[\x{4e00}-\x{9fff}]+$`)
	// Latin "First M" / "First Last" forms
	latinNamePattern = regexp.MustCompile(`^[A-Z][a-z]+ [A-Z]`)
)

// classifyTerm decides whether a glossary term looks like a person name.
// Everything that is not name-like is a general term.
func classifyTerm(term string) termKind {
	if n := utf8.RuneCountInString(term); n >= 2 && n <= 4 && cjkNamePattern.MatchString(term) {
		return kindName
	}
	if latinNamePattern.MatchString(term) {
		return kindName
	}
	return kindTerm
}
