// Package extract pulls key facts out of corrected transcript text using
// ordered heuristic rule tables.
package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ppiankov/minutecheck/internal/glossary"
	"github.com/ppiankov/minutecheck/internal/model"
)

const contextPadding = 15

// Extractor extracts key facts from a corrected transcript.
// The glossary supplies the name/term vocabulary for passes 1 and 6.
type Extractor struct {
	glossary *glossary.CorrectionMap
}

// New creates a fact extractor backed by the given correction map
func New(m *glossary.CorrectionMap) *Extractor {
	return &Extractor{glossary: m}
}

// state is the per-run extraction context: one dedup set shared by all six
// passes. The first pass to emit a value owns it; later passes skip it.
// Never reuse a state across runs.
type state struct {
	seen  map[string]bool
	facts []model.KeyFact
}

func newState() *state {
	return &state{seen: make(map[string]bool)}
}

// emit records a fact unless its value was already claimed
func (s *state) emit(f model.KeyFact) {
	if s.seen[f.Value] {
		return
	}
	s.seen[f.Value] = true
	s.facts = append(s.facts, f)
}

// Extract runs all six category passes in their fixed order:
// person, number, date, decision, action, term. The order is part of the
// contract — it decides which category owns a value matched by several rules.
func (e *Extractor) Extract(transcript string) []model.KeyFact {
	st := newState()

	e.extractPersons(st, transcript)
	e.extractNumbers(st, transcript)
	e.extractDates(st, transcript)
	extractSentences(st, transcript, decisionMarkers, model.FactDecision)
	extractSentences(st, transcript, actionMarkers, model.FactAction)
	e.extractTerms(st, transcript)

	return st.facts
}

// extractPersons emits glossary terms classified as name-like that occur
// literally in the transcript
func (e *Extractor) extractPersons(st *state, transcript string) {
	for _, term := range e.glossary.Terms() {
		if classifyTerm(term) != kindName {
			continue
		}
		idx := strings.Index(transcript, term)
		if idx < 0 {
			continue
		}
		st.emit(model.KeyFact{
			Category:    model.FactPerson,
			Value:       term,
			Context:     contextWindow(transcript, idx, idx+len(term)),
			SearchTerms: []string{term},
		})
	}
}

// extractNumbers emits quantity-like matches of at least two characters
func (e *Extractor) extractNumbers(st *state, transcript string) {
	for _, pattern := range numberPatterns {
		for _, span := range pattern.FindAllStringIndex(transcript, -1) {
			value := strings.TrimSpace(transcript[span[0]:span[1]])
			if utf8.RuneCountInString(value) < 2 {
				continue
			}
			st.emit(model.KeyFact{
				Category:    model.FactNumber,
				Value:       value,
				Context:     contextWindow(transcript, span[0], span[1]),
				SearchTerms: []string{value},
			})
		}
	}
}

func (e *Extractor) extractDates(st *state, transcript string) {
	for _, pattern := range datePatterns {
		for _, span := range pattern.FindAllStringIndex(transcript, -1) {
			value := strings.TrimSpace(transcript[span[0]:span[1]])
			st.emit(model.KeyFact{
				Category:    model.FactDate,
				Value:       value,
				Context:     contextWindow(transcript, span[0], span[1]),
				SearchTerms: []string{value},
			})
		}
	}
}

// extractSentences extracts the line enclosing each marker occurrence.
// Lines are the sentence unit here on purpose: transcripts are line-oriented
// and the coverage thresholds were tuned against this exact splitter.
func extractSentences(st *state, transcript string, markers []*regexp.Regexp, category model.FactCategory) {
	for _, marker := range markers {
		for _, span := range marker.FindAllStringIndex(transcript, -1) {
			lineStart := strings.LastIndex(transcript[:span[0]], "\n") + 1
			lineEnd := strings.Index(transcript[span[0]:], "\n")
			if lineEnd < 0 {
				lineEnd = len(transcript)
			} else {
				lineEnd += span[0]
			}

			sentence := strings.TrimSpace(transcript[lineStart:lineEnd])
			clean := strings.TrimSpace(listPrefixPattern.ReplaceAllString(sentence, ""))
			if labelLinePattern.MatchString(clean) {
				continue
			}
			if utf8.RuneCountInString(clean) < 4 {
				continue
			}

			// Full sentence first; a 20-rune head fragment gives long
			// sentences a second, fuzzier chance to match
			terms := []string{clean}
			if runes := []rune(clean); len(runes) > 20 {
				terms = append(terms, string(runes[:20]))
			}

			st.emit(model.KeyFact{
				Category:    category,
				Value:       clean,
				Context:     "..." + sentence + "...",
				SearchTerms: terms,
			})
		}
	}
}

// extractTerms emits the remaining glossary terms (everything not name-like)
// that occur literally in the transcript
func (e *Extractor) extractTerms(st *state, transcript string) {
	for _, term := range e.glossary.Terms() {
		if classifyTerm(term) != kindTerm {
			continue
		}
		idx := strings.Index(transcript, term)
		if idx < 0 {
			continue
		}
		st.emit(model.KeyFact{
			Category:    model.FactTerm,
			Value:       term,
			Context:     contextWindow(transcript, idx, idx+len(term)),
			SearchTerms: []string{term},
		})
	}
}

// contextWindow returns the matched span plus up to contextPadding runes of
// surrounding text on each side, clamped to document bounds and wrapped in
// ellipsis markers. start and end are byte offsets into text.
func contextWindow(text string, start, end int) string {
	for i := 0; i < contextPadding && start > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(text[:start])
		start -= size
	}
	for i := 0; i < contextPadding && end < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[end:])
		end += size
	}
	return "..." + text[start:end] + "..."
}
