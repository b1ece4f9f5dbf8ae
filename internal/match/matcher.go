// Package match tests which extracted key facts are reflected in the authored
// meeting notes and aggregates the result into a coverage score.
package match

import (
	"strings"

	"github.com/ppiankov/minutecheck/internal/model"
)

// Matcher checks fact coverage against a notes document
type Matcher struct {
	passThreshold float64
	warnThreshold float64
}

// NewMatcher creates a matcher with the given tier thresholds (percentages)
func NewMatcher(passThreshold, warnThreshold float64) *Matcher {
	return &Matcher{passThreshold: passThreshold, warnThreshold: warnThreshold}
}

// Match tests each fact against the notes text. A fact counts as covered when
// any of its search terms occurs literally in the notes, or — failing that —
// when its normalized form occurs in the normalized notes.
func (m *Matcher) Match(facts []model.KeyFact, notes string) model.CoverageResult {
	notesNormalized := Normalize(notes)

	result := model.CoverageResult{Total: len(facts)}
	for _, fact := range facts {
		if factCovered(fact, notes, notesNormalized) {
			result.Found++
		} else {
			result.Missing = append(result.Missing, fact)
		}
	}

	if result.Total > 0 {
		result.Percentage = float64(result.Found) / float64(result.Total) * 100
	}
	return result
}

// Tier maps a coverage percentage to its outcome severity.
// Only meaningful when the result has a nonzero total.
func (m *Matcher) Tier(result model.CoverageResult) model.Severity {
	switch {
	case result.Percentage >= m.passThreshold:
		return model.SeverityPass
	case result.Percentage >= m.warnThreshold:
		return model.SeverityWarning
	default:
		return model.SeverityError
	}
}

func factCovered(fact model.KeyFact, notes, notesNormalized string) bool {
	for _, term := range fact.SearchTerms {
		if strings.Contains(notes, term) {
			return true
		}
	}
	for _, term := range fact.SearchTerms {
		if strings.Contains(notesNormalized, Normalize(term)) {
			return true
		}
	}
	return false
}
