// Package glossary parses domain glossaries into correction maps and applies
// them to raw transcript text before fact extraction.
package glossary

import (
	"os"
	"regexp"
	"strings"
)

// Entry lines look like:
//
//	- 王小明 (工程部) - 常見錯誤: 王小名、Wang Ming
//	- Kubernetes - Common errors: K8s cluster, 庫柏
//
// Anything else is ignored; the glossary is advisory input.
var entryPattern = regexp.MustCompile(`(?m)^- (.+?)(?:\s*\(.+?\))?\s*-\s*(?:常見錯誤|Common errors?):\s*(.+)$`)

var variantSeparator = regexp.MustCompile(`[、,，]`)

// CorrectionMap maps canonical terms to their known mis-transcriptions.
// Term order follows the glossary file, so correction passes and term-based
// fact extraction are deterministic run to run.
type CorrectionMap struct {
	terms    []string
	variants map[string][]string
}

// NewCorrectionMap returns an empty correction map
func NewCorrectionMap() *CorrectionMap {
	return &CorrectionMap{variants: make(map[string][]string)}
}

// Parse builds a correction map from glossary document text.
// Malformed lines are skipped silently. A canonical term listed twice keeps
// its first position but takes the variants of its last occurrence.
func Parse(content string) *CorrectionMap {
	m := NewCorrectionMap()

	for _, match := range entryPattern.FindAllStringSubmatch(content, -1) {
		term := strings.TrimSpace(match[1])
		if term == "" {
			continue
		}

		var errs []string
		for _, v := range variantSeparator.Split(match[2], -1) {
			if v = strings.TrimSpace(v); v != "" {
				errs = append(errs, v)
			}
		}
		// Entries with no usable variants are dropped, not recorded empty
		if len(errs) == 0 {
			continue
		}

		if _, exists := m.variants[term]; !exists {
			m.terms = append(m.terms, term)
		}
		m.variants[term] = errs
	}

	return m
}

// Load reads and parses a glossary file. A missing or empty path yields an
// empty map without error: glossary absence is a configuration choice.
func Load(path string) (*CorrectionMap, error) {
	if path == "" {
		return NewCorrectionMap(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewCorrectionMap(), nil
		}
		return nil, err
	}
	return Parse(string(data)), nil
}

// Len returns the number of canonical terms
func (m *CorrectionMap) Len() int {
	return len(m.terms)
}

// Terms returns the canonical terms in glossary file order.
// The returned slice must not be modified.
func (m *CorrectionMap) Terms() []string {
	return m.terms
}

// Variants returns the known error variants for a canonical term
func (m *CorrectionMap) Variants(term string) []string {
	return m.variants[term]
}

// Correct replaces every known error variant with its canonical term,
// scanning the already-partially-corrected text term by term in glossary
// order. When two terms share a variant substring the earlier term claims it.
func (m *CorrectionMap) Correct(text string) string {
	corrected := text
	for _, term := range m.terms {
		for _, variant := range m.variants[term] {
			if strings.Contains(corrected, variant) {
				corrected = strings.ReplaceAll(corrected, variant, term)
			}
		}
	}
	return corrected
}
