package model

// FactCategory classifies a key fact extracted from a transcript
type FactCategory string

const (
	FactPerson   FactCategory = "person"
	FactNumber   FactCategory = "number"
	FactDate     FactCategory = "date"
	FactDecision FactCategory = "decision"
	FactAction   FactCategory = "action"
	FactTerm     FactCategory = "term"
)

var factLabelsZh = map[FactCategory]string{
	FactPerson:   "👤 人名",
	FactNumber:   "🔢 數字",
	FactDate:     "📅 日期",
	FactDecision: "🔨 決策",
	FactAction:   "📌 行動",
	FactTerm:     "📖 術語",
}

var factLabelsEn = map[FactCategory]string{
	FactPerson:   "👤 Person",
	FactNumber:   "🔢 Number",
	FactDate:     "📅 Date",
	FactDecision: "🔨 Decision",
	FactAction:   "📌 Action",
	FactTerm:     "📖 Term",
}

// Label returns the localized display label for the fact category
func (c FactCategory) Label(lang string) string {
	labels := factLabelsEn
	if lang == LangZhTW {
		labels = factLabelsZh
	}
	if l, ok := labels[c]; ok {
		return l
	}
	return string(c)
}

// KeyFact is a deduplicated unit of information pulled from a transcript.
// SearchTerms are tried against the notes document in order; any match counts.
// Context is a bounded window of surrounding text for display only.
type KeyFact struct {
	Category    FactCategory `json:"category"`
	Value       string       `json:"value"`
	Context     string       `json:"context"`
	SearchTerms []string     `json:"search_terms"`
}

// CoverageResult aggregates how many key facts are reflected in the notes.
// Percentage is Found/Total*100 and is meaningless when Total is zero.
type CoverageResult struct {
	Total      int       `json:"total"`
	Found      int       `json:"found"`
	Percentage float64   `json:"percentage"`
	Missing    []KeyFact `json:"missing,omitempty"`
}
