package model

import "encoding/json"

// Report collects all findings for one meeting-notes file
type Report struct {
	File     string          `json:"file"`
	Findings []Finding       `json:"findings"`
	Coverage *CoverageResult `json:"coverage,omitempty"`

	LLM *LLMSummary `json:"llm,omitempty"` // Optional LLM summary (separate, never affects findings)
}

// Add appends a finding to the report
func (r *Report) Add(f Finding) {
	r.Findings = append(r.Findings, f)
}

// PassCount returns the number of pass-tier findings
func (r *Report) PassCount() int { return r.countSeverity(SeverityPass) }

// WarningCount returns the number of warning-tier findings
func (r *Report) WarningCount() int { return r.countSeverity(SeverityWarning) }

// ErrorCount returns the number of error-tier findings
func (r *Report) ErrorCount() int { return r.countSeverity(SeverityError) }

func (r *Report) countSeverity(s Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == s {
			n++
		}
	}
	return n
}

// ByCategory returns the findings belonging to the given category, in order
func (r *Report) ByCategory(c Category) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Category == c {
			out = append(out, f)
		}
	}
	return out
}

// jsonReport is the wire shape of the JSON output
type jsonReport struct {
	File    string `json:"file"`
	Summary struct {
		Pass    int `json:"pass"`
		Warning int `json:"warning"`
		Error   int `json:"error"`
	} `json:"summary"`
	Results  []Finding       `json:"results"`
	Coverage *CoverageResult `json:"coverage,omitempty"`
	LLM      *LLMSummary     `json:"llm,omitempty"`
}

// ToJSON serializes the report with a summary block
func (r *Report) ToJSON() ([]byte, error) {
	out := jsonReport{File: r.File, Results: r.Findings, Coverage: r.Coverage, LLM: r.LLM}
	out.Summary.Pass = r.PassCount()
	out.Summary.Warning = r.WarningCount()
	out.Summary.Error = r.ErrorCount()
	return json.MarshalIndent(out, "", "  ")
}

// LLMSummary contains an optional LLM-generated prose summary.
// CRITICAL: this never affects findings or exit status and is clearly separated
type LLMSummary struct {
	Enabled    bool   `json:"enabled"`
	Provider   string `json:"provider,omitempty"`
	Model      string `json:"model,omitempty"`
	SummaryMD  string `json:"summary_md,omitempty"`
	TokensUsed int    `json:"tokens_used,omitempty"`
}
