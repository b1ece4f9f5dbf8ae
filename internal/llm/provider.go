// Package llm generates an optional prose summary of a finished validation
// report. The summary is presentation-only: it never changes findings, counts
// or exit status.
package llm

import (
	"context"
	"fmt"

	"github.com/ppiankov/minutecheck/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates a summary of the report
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)
}

// SummarizeRequest contains the input for LLM summarization
type SummarizeRequest struct {
	// Report is the assembled validation report to summarize
	Report *model.Report

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse contains the LLM's summary output
type SummarizeResponse struct {
	Summary    string
	Model      string
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	Provider  string // "openai", "ollama", ""
	Model     string
	APIKey    string
	BaseURL   string // custom endpoint; required for ollama
	Timeout   int    // seconds
	MaxTokens int
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(c model.LLMConfig) Config {
	return Config{
		Provider:  c.Provider,
		Model:     c.Model,
		APIKey:    c.APIKey,
		BaseURL:   c.BaseURL,
		Timeout:   c.Timeout,
		MaxTokens: c.MaxTokens,
	}
}

// BuildPrompt constructs the default summarization prompt. The LLM only ever
// sees the already-final findings — it restates, never re-judges.
func BuildPrompt(report *model.Report) string {
	prompt := fmt.Sprintf(`You are summarizing a meeting-notes validation report. The checks are already final - do not re-evaluate them, only restate what they found.

RULES:
1. Do not invent findings, names, or numbers not present below.
2. Do not judge the meeting itself, only the completeness of its notes.
3. Keep messages bilingual-neutral: refer to findings by their English text.

Report:
- File: %s
- Findings: %d passed, %d warnings, %d errors
`, report.File, report.PassCount(), report.WarningCount(), report.ErrorCount())

	if report.Coverage != nil {
		prompt += fmt.Sprintf("- Transcript coverage: %.0f%% (%d/%d key facts recorded, %d missing)\n",
			report.Coverage.Percentage, report.Coverage.Found, report.Coverage.Total, len(report.Coverage.Missing))
	}

	prompt += "\nKey problems:\n"
	listed := 0
	for _, f := range report.Findings {
		if f.Severity == model.SeverityPass {
			continue
		}
		if listed >= 10 {
			prompt += "- ... and more\n"
			break
		}
		prompt += fmt.Sprintf("- [%s] %s\n", f.Severity, f.MessageEn)
		listed++
	}
	if listed == 0 {
		prompt += "- (none)\n"
	}

	prompt += "\nProvide a 3-4 sentence summary of how complete these meeting notes are and what the author should fix first."
	return prompt
}
