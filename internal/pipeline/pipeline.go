// Package pipeline orchestrates a complete validation run: document loading,
// structural checks, transcript coverage and report assembly.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ppiankov/minutecheck/internal/cache"
	"github.com/ppiankov/minutecheck/internal/extract"
	"github.com/ppiankov/minutecheck/internal/glossary"
	"github.com/ppiankov/minutecheck/internal/llm"
	"github.com/ppiankov/minutecheck/internal/match"
	"github.com/ppiankov/minutecheck/internal/model"
	"github.com/ppiankov/minutecheck/internal/notes"
	"github.com/ppiankov/minutecheck/internal/validate"
)

// Pipeline runs validations. One pipeline may serve many concurrent Check
// calls: every call builds fresh extraction state, and the only shared pieces
// are the read-only config, the document cache and the summarizer.
type Pipeline struct {
	matcher    *match.Matcher
	renderer   *Renderer
	docCache   cache.Cache     // nil disables caching
	summarizer *llm.Summarizer // nil disables LLM summaries
	config     *model.Config
}

// NewPipeline creates a pipeline from the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	var docCache cache.Cache
	if cfg.Cache.Enabled {
		docCache = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.TTL)
	}

	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM), cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.BurstSize)
		if err != nil {
			fmt.Fprintf(os.Stderr, "⚠️  Failed to initialize LLM provider: %v\n", err)
		} else {
			summarizer = s
		}
	}

	return &Pipeline{
		matcher:    match.NewMatcher(cfg.Coverage.PassThreshold, cfg.Coverage.WarnThreshold),
		renderer:   NewRenderer(),
		docCache:   docCache,
		summarizer: summarizer,
		config:     cfg,
	}
}

// CheckRequest describes one validation run
type CheckRequest struct {
	NotesPath      string
	TranscriptPath string   // optional; enables the coverage stage
	GlossaryPath   string   // optional; enriches transcript correction
	Participants   []string // optional authoritative attendee list
}

// CheckResult contains the complete validation result
type CheckResult struct {
	Report *model.Report
	Error  error
}

// Check validates one meeting-notes file and assembles its report.
// Only an unreadable notes document is an error; every downstream problem
// becomes a finding inside the report.
func (p *Pipeline) Check(ctx context.Context, req CheckRequest) (*CheckResult, error) {
	content, err := notes.Load(req.NotesPath)
	if err != nil {
		return nil, fmt.Errorf("load notes: %w", err)
	}

	report := &model.Report{File: filepath.Base(req.NotesPath)}

	validate.NewValidator(req.Participants).Validate(content, report)

	if req.TranscriptPath != "" {
		p.checkCoverage(req, content, report)
	}

	// LLM summary comes last and never affects findings or exit status
	if p.summarizer != nil && p.summarizer.IsEnabled() {
		summary, err := p.summarizer.Summarize(ctx, report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "⚠️  LLM summary generation failed: %v\n", err)
		} else if summary != nil {
			report.LLM = summary
		}
	}

	return &CheckResult{Report: report}, nil
}

// checkCoverage runs the transcript-to-notes coverage engine:
// glossary → correction map → corrected transcript → key facts → matching
func (p *Pipeline) checkCoverage(req CheckRequest, notesContent string, report *model.Report) {
	rawTranscript, err := p.loadShared(req.TranscriptPath)
	if err != nil {
		report.Add(model.Finding{Severity: model.SeverityError, Category: model.CategoryTranscriptCoverage,
			MessageZh: fmt.Sprintf("找不到逐字稿檔案: %s", req.TranscriptPath),
			MessageEn: fmt.Sprintf("Transcript file not found: %s", req.TranscriptPath)})
		return
	}

	correctionMap := glossary.NewCorrectionMap()
	if req.GlossaryPath != "" {
		if glossaryText, err := p.loadShared(req.GlossaryPath); err == nil {
			correctionMap = glossary.Parse(glossaryText)
		}
	}

	corrected := correctionMap.Correct(rawTranscript)
	facts := extract.New(correctionMap).Extract(corrected)

	if len(facts) == 0 {
		report.Add(model.Finding{Severity: model.SeverityWarning, Category: model.CategoryTranscriptCoverage,
			MessageZh: "未能從逐字稿中提取到關鍵事實（可能逐字稿內容過短或格式特殊）",
			MessageEn: "Could not extract key facts from transcript (content may be too short or in unusual format)"})
		return
	}

	result := p.matcher.Match(facts, notesContent)
	report.Coverage = &result
	report.Add(coverageFinding(p.matcher.Tier(result), result))

	for _, fact := range result.Missing {
		report.Add(model.Finding{Severity: model.SeverityWarning, Category: model.CategoryTranscriptCoverage,
			MessageZh: fmt.Sprintf("未記錄 %s「%s」— 出處: %s", fact.Category.Label(model.LangZhTW), fact.Value, fact.Context),
			MessageEn: fmt.Sprintf("Missing %s %q — source: %s", fact.Category.Label(model.LangEn), fact.Value, fact.Context)})
	}
}

func coverageFinding(tier model.Severity, result model.CoverageResult) model.Finding {
	stats := fmt.Sprintf("%.0f%% (%d/%d", result.Percentage, result.Found, result.Total)
	f := model.Finding{Severity: tier, Category: model.CategoryTranscriptCoverage}

	switch tier {
	case model.SeverityPass:
		f.MessageZh = fmt.Sprintf("逐字稿覆蓋率: %s 項關鍵事實已記錄)", stats)
		f.MessageEn = fmt.Sprintf("Transcript coverage: %s key facts recorded)", stats)
	case model.SeverityWarning:
		f.MessageZh = fmt.Sprintf("逐字稿覆蓋率偏低: %s 項關鍵事實已記錄)", stats)
		f.MessageEn = fmt.Sprintf("Low transcript coverage: %s key facts recorded)", stats)
	default:
		f.MessageZh = fmt.Sprintf("逐字稿覆蓋率不足: %s 項關鍵事實已記錄)", stats)
		f.MessageEn = fmt.Sprintf("Insufficient transcript coverage: %s key facts recorded)", stats)
	}
	return f
}

// loadShared reads a document through the cache so batch runs do not re-read
// the same glossary or transcript for every notes file
func (p *Pipeline) loadShared(path string) (string, error) {
	if p.docCache == nil {
		return notes.Load(path)
	}

	key := cache.Key(path)
	if data, found := p.docCache.Get(key); found {
		return string(data), nil
	}

	content, err := notes.Load(path)
	if err != nil {
		return "", err
	}
	_ = p.docCache.Set(key, []byte(content), p.config.Cache.TTL)
	return content, nil
}

// RenderReport writes the report to the requested output: JSON when a path is
// given ("-" for stdout), otherwise the localized text report to stdout
func (p *Pipeline) RenderReport(report *model.Report, lang, jsonPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.WriteJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose && jsonPath != "-" {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
		return nil
	}

	fmt.Println(p.renderer.RenderText(report, lang))
	return nil
}
