package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/minutecheck/internal/model"
	"github.com/ppiankov/minutecheck/internal/notes"
	"github.com/ppiankov/minutecheck/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	transcriptPath  string
	glossaryPath    string
	participantsArg string
	outputLang      string
	outJSON         string
	checkTimeout    time.Duration
	noCache         bool
	llmEnabled      bool
	llmProvider     string
	llmModel        string
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <notes-file>",
	Short: "Validate a meeting-notes file",
	Long: `Check validates a single meeting-notes file:
- Metadata fields present and filled in (no template placeholders)
- Participant, agenda, discussion and action-item sections
- Action-item owners cross-checked against the attendee list
- Optionally, coverage of key facts from the meeting transcript

Example:
  minutecheck check meeting.md
  minutecheck check meeting.md --transcript transcript.txt --glossary glossary.md
  minutecheck check meeting.md --participants '王小明,李小華,陳大同'
  minutecheck check meeting.md --json report.json
  minutecheck check meeting.md --lang en`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	// Input flags
	checkCmd.Flags().StringVar(&transcriptPath, "transcript", "", "transcript file for coverage validation")
	checkCmd.Flags().StringVar(&glossaryPath, "glossary", "", "glossary file for term correction (used with --transcript)")
	checkCmd.Flags().StringVar(&participantsArg, "participants", "", "attendee list: file path (one name per line) or comma-separated names")

	// Output flags
	checkCmd.Flags().StringVar(&outputLang, "lang", "", "output language: zh_TW or en (auto-detected if not specified)")
	checkCmd.Flags().StringVar(&outJSON, "json", "", "output JSON to path ('-' for stdout)")

	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 2*time.Minute, "overall check timeout")
	checkCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the shared document cache")

	// LLM flags
	checkCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM report summary")
	checkCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	checkCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runCheck(cmd *cobra.Command, args []string) error {
	notesPath := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	var participants []string
	if participantsArg != "" {
		participants = notes.LoadProvidedParticipants(participantsArg)
		if len(participants) > 0 {
			fmt.Fprintf(os.Stderr, "📋 Using provided participant list: %s\n", joinNames(participants))
		} else {
			fmt.Fprintln(os.Stderr, "⚠️  --participants provided but no names could be parsed.")
		}
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Checking: %s\n", notesPath)
		if transcriptPath != "" {
			fmt.Fprintf(os.Stderr, "Transcript: %s\n", transcriptPath)
		}
		if glossaryPath != "" {
			fmt.Fprintf(os.Stderr, "Glossary: %s\n", glossaryPath)
		}
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.NewPipeline(cfg)

	result, err := p.Check(ctx, pipeline.CheckRequest{
		NotesPath:      notesPath,
		TranscriptPath: transcriptPath,
		GlossaryPath:   glossaryPath,
		Participants:   participants,
	})
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	report := result.Report
	if verbose {
		fmt.Fprintf(os.Stderr, "✓ %d findings (%d pass, %d warning, %d error)\n",
			len(report.Findings), report.PassCount(), report.WarningCount(), report.ErrorCount())
		if report.Coverage != nil {
			fmt.Fprintf(os.Stderr, "✓ Transcript coverage: %.0f%%\n", report.Coverage.Percentage)
		}
		fmt.Fprintln(os.Stderr)
	}

	lang := resolveLang(cfg, notesPath)
	if err := p.RenderReport(report, lang, outJSON, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if n := report.ErrorCount(); n > 0 {
		return fmt.Errorf("%d validation error(s)", n)
	}
	return nil
}

// buildConfig assembles the runtime configuration from defaults, config
// file/env (via viper) and flags, in ascending priority
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	if viper.IsSet("coverage.pass_threshold") {
		cfg.Coverage.PassThreshold = viper.GetFloat64("coverage.pass_threshold")
	}
	if viper.IsSet("coverage.warn_threshold") {
		cfg.Coverage.WarnThreshold = viper.GetFloat64("coverage.warn_threshold")
	}
	if viper.IsSet("concurrency.workers") {
		cfg.Concurrency.Workers = viper.GetInt("concurrency.workers")
	}

	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.Lang = outputLang

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "ollama":
			// Ollama doesn't need an API key
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}

	return cfg, nil
}

// resolveLang picks the report language: explicit flag/config first, then
// auto-detection from the notes document itself
func resolveLang(cfg *model.Config, notesPath string) string {
	if cfg.Output.Lang != "" {
		return cfg.Output.Lang
	}
	content, err := notes.Load(notesPath)
	if err != nil {
		return model.LangZhTW
	}
	return notes.DetectLanguage(content)
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}
