package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/ppiankov/minutecheck/internal/notes"
	"github.com/ppiankov/minutecheck/internal/pipeline"
	"github.com/ppiankov/minutecheck/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	// transcriptPath, glossaryPath, participantsArg and the LLM flags are
	// defined in check.go and shared here
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <list-file>",
	Short: "Validate multiple meeting-notes files in parallel",
	Long: `Batch validates multiple notes files concurrently:
- Read notes-file paths from the list file (one per line, # comments)
- Validate files in parallel with configurable worker count
- A shared transcript/glossary is read once and reused across workers
- Write an individual JSON report for each file

Example:
  minutecheck batch meetings.txt
  minutecheck batch meetings.txt --concurrency 8 --output-dir ./reports
  minutecheck batch meetings.txt --glossary glossary.md`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./minutecheck-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	// Inherit input flags from the check command
	batchCmd.Flags().StringVar(&transcriptPath, "transcript", "", "transcript file shared by all notes files")
	batchCmd.Flags().StringVar(&glossaryPath, "glossary", "", "glossary file for term correction")
	batchCmd.Flags().StringVar(&participantsArg, "participants", "", "attendee list: file path or comma-separated names")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the shared document cache")

	// LLM flags
	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM report summaries")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	listFile := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Minutecheck Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", listFile)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.Workers = concurrency

	if llmEnabled {
		fmt.Fprintf(os.Stderr, "  LLM:          %s/%s\n", llmProvider, llmModel)
	}

	var participants []string
	if participantsArg != "" {
		participants = notes.LoadProvidedParticipants(participantsArg)
	}

	// Create output directory
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	paths, err := worker.ReadPathsFromFile(listFile)
	if err != nil {
		return fmt.Errorf("read list file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ Loaded %d notes file(s)\n", len(paths))
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "⚙️  Validating with %d workers...\n", concurrency)
	fmt.Fprintf(os.Stderr, "\n")

	requests := make([]pipeline.CheckRequest, len(paths))
	for i, path := range paths {
		requests[i] = pipeline.CheckRequest{
			NotesPath:      path,
			TranscriptPath: transcriptPath,
			GlossaryPath:   glossaryPath,
			Participants:   participants,
		}
	}

	p := pipeline.NewPipeline(cfg)
	processor := worker.NewBatchProcessor(p, concurrency)
	outcomes := processor.ProcessRequests(ctx, requests)

	renderer := pipeline.NewRenderer()
	successCount := 0
	failureCount := 0
	errorFindings := 0

	for _, outcome := range outcomes {
		if outcome.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", outcome.Path, outcome.Error)
			continue
		}

		successCount++
		errorFindings += outcome.Report.ErrorCount()

		jsonPath := filepath.Join(outputDir, reportFilename(outcome.Path))
		if err := renderer.WriteJSON(outcome.Report, jsonPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write JSON: %v\n", outcome.Path, err)
			continue
		}

		fmt.Fprintf(os.Stderr, "✓ %s (%d pass, %d warning, %d error)\n",
			outcome.Report.File, outcome.Report.PassCount(), outcome.Report.WarningCount(), outcome.Report.ErrorCount())
	}

	// Summary
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d files\n", len(outcomes))
	fmt.Fprintf(os.Stderr, "  Validated: %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	if failureCount > 0 || errorFindings > 0 {
		return fmt.Errorf("%d file(s) unreadable, %d validation error(s)", failureCount, errorFindings)
	}
	return nil
}

// reportFilename derives the per-file report name from the notes path
func reportFilename(notesPath string) string {
	base := filepath.Base(notesPath)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + ".report.json"
}
