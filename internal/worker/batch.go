package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/minutecheck/internal/model"
	"github.com/ppiankov/minutecheck/internal/pipeline"
)

// Checker defines the interface for validating one meeting-notes file
type Checker interface {
	Check(ctx context.Context, req pipeline.CheckRequest) (*pipeline.CheckResult, error)
}

// CheckJob represents one notes-file validation job
type CheckJob struct {
	Request pipeline.CheckRequest
	Checker Checker
}

// Execute executes the validation job
func (j *CheckJob) Execute(ctx context.Context) Result {
	result, err := j.Checker.Check(ctx, j.Request)
	if err != nil {
		return &CheckOutcome{
			Path:  j.Request.NotesPath,
			Error: err,
		}
	}
	return &CheckOutcome{
		Path:   j.Request.NotesPath,
		Report: result.Report,
	}
}

// CheckOutcome represents the result of one validation job
type CheckOutcome struct {
	Path   string
	Report *model.Report
	Error  error
}

// GetError returns the error from the outcome
func (o *CheckOutcome) GetError() error {
	return o.Error
}

// BatchProcessor validates multiple notes files concurrently.
// Each job builds fresh pipeline state; the checker itself is safe to share.
type BatchProcessor struct {
	checker     Checker
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(checker Checker, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		checker:     checker,
		concurrency: concurrency,
	}
}

// ProcessRequests validates all requests concurrently
func (b *BatchProcessor) ProcessRequests(ctx context.Context, requests []pipeline.CheckRequest) []*CheckOutcome {
	if len(requests) == 0 {
		return []*CheckOutcome{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, req := range requests {
		pool.Submit(&CheckJob{Request: req, Checker: b.checker})
	}

	results := pool.Wait()

	outcomes := make([]*CheckOutcome, len(results))
	for i, result := range results {
		outcomes[i] = result.(*CheckOutcome)
	}

	return outcomes
}

// ReadPathsFromFile reads notes-file paths from a list file (one per line,
// empty lines and "#" comments skipped, duplicates dropped)
func ReadPathsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return paths, nil
}
