package parallel

import (
	"context"
	"runtime"
	"sync"

	"github.com/gqlex/gqlint/internal/analyzer"
)

// FileResult holds the outcome of linting a single file
type FileResult struct {
	Filename string
	Result   *analyzer.Result
	Err      error
}

// LintFunc lints a single file and returns its result
type LintFunc func(ctx context.Context, filename string) (*analyzer.Result, error)

// Processor lints many files concurrently
type Processor struct {
	workers int
}

// Option configures a Processor
type Option func(*Processor)

// New creates a new Processor with the given options
func New(opts ...Option) *Processor {
	p := &Processor{
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WithWorkers sets the number of workers
func WithWorkers(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.workers = n
		}
	}
}

// Process lints the files concurrently. Results come back in input order
func (p *Processor) Process(ctx context.Context, files []string, fn LintFunc) []FileResult {
	if len(files) == 0 {
		return nil
	}

	numWorkers := p.workers
	if numWorkers > len(files) {
		numWorkers = len(files)
	}

	type job struct {
		index    int
		filename string
	}
	jobs := make(chan job, len(files))
	for i, f := range files {
		jobs <- job{index: i, filename: f}
	}
	close(jobs)

	results := make([]FileResult, len(files))

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				select {
				case <-ctx.Done():
					results[j.index] = FileResult{Filename: j.filename, Err: ctx.Err()}
				default:
					res, err := fn(ctx, j.filename)
					results[j.index] = FileResult{Filename: j.filename, Result: res, Err: err}
				}
			}
		}()
	}
	wg.Wait()

	return results
}

// AggregateError collects errors from parallel linting
type AggregateError struct {
	Errors []error
}

// Error implements the error interface
func (e *AggregateError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return e.Errors[0].Error() + " (and more errors)"
}

// HasErrors returns true if there are any errors
func (e *AggregateError) HasErrors() bool {
	return len(e.Errors) > 0
}

// CollectErrors extracts errors from file results
func CollectErrors(results []FileResult) *AggregateError {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return &AggregateError{Errors: errs}
}
