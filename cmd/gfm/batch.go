package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/alnah/go-gfm/internal/config"
	"github.com/alnah/go-gfm/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// ConversionResult holds the outcome of a single file.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Output     string // set when results go to stdout
	Err        error
	Duration   time.Duration
}

// transformFunc turns the content of one source file into its output.
type transformFunc func(ctx context.Context, source string, f FileToConvert) (string, error)

// resolveWorkers determines the worker count.
// Priority: explicit value > GOMAXPROCS-based calculation.
func resolveWorkers(n int) int {
	if n > 0 {
		return n
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers.
	n = runtime.GOMAXPROCS(0) / 2
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

// processBatch runs transform over files with a bounded number of workers.
// Results keep the order of files. When toStdout is set nothing is written
// and each result carries its output instead.
func processBatch(ctx context.Context, workers int, files []FileToConvert, transform transformFunc, toStdout bool) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(resolveWorkers(workers), len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = processFile(ctx, files[idx], transform, toStdout)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// processFile reads, transforms, and writes a single file.
func processFile(ctx context.Context, f FileToConvert, transform transformFunc, toStdout bool) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrReadMarkdown, err))
	}

	out, err := transform(ctx, string(content), f)
	if err != nil {
		return fail(err)
	}

	if toStdout {
		result.Output = out
		result.OutputPath = ""
		result.Duration = time.Since(start)
		return result
	}

	if err := ensureDistinct(f); err != nil {
		return fail(err)
	}
	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return fail(fmt.Errorf("%w: creating output directory: %w", ErrWriteOutput, err))
	}
	if err := fileutil.WriteAtomic(f.OutputPath, []byte(out), filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %w", ErrWriteOutput, err))
	}

	result.Duration = time.Since(start)
	return result
}

// ensureDistinct refuses to write a result over its own source file.
func ensureDistinct(f FileToConvert) error {
	in, err := filepath.Abs(f.InputPath)
	if err != nil {
		return err
	}
	out, err := filepath.Abs(f.OutputPath)
	if err != nil {
		return err
	}
	if in == out {
		return fmt.Errorf("%w: %s", ErrOverwriteSource, f.InputPath)
	}
	return nil
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResultsWithWriter outputs conversion results using the provided
// writers and returns the number of failures. Outputs bound for stdout are
// written in input order.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)
	toStdout := false

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.Err))
			continue
		}

		if r.OutputPath == "" {
			toStdout = true
			fmt.Fprint(env.Stdout, r.Output)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	// The summary would corrupt piped output, so it goes to stderr then.
	if !quiet && len(results) > 1 {
		w := env.Stdout
		if toStdout {
			w = env.Stderr
		}
		fmt.Fprintf(w, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
