// =============================================================================
// KLV Inspector - Batch Command
// =============================================================================
//
// This file defines the 'batch' command, which processes every KLV buffer
// file in the input directory. It orchestrates the whole pipeline.
//
// COMMAND USAGE:
//   klv batch [flags]
//
// FLAGS:
//   --dry-run  : Simulate processing without writing or archiving files
//
// PROCESSING PIPELINE:
//   1. Load the configuration
//   2. Discover buffer files in the input directory
//   3. For each file (concurrently, bounded by max_concurrency):
//      a. Parse and validate the buffer
//      b. Export the entries to the output directory
//      c. Archive the input file on success
//   4. Record every outcome in the in-memory history
//   5. Write an XLSX summary report and print a summary block
//
// Each parse is independent and side-effect-free, so files fan out across
// workers with no coordination beyond the results channel.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/klv-inspector/internal/config"
	"github.com/ginjaninja78/klv-inspector/internal/history"
	"github.com/ginjaninja78/klv-inspector/internal/klv"
	"github.com/ginjaninja78/klv-inspector/internal/xlsxwriter"
	"github.com/ginjaninja78/klv-inspector/pkg/fileio"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// dryRun simulates processing without writing output files.
var dryRun bool

// =============================================================================
// RESULT TYPE
// =============================================================================

// batchResult is the outcome of processing one input file.
type batchResult struct {
	// FilePath is the input file that was processed.
	FilePath string

	// OutputFile is the exported file path (empty on failure or dry run).
	OutputFile string

	// Outcome is the validation outcome for the buffer.
	Outcome klv.ValidationOutcome

	// Err is a processing error (I/O, export); nil for clean runs and for
	// buffers that merely failed validation.
	Err error
}

// =============================================================================
// BATCH COMMAND DEFINITION
// =============================================================================

// batchCmd represents the 'batch' command.
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Process all KLV buffer files in the input directory",
	Long: `The batch command scans the input directory for buffer files, parses and
validates each one, exports the decoded entries to the output directory,
and archives successfully processed inputs.

Files are processed concurrently, bounded by max_concurrency. Each file is
independent: errors in one file do not affect the processing of others.
When continue_on_error is false, a batch containing any invalid buffer
exits non-zero after the summary.

Every outcome is recorded in the in-memory history, which feeds the XLSX
summary report written to the reports directory.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatch()
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the batch command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Simulate processing without writing or archiving files",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runBatch orchestrates the batch pipeline.
func runBatch() error {
	startTime := time.Now()

	// =========================================================================
	// STEP 1: LOAD CONFIGURATION
	// =========================================================================

	fmt.Println("=== KLV Inspector ===")
	fmt.Println("Loading configuration...")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fm := fileio.New(cfg.InputDir, cfg.OutputDir, cfg.ArchiveDir, cfg.ReportsDir)
	if err := fm.EnsureDirectories(); err != nil {
		return err
	}

	// =========================================================================
	// STEP 2: DISCOVER INPUT FILES
	// =========================================================================

	fmt.Println("Discovering input files...")

	inputFiles, err := fm.DiscoverInputFiles(cfg.InputPattern)
	if err != nil {
		return err
	}

	if len(inputFiles) == 0 {
		fmt.Println("No buffer files found in the input directory.")
		return nil
	}

	fmt.Printf("Found %d file(s) to process\n", len(inputFiles))

	// =========================================================================
	// STEP 3: PROCESS FILES CONCURRENTLY
	// =========================================================================
	// A buffered channel doubles as the worker limit; results flow back on
	// their own channel and the history log absorbs concurrent appends.

	fmt.Println("Processing files...")

	log := history.New(cfg.HistorySize)

	var wg sync.WaitGroup
	workers := make(chan struct{}, cfg.MaxConcurrency)
	results := make(chan batchResult, len(inputFiles))

	for _, file := range inputFiles {
		wg.Add(1)

		go func(filePath string) {
			defer wg.Done()

			workers <- struct{}{}
			defer func() { <-workers }()

			result := processFile(fm, cfg, filePath)
			results <- result

			log.Append(history.Record{
				Source:      filePath,
				Valid:       result.Err == nil && result.Outcome.Valid,
				EntryCount:  result.Outcome.EntryCount,
				TotalLength: result.Outcome.TotalLength,
				Errors:      result.Outcome.Errors,
				ProcessedAt: time.Now(),
			})
		}(file)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	// =========================================================================
	// STEP 4: COLLECT RESULTS
	// =========================================================================

	var successCount, errorCount int

	for result := range results {
		switch {
		case result.Err != nil:
			errorCount++
			fmt.Printf("  ✗ %s: %v\n", filepath.Base(result.FilePath), result.Err)
		case !result.Outcome.Valid:
			errorCount++
			fmt.Printf("  ✗ %s: %s\n", filepath.Base(result.FilePath), result.Outcome.Errors[0])
		default:
			successCount++
			fmt.Printf("  ✓ %s (%d entries) -> %s\n",
				filepath.Base(result.FilePath), result.Outcome.EntryCount, result.OutputFile)
		}
	}

	// =========================================================================
	// STEP 5: WRITE SUMMARY REPORT AND PRINT SUMMARY
	// =========================================================================

	if !dryRun {
		reportName := fileio.OutputFileName("batch_{timestamp}", "batch", ".xlsx")
		reportPath := filepath.Join(cfg.ReportsDir, reportName)
		if err := xlsxwriter.SaveSummary(reportPath, log.Records()); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write summary report: %v\n", err)
		} else {
			fmt.Printf("Summary report: %s\n", reportPath)
		}
	}

	elapsed := time.Since(startTime)
	fmt.Println("\n=== Processing Complete ===")
	fmt.Printf("Total files:     %d\n", len(inputFiles))
	fmt.Printf("Successful:      %d\n", successCount)
	fmt.Printf("Errors:          %d\n", errorCount)
	fmt.Printf("Time elapsed:    %s\n", elapsed)

	if errorCount > 0 && !cfg.ContinueOnError {
		return fmt.Errorf("%d file(s) failed", errorCount)
	}

	return nil
}

// =============================================================================
// PER-FILE PROCESSING
// =============================================================================

// processFile runs the parse -> validate -> export -> archive pipeline for
// one input file.
func processFile(fm *fileio.FileManager, cfg *config.MainConfig, filePath string) batchResult {
	result := batchResult{FilePath: filePath}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Err = fmt.Errorf("failed to read file: %w", err)
		return result
	}

	buffer := string(data)
	result.Outcome = klv.Validate(buffer)

	if !result.Outcome.Valid {
		return result
	}

	if dryRun {
		return result
	}

	outcome := klv.Parse(buffer)

	outputPath, err := exportEntries(fm, cfg.FileNameFormat, filePath, cfg.ExportFormat, outcome.Entries)
	if err != nil {
		result.Err = err
		return result
	}
	result.OutputFile = outputPath

	if cfg.ArchiveOnSuccess {
		if err := fm.ArchiveInputFile(filePath); err != nil {
			result.Err = err
			return result
		}
	}

	return result
}
