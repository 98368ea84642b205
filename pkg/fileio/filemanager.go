// =============================================================================
// KLV Inspector - File Manager Utility
// =============================================================================
//
// File management utilities for the batch pipeline:
//   - Directory management
//   - Input file discovery
//   - Archival of processed files
//   - Output file naming from a placeholder format
//
// ARCHIVAL STRATEGY:
//   - Input files are moved to the archive directory after successful
//     processing.
//   - Failed files remain in their original location so a rerun picks them
//     up again.
//
// =============================================================================

package fileio

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for the batch pipeline.
type FileManager struct {
	// InputDir is the directory scanned for input buffers.
	InputDir string

	// OutputDir is the directory where exported files are placed.
	OutputDir string

	// ArchiveDir is the directory for archived input files.
	ArchiveDir string

	// ReportsDir is the directory for batch summary reports.
	ReportsDir string
}

// New creates a FileManager over the given directories.
func New(inputDir, outputDir, archiveDir, reportsDir string) *FileManager {
	return &FileManager{
		InputDir:   inputDir,
		OutputDir:  outputDir,
		ArchiveDir: archiveDir,
		ReportsDir: reportsDir,
	}
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDirectories creates all required directories if they don't exist.
func (fm *FileManager) EnsureDirectories() error {
	dirs := []string{
		fm.InputDir,
		fm.OutputDir,
		fm.ArchiveDir,
		fm.ReportsDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// =============================================================================
// FILE DISCOVERY
// =============================================================================

// DiscoverInputFiles returns the input files whose names match the glob
// pattern, sorted for deterministic processing order.
func (fm *FileManager) DiscoverInputFiles(pattern string) ([]string, error) {
	if pattern == "" {
		pattern = "*.klv"
	}

	files, err := filepath.Glob(filepath.Join(fm.InputDir, pattern))
	if err != nil {
		return nil, fmt.Errorf("failed to list input files: %w", err)
	}

	sort.Strings(files)
	return files, nil
}

// =============================================================================
// ARCHIVAL
// =============================================================================

// ArchiveInputFile moves a processed input file into the archive directory.
func (fm *FileManager) ArchiveInputFile(path string) error {
	archivePath := filepath.Join(fm.ArchiveDir, filepath.Base(path))

	if err := os.Rename(path, archivePath); err != nil {
		return fmt.Errorf("failed to archive input file: %w", err)
	}

	return nil
}

// =============================================================================
// OUTPUT NAMING
// =============================================================================

// OutputFileName expands a file-name format for one input file.
//
// Placeholders:
//   - {uuid}      : a random UUID
//   - {timestamp} : current time as YYYYMMDD_HHMMSS
//   - {stem}      : the input file name without directory or extension
//
// The extension is appended if the expanded name does not already carry it.
func OutputFileName(format, inputPath, extension string) string {
	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))

	name := format
	name = strings.ReplaceAll(name, "{uuid}", uuid.New().String())
	name = strings.ReplaceAll(name, "{timestamp}", time.Now().Format("20060102_150405"))
	name = strings.ReplaceAll(name, "{stem}", stem)

	if !strings.HasSuffix(name, extension) {
		name += extension
	}

	return name
}

// =============================================================================
// OUTPUT WRITING
// =============================================================================

// WriteOutput writes data into the output directory under the given name
// and returns the full path.
func (fm *FileManager) WriteOutput(name string, data []byte) (string, error) {
	outputPath := filepath.Join(fm.OutputDir, name)

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return outputPath, nil
}
