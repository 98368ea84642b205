// =============================================================================
// KLV Inspector - Export Command
// =============================================================================
//
// This file defines the 'export' command, which parses a KLV buffer and
// writes the entries to a file in the output directory.
//
// COMMAND USAGE:
//   klv export [buffer] [flags]
//
// FLAGS:
//   --file    : Read the buffer from a file instead of the argument
//   --format  : Output format (structured, tabular, fixed-width, xlsx)
//
// FILE NAMING:
//   The output file name is expanded from file_name_format in the main
//   configuration ({uuid}, {timestamp}, {stem} placeholders). The extension
//   follows the format: .json, .csv, .txt, or .xlsx.
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/klv-inspector/internal/klv"
	"github.com/ginjaninja78/klv-inspector/internal/xlsxwriter"
	"github.com/ginjaninja78/klv-inspector/pkg/fileio"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// exportFile is the path of the buffer file to export.
var exportFile string

// exportFormat is the output format for exported entries.
var exportFormat string

// =============================================================================
// EXPORT COMMAND DEFINITION
// =============================================================================

// exportCmd represents the 'export' command.
var exportCmd = &cobra.Command{
	Use:   "export [buffer]",
	Short: "Parse a KLV buffer and export the entries to a file",
	Long: `The export command parses a KLV buffer and writes the decoded entries to
the configured output directory. Textual formats (structured, tabular,
fixed-width) reuse the same renderings as 'parse'; the xlsx format writes
a spreadsheet with one row per entry.

The buffer must be structurally valid: unlike 'parse', export refuses to
write a file for a buffer that failed mid-scan.`,

	Args: cobra.MaximumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		buffer, err := readBuffer(exportFile, args)
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		format := exportFormat
		if format == "" {
			format = cfg.ExportFormat
		}

		outcome := klv.Parse(buffer)
		if len(outcome.Errors) > 0 {
			return fmt.Errorf("refusing to export invalid buffer: %s", outcome.Errors[0])
		}

		fm := fileio.New(cfg.InputDir, cfg.OutputDir, cfg.ArchiveDir, cfg.ReportsDir)
		if err := fm.EnsureDirectories(); err != nil {
			return err
		}

		outputPath, err := exportEntries(fm, cfg.FileNameFormat, exportFile, format, outcome.Entries)
		if err != nil {
			return err
		}

		fmt.Printf("Exported %d entries to %s\n", len(outcome.Entries), outputPath)
		return nil
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the export command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(
		&exportFile,
		"file",
		"",
		"Read the KLV buffer from a file instead of the argument",
	)

	exportCmd.Flags().StringVar(
		&exportFormat,
		"format",
		"",
		"Output format: structured, tabular, fixed-width, or xlsx (default from config)",
	)
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// exportExtensions maps format names to output file extensions.
var exportExtensions = map[string]string{
	klv.FormatStructured: ".json",
	klv.FormatTabular:    ".csv",
	klv.FormatFixedWidth: ".txt",
	"xlsx":               ".xlsx",
}

// exportEntries writes entries into the output directory in the given
// format and returns the output path. inputPath feeds the {stem}
// placeholder; "buffer" is used for inline input.
func exportEntries(fm *fileio.FileManager, nameFormat, inputPath, format string, entries []klv.Entry) (string, error) {
	if inputPath == "" {
		inputPath = "buffer"
	}

	extension, ok := exportExtensions[format]
	if !ok {
		// Unknown formats fall back to the structured rendering, same as
		// the engine's exporter.
		extension = exportExtensions[klv.FormatStructured]
	}

	name := fileio.OutputFileName(nameFormat, inputPath, extension)

	if format == "xlsx" {
		outputPath := filepath.Join(fm.OutputDir, name)
		if err := xlsxwriter.SaveEntries(outputPath, entries); err != nil {
			return "", err
		}
		return outputPath, nil
	}

	return fm.WriteOutput(name, []byte(klv.Export(entries, format)))
}
