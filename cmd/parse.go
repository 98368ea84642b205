// =============================================================================
// KLV Inspector - Parse Command
// =============================================================================
//
// This file defines the 'parse' command, which decodes a KLV buffer into
// structured entries and prints them in the selected format.
//
// COMMAND USAGE:
//   klv parse [buffer] [flags]
//
// FLAGS:
//   --file    : Read the buffer from a file instead of the argument
//   --format  : Output format (structured, tabular, fixed-width)
//
// The command exits non-zero when the buffer contains a structural error;
// any entries parsed before the halt point are still printed.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/klv-inspector/internal/klv"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// parseFile is the path of the buffer file to parse.
var parseFile string

// parseFormat is the output format for parsed entries.
var parseFormat string

// =============================================================================
// PARSE COMMAND DEFINITION
// =============================================================================

// parseCmd represents the 'parse' command.
var parseCmd = &cobra.Command{
	Use:   "parse [buffer]",
	Short: "Parse a KLV buffer into structured entries",
	Long: `The parse command decodes a KLV buffer into structured entries and prints
them in the selected format. The buffer is given inline as an argument or
read from a file with --file; whitespace anywhere in the input is ignored.

Entries are annotated on the fly: transaction currency codes (key 049)
resolve against the ISO 4217 table and merchant category codes (key 018)
against the MCC table.

Parsing stops at the first structural error. Entries decoded before the
halt point are printed, the error is reported on stderr, and the command
exits non-zero.`,

	Args: cobra.MaximumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		buffer, err := readBuffer(parseFile, args)
		if err != nil {
			return err
		}

		format := parseFormat
		if format == "" {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			format = cfg.ExportFormat
		}

		outcome := klv.Parse(buffer)

		fmt.Println(klv.Export(outcome.Entries, format))

		if len(outcome.Errors) > 0 {
			for _, msg := range outcome.Errors {
				fmt.Fprintf(os.Stderr, "parse error: %s\n", msg)
			}
			return fmt.Errorf("buffer contains %d structural error(s)", len(outcome.Errors))
		}

		if verbose {
			fmt.Fprintf(os.Stderr, "parsed %d entry(ies)\n", len(outcome.Entries))
		}

		return nil
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the parse command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVar(
		&parseFile,
		"file",
		"",
		"Read the KLV buffer from a file instead of the argument",
	)

	parseCmd.Flags().StringVar(
		&parseFormat,
		"format",
		"",
		"Output format: structured, tabular, or fixed-width (default from config)",
	)
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// readBuffer resolves the input buffer from the --file flag or the first
// positional argument.
func readBuffer(filePath string, args []string) (string, error) {
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("failed to read buffer file: %w", err)
		}
		return string(data), nil
	}

	if len(args) == 0 {
		return "", fmt.Errorf("no buffer given: pass it as an argument or use --file")
	}

	return args[0], nil
}
