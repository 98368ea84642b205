// =============================================================================
// KLV Inspector - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which checks a KLV buffer for
// structural errors and prints a verdict with counts.
//
// COMMAND USAGE:
//   klv validate [buffer] [flags]
//
// FLAGS:
//   --file   : Read the buffer from a file instead of the argument
//   --quiet  : Suppress output; communicate only via the exit code
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/klv-inspector/internal/klv"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// validateFile is the path of the buffer file to validate.
var validateFile string

// quiet suppresses all output from the validate command.
var quiet bool

// =============================================================================
// VALIDATE COMMAND DEFINITION
// =============================================================================

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate [buffer]",
	Short: "Validate a KLV buffer",
	Long: `The validate command parses a KLV buffer and reports whether it is
structurally valid, how many entries it contains, and the character length
of the whitespace-stripped input. An invalid buffer makes the command exit
non-zero, so it can gate shell pipelines; combine with --quiet for
exit-code-only use.`,

	Args: cobra.MaximumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		buffer, err := readBuffer(validateFile, args)
		if err != nil {
			return err
		}

		outcome := klv.Validate(buffer)

		if !quiet {
			verdict := "VALID"
			if !outcome.Valid {
				verdict = "INVALID"
			}
			fmt.Printf("Verdict:      %s\n", verdict)
			fmt.Printf("Entries:      %d\n", outcome.EntryCount)
			fmt.Printf("Total length: %d\n", outcome.TotalLength)
			for _, msg := range outcome.Errors {
				fmt.Printf("Error:        %s\n", msg)
			}
		}

		if !outcome.Valid {
			return fmt.Errorf("buffer is invalid: %s", outcome.Errors[0])
		}

		return nil
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the validate command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(
		&validateFile,
		"file",
		"",
		"Read the KLV buffer from a file instead of the argument",
	)

	validateCmd.Flags().BoolVar(
		&quiet,
		"quiet",
		false,
		"Suppress output and communicate only via the exit code",
	)
}
