// =============================================================================
// KLV Inspector - Build Command
// =============================================================================
//
// This file defines the 'build' command, the inverse of 'parse': it reads
// an ordered list of key/value pairs from a YAML file and serializes them
// into a KLV buffer.
//
// COMMAND USAGE:
//   klv build --input fields.yaml [flags]
//
// INPUT FORMAT:
//   A YAML list of key/value pairs, serialized in list order:
//     - key: "002"
//       value: "AB48DE"
//     - key: "49"        # short keys are left-zero-padded
//       value: "840"
//
// FLAGS:
//   --input   : Path to the YAML file with key/value pairs (required)
//   --output  : Write the buffer to a file instead of stdout
//
// Pairs with an empty key or empty value are silently dropped, matching
// the engine's builder semantics.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/klv-inspector/internal/klv"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// buildInput is the path of the YAML file holding key/value pairs.
var buildInput string

// buildOutput is an optional path to write the buffer to.
var buildOutput string

// =============================================================================
// BUILD COMMAND DEFINITION
// =============================================================================

// buildCmd represents the 'build' command.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a KLV buffer from key/value pairs",
	Long: `The build command serializes an ordered list of key/value pairs into the
flat KLV buffer format: each pair contributes a 3-digit left-zero-padded
key, a 2-digit value length, and the value itself, with no separators.

The pairs are read from a YAML file. Pairs with an empty key or empty
value are dropped before serialization.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(buildInput)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}

		var entries []klv.BuildEntry
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return fmt.Errorf("failed to parse input file: %w", err)
		}

		buffer := klv.Build(entries)

		if buildOutput != "" {
			if err := os.WriteFile(buildOutput, []byte(buffer), 0644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			if verbose {
				fmt.Fprintf(os.Stderr, "wrote %d characters to %s\n", len(buffer), buildOutput)
			}
			return nil
		}

		fmt.Println(buffer)
		return nil
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the build command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVar(
		&buildInput,
		"input",
		"",
		"Path to the YAML file with key/value pairs",
	)
	buildCmd.MarkFlagRequired("input")

	buildCmd.Flags().StringVar(
		&buildOutput,
		"output",
		"",
		"Write the buffer to a file instead of stdout",
	)
}
