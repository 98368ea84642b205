// =============================================================================
// KLV Inspector - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (klv)
//   ├── parseCmd    (klv parse)
//   ├── validateCmd (klv validate)
//   ├── buildCmd    (klv build)
//   ├── exportCmd   (klv export)
//   ├── batchCmd    (klv batch)
//   ├── fieldsCmd   (klv fields)
//   └── versionCmd  (klv version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/klv-inspector/internal/config"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the main configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose output when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "klv",

	Short: "KLV Inspector - Parse, validate, and build KLV payment metadata buffers",

	Long: `KLV Inspector is a CLI tool for working with the Key-Length-Value (KLV)
tagged-field encoding used for payment-transaction metadata.

A KLV buffer is a flat sequence of fields with no separators: a 3-digit
numeric key, a 2-digit value length, then exactly that many characters of
value. The inspector decodes such buffers into structured entries (with
field names, currency and merchant-category annotations), validates them,
rebuilds buffers from key/value pairs, and exports parsed entries as
structured, tabular, fixed-width, or XLSX output.

Example Usage:
  klv parse "00206AB48DE"              # Parse an inline buffer
  klv parse --file payload.klv         # Parse a buffer from a file
  klv validate --file payload.klv      # Validity verdict and counts
  klv build --input fields.yaml        # Serialize key/value pairs
  klv batch                            # Process the whole input directory`,

	// If no subcommand is provided, print the help message.
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	// Persistent flags are available to this command and all subcommands.

	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file (default is config.yaml)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// loadConfig loads the configuration referenced by --config.
// A missing file yields the documented defaults.
func loadConfig() (*config.MainConfig, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
