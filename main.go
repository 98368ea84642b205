// =============================================================================
// KLV Inspector - Main Entry Point
// =============================================================================
//
// This is the main entry point for the KLV Inspector CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   klv parse         - Parse a KLV buffer into structured entries
//   klv validate      - Validate a KLV buffer
//   klv build         - Build a KLV buffer from key/value pairs
//   klv export        - Parse a buffer and export it to a file
//   klv batch         - Process all buffers in the input directory
//   klv fields        - List the field directory and reference tables
//   klv version       - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/klv/  : Core parse/validate/build/export engine
//   - internal/      : Supporting modules (directory, config, history, xlsx)
//   - pkg/           : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/klv-inspector/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
