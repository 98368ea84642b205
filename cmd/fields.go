// =============================================================================
// KLV Inspector - Fields Command
// =============================================================================
//
// This file defines the 'fields' command, which lists the static reference
// data the engine resolves against: the field directory, the currency
// table, and the merchant category code table.
//
// COMMAND USAGE:
//   klv fields               # List the field directory
//   klv fields --currencies  # List the currency table
//   klv fields --mccs        # List the MCC table
//
// =============================================================================

package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/klv-inspector/internal/directory"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// listCurrencies switches the output to the currency table.
var listCurrencies bool

// listMCCs switches the output to the merchant category code table.
var listMCCs bool

// =============================================================================
// FIELDS COMMAND DEFINITION
// =============================================================================

// fieldsCmd represents the 'fields' command.
var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the field directory and reference tables",
	Long: `The fields command dumps the static lookup tables: the KLV field
directory (3-digit key to field name), the ISO 4217 currency table, and
the merchant category code table. Output is sorted by key.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case listCurrencies && listMCCs:
			return fmt.Errorf("--currencies and --mccs are mutually exclusive")
		case listCurrencies:
			printCurrencies()
		case listMCCs:
			printMerchantCategories()
		default:
			printFieldDirectory()
		}
		return nil
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the fields command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(fieldsCmd)

	fieldsCmd.Flags().BoolVar(
		&listCurrencies,
		"currencies",
		false,
		"List the ISO 4217 currency table instead of the field directory",
	)

	fieldsCmd.Flags().BoolVar(
		&listMCCs,
		"mccs",
		false,
		"List the merchant category code table instead of the field directory",
	)
}

// =============================================================================
// TABLE PRINTERS
// =============================================================================

// printFieldDirectory lists all registered field keys and names.
func printFieldDirectory() {
	fields := directory.FieldNames()

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Printf("Field directory (%d entries):\n", len(keys))
	for _, key := range keys {
		fmt.Printf("  %s  %s\n", key, fields[key])
	}
}

// printCurrencies lists the currency reference table.
func printCurrencies() {
	currencies := directory.Currencies()

	codes := make([]string, 0, len(currencies))
	for code := range currencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	fmt.Printf("Currency table (%d entries):\n", len(codes))
	for _, code := range codes {
		c := currencies[code]
		fmt.Printf("  %s  %s %s - %s\n", code, c.FlagGlyph, c.AlphaCode, c.DisplayName)
	}
}

// printMerchantCategories lists the MCC reference table.
func printMerchantCategories() {
	mccs := directory.MerchantCategories()

	codes := make([]string, 0, len(mccs))
	for code := range mccs {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	fmt.Printf("Merchant category table (%d entries):\n", len(codes))
	for _, code := range codes {
		fmt.Printf("  %s  %s\n", code, mccs[code])
	}
}
