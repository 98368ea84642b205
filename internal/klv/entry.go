// =============================================================================
// KLV Inspector - Core Types
// =============================================================================
//
// This package implements the KLV (Key-Length-Value) tagged-field engine used
// for payment-transaction metadata:
//   - Parse:    raw buffer -> structured entries + errors
//   - Validate: parse wrapper producing a verdict and counts
//   - Build:    ordered key/value pairs -> raw buffer
//   - Export:   entries -> structured / tabular / fixed-width text
//
// WIRE FORMAT:
//   KKKLLVVVV... repeated. 3 ASCII decimal digits (key), 2 ASCII decimal
//   digits (length, 0-99), then exactly that many characters of value. No
//   separators between consecutive fields. Whitespace anywhere in the input
//   is tolerated by Parse (stripped before scanning) and never produced by
//   Build.
//
// Every operation is a pure function over its input: no I/O, no shared
// mutable state, safe for unsynchronized concurrent use.
//
// =============================================================================

package klv

import "github.com/ginjaninja78/klv-inspector/internal/directory"

// =============================================================================
// ENTRY TYPES
// =============================================================================

// Entry is one parsed (key, length, value) triple plus derived metadata.
type Entry struct {
	// Key is the 3-digit numeric field key.
	Key string `json:"key" yaml:"key"`

	// Length is the declared value length (0-99).
	Length int `json:"length" yaml:"length"`

	// Value is the field value; len in characters always equals Length.
	Value string `json:"value" yaml:"value"`

	// Offset is the character position of the key in the cleaned buffer.
	// For consecutive entries, Offset[i+1] = Offset[i] + 5 + Length[i].
	Offset int `json:"offset" yaml:"offset"`

	// FieldName is the directory name for the key ("Unknown" if unregistered).
	FieldName string `json:"fieldName" yaml:"field_name"`

	// AnnotatedValue is the human-readable annotation attached by a
	// decorator, if one fired for this entry's key.
	AnnotatedValue string `json:"annotatedValue,omitempty" yaml:"annotated_value,omitempty"`

	// CurrencyDetail holds the resolved currency when the currency decorator
	// fired and the code was found in the reference table.
	CurrencyDetail *directory.Currency `json:"currencyDetail,omitempty" yaml:"currency_detail,omitempty"`

	// MCCDetail holds the resolved merchant category when the MCC decorator
	// fired and the code was found in the reference table.
	MCCDetail *MerchantCategoryDetail `json:"mccDetail,omitempty" yaml:"mcc_detail,omitempty"`
}

// MerchantCategoryDetail is the resolved merchant category of an entry.
type MerchantCategoryDetail struct {
	// Code is the 4-digit MCC, left-zero-padded.
	Code string `json:"code" yaml:"code"`

	// Description is the MCC table description.
	Description string `json:"description" yaml:"description"`
}

// =============================================================================
// OUTCOME TYPES
// =============================================================================

// ParseOutcome is the result of one Parse call.
//
// Parsing halts at the first structural error: Entries never contains
// results for a buffer region after an error, and Errors holds exactly the
// messages accumulated up to the halt point (in practice zero or one).
type ParseOutcome struct {
	// Entries are the parsed entries, in buffer order.
	Entries []Entry `json:"entries"`

	// Errors are the structural error messages, in detection order.
	Errors []string `json:"errors"`
}

// ValidationOutcome is the result of one Validate call.
// It is derived entirely from the ParseOutcome; there is no independent state.
type ValidationOutcome struct {
	// Valid is true iff parsing produced no errors.
	Valid bool `json:"valid"`

	// EntryCount is the number of entries parsed before any halt.
	EntryCount int `json:"entryCount"`

	// Errors is the parse error list, surfaced verbatim.
	Errors []string `json:"errors"`

	// TotalLength is the character length of the whitespace-stripped input.
	TotalLength int `json:"totalLength"`
}

// BuildEntry is one key/value pair of Build input.
type BuildEntry struct {
	// Key is the field key; at most 3 numeric characters. Shorter keys are
	// left-zero-padded by Build.
	Key string `json:"key" yaml:"key"`

	// Value is the field value.
	Value string `json:"value" yaml:"value"`
}
