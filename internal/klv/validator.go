// =============================================================================
// KLV Inspector - Validator
// =============================================================================
//
// The validator wraps the parser to produce a boolean verdict plus counts.
// It performs no checks of its own beyond what Parse reports.
//
// =============================================================================

package klv

// Validate parses raw and reduces the outcome to a validity verdict.
//
// Valid is true iff Parse reported no errors. TotalLength is the character
// count of the whitespace-stripped input, which is also what the parser
// scanned. Like Parse, Validate is total over any string input.
func Validate(raw string) ValidationOutcome {
	outcome := Parse(raw)

	return ValidationOutcome{
		Valid:       len(outcome.Errors) == 0,
		EntryCount:  len(outcome.Entries),
		Errors:      outcome.Errors,
		TotalLength: len(stripWhitespace(raw)),
	}
}
