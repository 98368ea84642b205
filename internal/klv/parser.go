// =============================================================================
// KLV Inspector - Parser
// =============================================================================
//
// Single-pass, left-to-right, non-backtracking scanner for the KLV buffer
// format. Scanning stops at the first structural error; there is no
// recovery or resynchronization.
//
// SCANNING PROCESS:
//   1. Strip all Unicode whitespace from the input.
//   2. At each cursor position, read a 3-digit key and 2-digit length.
//   3. Read exactly <length> characters of value.
//   4. Resolve the field name and apply value decorators.
//   5. Advance the cursor by 5 + <length> and repeat.
//
// ERROR TAXONOMY (terminal, plain descriptive strings with the offset):
//   - "Incomplete entry at position N"  fewer than 5 characters remain
//   - "Invalid format at position N"    key or length prefix is not numeric
//   - "Incomplete value at position N"  declared length runs past the end
//
// =============================================================================

package klv

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ginjaninja78/klv-inspector/internal/directory"
)

// headerWidth is the fixed width of a key plus length prefix.
const headerWidth = 5

// =============================================================================
// PARSE
// =============================================================================

// Parse scans a raw KLV buffer into structured entries.
//
// Offsets are character positions in the whitespace-stripped buffer, so the
// scanner works over runes rather than bytes and non-ASCII values count by
// character. Parse is total: it never fails, it only reports structural
// errors in the outcome. Empty or all-whitespace input yields an outcome
// with no entries and no errors.
func Parse(raw string) ParseOutcome {
	outcome := ParseOutcome{
		Entries: []Entry{},
		Errors:  []string{},
	}

	buffer := stripWhitespace(raw)

	pos := 0
	for pos < len(buffer) {
		// A new entry needs at least a full key+length header.
		if pos+headerWidth > len(buffer) {
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("Incomplete entry at position %d", pos))
			break
		}

		key := string(buffer[pos : pos+3])
		lenField := buffer[pos+3 : pos+headerWidth]

		if !allDigits(buffer[pos:pos+3]) || !allDigits(lenField) {
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("Invalid format at position %d", pos))
			break
		}

		length := int(lenField[0]-'0')*10 + int(lenField[1]-'0')

		if pos+headerWidth+length > len(buffer) {
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("Incomplete value at position %d", pos+headerWidth))
			break
		}

		entry := Entry{
			Key:       key,
			Length:    length,
			Value:     string(buffer[pos+headerWidth : pos+headerWidth+length]),
			Offset:    pos,
			FieldName: directory.LookupFieldName(key),
		}
		applyDecorators(&entry)

		outcome.Entries = append(outcome.Entries, entry)
		pos += headerWidth + length
	}

	return outcome
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// stripWhitespace removes every Unicode whitespace character from raw and
// returns the remaining characters as a rune buffer.
func stripWhitespace(raw string) []rune {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	return []rune(cleaned)
}

// allDigits reports whether every rune is an ASCII decimal digit.
func allDigits(runes []rune) bool {
	for _, r := range runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
