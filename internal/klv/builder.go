// =============================================================================
// KLV Inspector - Builder
// =============================================================================
//
// The builder is the inverse of the parser: it serializes an ordered list of
// key/value pairs back into the flat KLV buffer format.
//
// PERMISSIVENESS (preserved from the reference behavior, see DESIGN.md):
//   - Entries with an empty key or empty value are silently dropped, so a
//     zero-length field cannot be represented by Build even though Parse
//     handles one natively.
//   - Keys longer than 3 characters pass through unmodified.
//   - Values of 100+ characters emit a length field wider than 2 digits.
//   Both overflow cases produce a syntactically emitted but non-conformant
//   buffer; Build never raises an error.
//
// =============================================================================

package klv

import (
	"strconv"
	"strings"
)

// Build serializes entries into a KLV buffer.
//
// Each surviving entry contributes paddedKey + paddedLength + value, with
// the key left-zero-padded to 3 characters and the decimal character length
// of the value left-zero-padded to 2. Entries are emitted in input order
// with no separators. An empty or fully-filtered input yields "".
func Build(entries []BuildEntry) string {
	var builder strings.Builder

	for _, entry := range entries {
		if entry.Key == "" || entry.Value == "" {
			continue
		}

		length := len([]rune(entry.Value))

		builder.WriteString(padLeft(entry.Key, 3, '0'))
		builder.WriteString(padLeft(strconv.Itoa(length), 2, '0'))
		builder.WriteString(entry.Value)
	}

	return builder.String()
}
