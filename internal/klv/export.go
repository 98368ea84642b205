// =============================================================================
// KLV Inspector - Exporter
// =============================================================================
//
// The exporter renders a list of parsed entries into one of three textual
// representations. It is a pure rendering function: no validation, no
// errors. An unrecognized format name falls back to the structured form.
//
// FORMATS:
//   structured  : 2-space-indented JSON array of the entries
//   tabular     : "Key,Name,Length,Value,Position" header + quoted rows
//   fixed-width : one padded line per entry, no header
//
// =============================================================================

package klv

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Recognized export format names.
const (
	FormatStructured = "structured"
	FormatTabular    = "tabular"
	FormatFixedWidth = "fixed-width"
)

// tabularHeader is the fixed first line of the tabular representation.
const tabularHeader = "Key,Name,Length,Value,Position"

// =============================================================================
// EXPORT
// =============================================================================

// Export renders entries in the named format.
func Export(entries []Entry, format string) string {
	switch format {
	case FormatTabular:
		return exportTabular(entries)
	case FormatFixedWidth:
		return exportFixedWidth(entries)
	default:
		return exportStructured(entries)
	}
}

// exportStructured serializes the entries as indented JSON, using the
// entry's own field names. An empty list renders as "[]".
func exportStructured(entries []Entry) string {
	if len(entries) == 0 {
		return "[]"
	}

	// Entry contains only strings, ints, and plain structs; marshaling
	// cannot fail.
	data, _ := json.MarshalIndent(entries, "", "  ")
	return string(data)
}

// exportTabular renders a delimited table: the fixed header line, then one
// double-quoted, comma-joined row per entry in the order key, fieldName,
// length, value, offset. An empty list yields just the header.
func exportTabular(entries []Entry) string {
	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, tabularHeader)

	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("%q,%q,%q,%q,%q",
			entry.Key,
			entry.FieldName,
			strconv.Itoa(entry.Length),
			entry.Value,
			strconv.Itoa(entry.Offset),
		))
	}

	return strings.Join(lines, "\n")
}

// exportFixedWidth renders one line per entry: key padded to 5, field name
// padded to 30, decimal length padded to 3 (all left-justified), then the
// value unpadded, single-space separated. An empty list yields "".
func exportFixedWidth(entries []Entry) string {
	lines := make([]string, 0, len(entries))

	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("%-5s %-30s %-3s %s",
			entry.Key,
			entry.FieldName,
			strconv.Itoa(entry.Length),
			entry.Value,
		))
	}

	return strings.Join(lines, "\n")
}
