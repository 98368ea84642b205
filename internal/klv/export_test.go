package klv

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntries(t *testing.T) []Entry {
	t.Helper()

	outcome := Parse("00206AB48DE" + "026044577")
	require.Empty(t, outcome.Errors)
	return outcome.Entries
}

func TestExport_Structured(t *testing.T) {
	out := Export(sampleEntries(t), FormatStructured)

	// The rendering is valid indented JSON using the entry's own field names.
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)

	assert.Equal(t, "002", decoded[0]["key"])
	assert.Equal(t, float64(6), decoded[0]["length"])
	assert.Equal(t, "AB48DE", decoded[0]["value"])
	assert.Equal(t, float64(0), decoded[0]["offset"])
	assert.Equal(t, "Tracking Number", decoded[0]["fieldName"])

	assert.True(t, strings.Contains(out, "\n  {"), "expected 2-space indentation")
}

func TestExport_StructuredEmpty(t *testing.T) {
	assert.Equal(t, "[]", Export(nil, FormatStructured))
	assert.Equal(t, "[]", Export([]Entry{}, FormatStructured))
}

func TestExport_Tabular(t *testing.T) {
	out := Export(sampleEntries(t), FormatTabular)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "Key,Name,Length,Value,Position", lines[0])
	assert.Equal(t, `"002","Tracking Number","6","AB48DE","0"`, lines[1])
	assert.Equal(t, `"026","Point of Service Capture Code","4","4577","11"`, lines[2])
}

func TestExport_TabularEmpty(t *testing.T) {
	assert.Equal(t, "Key,Name,Length,Value,Position", Export(nil, FormatTabular))
}

func TestExport_FixedWidth(t *testing.T) {
	out := Export(sampleEntries(t), FormatFixedWidth)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 2)
	assert.Equal(t, "002   Tracking Number                6   AB48DE", lines[0])
	assert.Equal(t, "026   Point of Service Capture Code  4   4577", lines[1])
}

func TestExport_FixedWidthEmpty(t *testing.T) {
	assert.Equal(t, "", Export(nil, FormatFixedWidth))
}

func TestExport_UnknownFormatFallsBack(t *testing.T) {
	entries := sampleEntries(t)

	assert.Equal(t, Export(entries, FormatStructured), Export(entries, "yaml"))
	assert.Equal(t, "[]", Export(nil, ""))
}

func TestExport_DecoratedEntryCarriesAnnotation(t *testing.T) {
	outcome := Parse("04903840")
	require.Len(t, outcome.Entries, 1)

	out := Export(outcome.Entries, FormatStructured)

	assert.Contains(t, out, `"annotatedValue": "🇺🇸 USD - US Dollar"`)
	assert.Contains(t, out, `"isoCode": "USD"`)
}
