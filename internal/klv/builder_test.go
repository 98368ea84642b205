package klv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Serialization(t *testing.T) {
	buffer := Build([]BuildEntry{
		{Key: "002", Value: "AB48DE"},
		{Key: "026", Value: "4577"},
	})

	assert.Equal(t, "00206AB48DE026044577", buffer)
}

func TestBuild_KeyPadding(t *testing.T) {
	buffer := Build([]BuildEntry{
		{Key: "2", Value: "AB"},
		{Key: "49", Value: "840"},
	})

	assert.Equal(t, "00202AB04903840", buffer)
}

func TestBuild_DropsEmptyPairs(t *testing.T) {
	buffer := Build([]BuildEntry{
		{Key: "", Value: "orphan"},
		{Key: "002", Value: "AB48DE"},
		{Key: "026", Value: ""},
	})

	assert.Equal(t, "00206AB48DE", buffer)
}

func TestBuild_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Build(nil))
	assert.Equal(t, "", Build([]BuildEntry{}))
	assert.Equal(t, "", Build([]BuildEntry{{Key: "", Value: ""}}))
}

func TestBuild_ZeroLengthValueCannotRoundTrip(t *testing.T) {
	// Parse represents a zero-length field natively, but Build drops the
	// pair: the asymmetry is deliberate reference behavior.
	outcome := Parse("00200")
	require.Len(t, outcome.Entries, 1)
	require.Equal(t, "", outcome.Entries[0].Value)

	buffer := Build([]BuildEntry{{Key: "002", Value: ""}})
	assert.Equal(t, "", buffer)
}

func TestBuild_OversizedKeyPassesThrough(t *testing.T) {
	// Keys longer than 3 characters are not truncated; the emitted buffer
	// is syntactically assembled but non-conformant.
	buffer := Build([]BuildEntry{{Key: "12345", Value: "ab"}})

	assert.Equal(t, "1234502ab", buffer)
}

func TestBuild_LengthFieldOverflow(t *testing.T) {
	// A 100+ character value emits a 3-digit length field; Build neither
	// clamps nor errors, and Parse rejects the result.
	long := strings.Repeat("x", 100)
	buffer := Build([]BuildEntry{{Key: "002", Value: long}})

	assert.Equal(t, "002100"+long, buffer)

	outcome := Parse(buffer)
	assert.NotEmpty(t, outcome.Errors)
}

func TestBuild_NonASCIILength(t *testing.T) {
	// Value lengths count characters, matching the parser.
	buffer := Build([]BuildEntry{{Key: "104", Value: "言語四字"}})

	assert.Equal(t, "10404言語四字", buffer)
}

func TestBuild_ParseRoundTrip(t *testing.T) {
	input := []BuildEntry{
		{Key: "002", Value: "AB48DE"},
		{Key: "49", Value: "840"},
		{Key: "018", Value: "5812"},
		{Key: "999", Value: strings.Repeat("z", 99)},
	}

	outcome := Parse(Build(input))

	require.Empty(t, outcome.Errors)
	require.Len(t, outcome.Entries, len(input))

	offset := 0
	for i, entry := range outcome.Entries {
		assert.Equal(t, padLeft(input[i].Key, 3, '0'), entry.Key)
		assert.Equal(t, input[i].Value, entry.Value)
		assert.Equal(t, len([]rune(input[i].Value)), entry.Length)
		assert.Equal(t, offset, entry.Offset)
		offset += 5 + entry.Length
	}
}
