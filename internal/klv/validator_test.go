package klv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidBuffer(t *testing.T) {
	outcome := Validate(" 00206AB48DE 026044577 ")

	assert.True(t, outcome.Valid)
	assert.Equal(t, 2, outcome.EntryCount)
	assert.Empty(t, outcome.Errors)
	assert.Equal(t, 20, outcome.TotalLength)
}

func TestValidate_InvalidBuffer(t *testing.T) {
	outcome := Validate("00210ABC")

	assert.False(t, outcome.Valid)
	assert.Equal(t, 0, outcome.EntryCount)
	require.Len(t, outcome.Errors, 1)
	assert.Contains(t, outcome.Errors[0], "Incomplete value")
	assert.Equal(t, 8, outcome.TotalLength)
}

func TestValidate_EmptyBuffer(t *testing.T) {
	for _, input := range []string{"", "  \n\t "} {
		outcome := Validate(input)

		assert.True(t, outcome.Valid)
		assert.Equal(t, 0, outcome.EntryCount)
		assert.Equal(t, 0, outcome.TotalLength)
	}
}

func TestValidate_AgreesWithParse(t *testing.T) {
	inputs := []string{
		"",
		"00206AB48DE",
		"002",
		"A0206ABCDEF",
		"00210ABC",
		"00200",
		"04903840",
		"  018 04 5411  ",
	}

	for _, input := range inputs {
		parseOutcome := Parse(input)
		validateOutcome := Validate(input)

		assert.Equal(t, len(parseOutcome.Errors) == 0, validateOutcome.Valid, "input %q", input)
		assert.Equal(t, len(parseOutcome.Entries), validateOutcome.EntryCount, "input %q", input)
		assert.Equal(t, parseOutcome.Errors, validateOutcome.Errors, "input %q", input)
	}
}
