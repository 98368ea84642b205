package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupFieldName(t *testing.T) {
	t.Run("registered keys", func(t *testing.T) {
		assert.Equal(t, "Tracking Number", LookupFieldName("002"))
		assert.Equal(t, "Transaction Currency Code", LookupFieldName(CurrencyFieldKey))
		assert.Equal(t, "Merchant Category Code", LookupFieldName(MerchantCategoryFieldKey))
	})

	t.Run("catch-all is a real entry, not the fallback", func(t *testing.T) {
		assert.Equal(t, "Generic Key", LookupFieldName("999"))
		assert.True(t, HasField("999"))
	})

	t.Run("unregistered keys fall back", func(t *testing.T) {
		assert.Equal(t, UnknownFieldName, LookupFieldName("123"))
		assert.False(t, HasField("123"))
	})

	t.Run("total over arbitrary input", func(t *testing.T) {
		assert.Equal(t, UnknownFieldName, LookupFieldName(""))
		assert.Equal(t, UnknownFieldName, LookupFieldName("49"))
		assert.Equal(t, UnknownFieldName, LookupFieldName("banana"))
	})
}

func TestFieldDirectorySize(t *testing.T) {
	assert.GreaterOrEqual(t, FieldCount(), 100)
	assert.Len(t, FieldNames(), FieldCount())
}

func TestLookupCurrency(t *testing.T) {
	t.Run("known numeric code", func(t *testing.T) {
		c, ok := LookupCurrency("840")
		require.True(t, ok)
		assert.Equal(t, "USD", c.AlphaCode)
		assert.Equal(t, "US Dollar", c.DisplayName)
		assert.Equal(t, "🇺🇸", c.FlagGlyph)
	})

	t.Run("exact match only", func(t *testing.T) {
		_, ok := LookupCurrency("84")
		assert.False(t, ok)

		_, ok = LookupCurrency("0840")
		assert.False(t, ok)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, ok := LookupCurrency("007")
		assert.False(t, ok)
	})
}

func TestLookupMerchantCategory(t *testing.T) {
	desc, ok := LookupMerchantCategory("5411")
	require.True(t, ok)
	assert.Equal(t, "Grocery Stores and Supermarkets", desc)

	_, ok = LookupMerchantCategory("0000")
	assert.False(t, ok)
}

func TestTableCopiesAreIsolated(t *testing.T) {
	// Mutating a returned copy must not affect the package-level tables.
	fields := FieldNames()
	fields["002"] = "tampered"
	assert.Equal(t, "Tracking Number", LookupFieldName("002"))

	currencies := Currencies()
	currencies["840"] = Currency{AlphaCode: "XXX"}
	c, _ := LookupCurrency("840")
	assert.Equal(t, "USD", c.AlphaCode)

	mccs := MerchantCategories()
	mccs["5411"] = "tampered"
	desc, _ := LookupMerchantCategory("5411")
	assert.Equal(t, "Grocery Stores and Supermarkets", desc)
}
