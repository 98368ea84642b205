// =============================================================================
// KLV Inspector - Value Decorators
// =============================================================================
//
// Decorators attach human-readable annotations to parsed entries based on
// their field key. Each decorator is a pure function returning an optional
// patch; Parse applies them in a fixed sequence and merges any non-nil
// result into the entry.
//
// APPLICATION ORDER:
//   1. Currency decorator (key "049")
//   2. MCC decorator (key "018")
//
// The trigger keys are distinct, so at most one decorator annotates a given
// entry. The order still matters: a later decorator's patch overwrites the
// annotation of an earlier one, so on a key collision the MCC decorator
// would win.
//
// =============================================================================

package klv

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/klv-inspector/internal/directory"
)

// =============================================================================
// DECORATION TYPES
// =============================================================================

// Decoration is an optional patch produced by a decorator.
type Decoration struct {
	// AnnotatedValue is the human-readable annotation.
	AnnotatedValue string

	// Currency is set when the currency decorator resolved the code.
	Currency *directory.Currency

	// MCC is set when the MCC decorator resolved the code.
	MCC *MerchantCategoryDetail
}

// decoratorFunc inspects a (key, value) pair and returns a Decoration, or
// nil when the decorator does not apply to the key.
type decoratorFunc func(key, value string) *Decoration

// decorators is the fixed application sequence. Order is load-bearing: the
// last non-nil result wins.
var decorators = []decoratorFunc{
	decorateCurrency,
	decorateMerchantCategory,
}

// =============================================================================
// DECORATOR FUNCTIONS
// =============================================================================

// decorateCurrency annotates transaction currency code values.
//
// The raw value is left-zero-padded to 3 digits before the table probe.
// Known codes are annotated "<flag> <alpha> - <name>" with the currency
// detail attached. Unknown codes are annotated with the ORIGINAL (unpadded)
// value and no detail, matching the reference behavior.
func decorateCurrency(key, value string) *Decoration {
	if key != directory.CurrencyFieldKey {
		return nil
	}

	padded := padLeft(value, 3, '0')

	currency, ok := directory.LookupCurrency(padded)
	if !ok {
		return &Decoration{
			AnnotatedValue: fmt.Sprintf("%s (Unknown Currency Code)", value),
		}
	}

	return &Decoration{
		AnnotatedValue: fmt.Sprintf("%s %s - %s", currency.FlagGlyph, currency.AlphaCode, currency.DisplayName),
		Currency:       &currency,
	}
}

// decorateMerchantCategory annotates merchant category code values.
//
// The raw value is left-zero-padded to 4 digits before the table probe.
// Unlike the currency decorator, the PADDED code appears in both the known
// and unknown annotation strings.
func decorateMerchantCategory(key, value string) *Decoration {
	if key != directory.MerchantCategoryFieldKey {
		return nil
	}

	padded := padLeft(value, 4, '0')

	description, ok := directory.LookupMerchantCategory(padded)
	if !ok {
		return &Decoration{
			AnnotatedValue: fmt.Sprintf("%s (Unknown MCC)", padded),
		}
	}

	return &Decoration{
		AnnotatedValue: fmt.Sprintf("%s - %s", padded, description),
		MCC: &MerchantCategoryDetail{
			Code:        padded,
			Description: description,
		},
	}
}

// applyDecorators runs the decorator sequence over an entry and merges each
// non-nil patch. A firing decorator replaces any previous annotation.
func applyDecorators(entry *Entry) {
	for _, decorate := range decorators {
		patch := decorate(entry.Key, entry.Value)
		if patch == nil {
			continue
		}

		entry.AnnotatedValue = patch.AnnotatedValue
		entry.CurrencyDetail = patch.Currency
		entry.MCCDetail = patch.MCC
	}
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// padLeft pads s on the left with pad runes up to width characters.
// Strings already at or beyond width are returned unchanged.
func padLeft(s string, width int, pad rune) string {
	n := width - len([]rune(s))
	if n <= 0 {
		return s
	}
	return strings.Repeat(string(pad), n) + s
}
