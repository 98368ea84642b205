// =============================================================================
// KLV Inspector - Currency Reference Table
// =============================================================================
//
// Static reference table mapping ISO 4217 numeric currency codes to their
// alphabetic code, display name, and flag glyph. The table is consulted by
// the currency decorator when it annotates values of the transaction
// currency code field ("049").
//
// Probe values are left-zero-padded to 3 digits before lookup, so "8",
// "08", and "008" all resolve to the same entry.
//
// =============================================================================

package directory

// Currency describes one ISO 4217 currency.
type Currency struct {
	// AlphaCode is the 3-letter ISO 4217 alphabetic code (e.g. "USD").
	AlphaCode string `json:"isoCode" yaml:"iso_code"`

	// DisplayName is the human-readable currency name (e.g. "US Dollar").
	DisplayName string `json:"displayName" yaml:"display_name"`

	// FlagGlyph is the emoji flag of the issuing region.
	FlagGlyph string `json:"flagGlyph" yaml:"flag_glyph"`
}

// =============================================================================
// CURRENCY TABLE
// =============================================================================

// currencies maps ISO 4217 numeric codes to currency details.
var currencies = map[string]Currency{
	"008": {AlphaCode: "ALL", DisplayName: "Albanian Lek", FlagGlyph: "🇦🇱"},
	"032": {AlphaCode: "ARS", DisplayName: "Argentine Peso", FlagGlyph: "🇦🇷"},
	"036": {AlphaCode: "AUD", DisplayName: "Australian Dollar", FlagGlyph: "🇦🇺"},
	"044": {AlphaCode: "BSD", DisplayName: "Bahamian Dollar", FlagGlyph: "🇧🇸"},
	"048": {AlphaCode: "BHD", DisplayName: "Bahraini Dinar", FlagGlyph: "🇧🇭"},
	"050": {AlphaCode: "BDT", DisplayName: "Bangladeshi Taka", FlagGlyph: "🇧🇩"},
	"096": {AlphaCode: "BND", DisplayName: "Brunei Dollar", FlagGlyph: "🇧🇳"},
	"124": {AlphaCode: "CAD", DisplayName: "Canadian Dollar", FlagGlyph: "🇨🇦"},
	"144": {AlphaCode: "LKR", DisplayName: "Sri Lankan Rupee", FlagGlyph: "🇱🇰"},
	"152": {AlphaCode: "CLP", DisplayName: "Chilean Peso", FlagGlyph: "🇨🇱"},
	"156": {AlphaCode: "CNY", DisplayName: "Chinese Yuan", FlagGlyph: "🇨🇳"},
	"170": {AlphaCode: "COP", DisplayName: "Colombian Peso", FlagGlyph: "🇨🇴"},
	"188": {AlphaCode: "CRC", DisplayName: "Costa Rican Colon", FlagGlyph: "🇨🇷"},
	"203": {AlphaCode: "CZK", DisplayName: "Czech Koruna", FlagGlyph: "🇨🇿"},
	"208": {AlphaCode: "DKK", DisplayName: "Danish Krone", FlagGlyph: "🇩🇰"},
	"344": {AlphaCode: "HKD", DisplayName: "Hong Kong Dollar", FlagGlyph: "🇭🇰"},
	"348": {AlphaCode: "HUF", DisplayName: "Hungarian Forint", FlagGlyph: "🇭🇺"},
	"356": {AlphaCode: "INR", DisplayName: "Indian Rupee", FlagGlyph: "🇮🇳"},
	"360": {AlphaCode: "IDR", DisplayName: "Indonesian Rupiah", FlagGlyph: "🇮🇩"},
	"376": {AlphaCode: "ILS", DisplayName: "Israeli New Shekel", FlagGlyph: "🇮🇱"},
	"392": {AlphaCode: "JPY", DisplayName: "Japanese Yen", FlagGlyph: "🇯🇵"},
	"398": {AlphaCode: "KZT", DisplayName: "Kazakhstani Tenge", FlagGlyph: "🇰🇿"},
	"404": {AlphaCode: "KES", DisplayName: "Kenyan Shilling", FlagGlyph: "🇰🇪"},
	"410": {AlphaCode: "KRW", DisplayName: "South Korean Won", FlagGlyph: "🇰🇷"},
	"414": {AlphaCode: "KWD", DisplayName: "Kuwaiti Dinar", FlagGlyph: "🇰🇼"},
	"446": {AlphaCode: "MOP", DisplayName: "Macanese Pataca", FlagGlyph: "🇲🇴"},
	"458": {AlphaCode: "MYR", DisplayName: "Malaysian Ringgit", FlagGlyph: "🇲🇾"},
	"484": {AlphaCode: "MXN", DisplayName: "Mexican Peso", FlagGlyph: "🇲🇽"},
	"504": {AlphaCode: "MAD", DisplayName: "Moroccan Dirham", FlagGlyph: "🇲🇦"},
	"554": {AlphaCode: "NZD", DisplayName: "New Zealand Dollar", FlagGlyph: "🇳🇿"},
	"566": {AlphaCode: "NGN", DisplayName: "Nigerian Naira", FlagGlyph: "🇳🇬"},
	"578": {AlphaCode: "NOK", DisplayName: "Norwegian Krone", FlagGlyph: "🇳🇴"},
	"586": {AlphaCode: "PKR", DisplayName: "Pakistani Rupee", FlagGlyph: "🇵🇰"},
	"604": {AlphaCode: "PEN", DisplayName: "Peruvian Sol", FlagGlyph: "🇵🇪"},
	"608": {AlphaCode: "PHP", DisplayName: "Philippine Peso", FlagGlyph: "🇵🇭"},
	"634": {AlphaCode: "QAR", DisplayName: "Qatari Riyal", FlagGlyph: "🇶🇦"},
	"643": {AlphaCode: "RUB", DisplayName: "Russian Ruble", FlagGlyph: "🇷🇺"},
	"682": {AlphaCode: "SAR", DisplayName: "Saudi Riyal", FlagGlyph: "🇸🇦"},
	"702": {AlphaCode: "SGD", DisplayName: "Singapore Dollar", FlagGlyph: "🇸🇬"},
	"704": {AlphaCode: "VND", DisplayName: "Vietnamese Dong", FlagGlyph: "🇻🇳"},
	"710": {AlphaCode: "ZAR", DisplayName: "South African Rand", FlagGlyph: "🇿🇦"},
	"752": {AlphaCode: "SEK", DisplayName: "Swedish Krona", FlagGlyph: "🇸🇪"},
	"756": {AlphaCode: "CHF", DisplayName: "Swiss Franc", FlagGlyph: "🇨🇭"},
	"764": {AlphaCode: "THB", DisplayName: "Thai Baht", FlagGlyph: "🇹🇭"},
	"784": {AlphaCode: "AED", DisplayName: "UAE Dirham", FlagGlyph: "🇦🇪"},
	"818": {AlphaCode: "EGP", DisplayName: "Egyptian Pound", FlagGlyph: "🇪🇬"},
	"826": {AlphaCode: "GBP", DisplayName: "British Pound", FlagGlyph: "🇬🇧"},
	"840": {AlphaCode: "USD", DisplayName: "US Dollar", FlagGlyph: "🇺🇸"},
	"901": {AlphaCode: "TWD", DisplayName: "New Taiwan Dollar", FlagGlyph: "🇹🇼"},
	"933": {AlphaCode: "BYN", DisplayName: "Belarusian Ruble", FlagGlyph: "🇧🇾"},
	"936": {AlphaCode: "GHS", DisplayName: "Ghanaian Cedi", FlagGlyph: "🇬🇭"},
	"941": {AlphaCode: "RSD", DisplayName: "Serbian Dinar", FlagGlyph: "🇷🇸"},
	"946": {AlphaCode: "RON", DisplayName: "Romanian Leu", FlagGlyph: "🇷🇴"},
	"949": {AlphaCode: "TRY", DisplayName: "Turkish Lira", FlagGlyph: "🇹🇷"},
	"960": {AlphaCode: "XDR", DisplayName: "Special Drawing Rights", FlagGlyph: "🏳️"},
	"978": {AlphaCode: "EUR", DisplayName: "Euro", FlagGlyph: "🇪🇺"},
	"980": {AlphaCode: "UAH", DisplayName: "Ukrainian Hryvnia", FlagGlyph: "🇺🇦"},
	"985": {AlphaCode: "PLN", DisplayName: "Polish Zloty", FlagGlyph: "🇵🇱"},
	"986": {AlphaCode: "BRL", DisplayName: "Brazilian Real", FlagGlyph: "🇧🇷"},
}

// =============================================================================
// LOOKUP FUNCTIONS
// =============================================================================

// LookupCurrency returns the currency details for an ISO 4217 numeric code.
// The probe must already be padded to 3 digits; the decorator layer handles
// padding of raw field values.
func LookupCurrency(numericCode string) (Currency, bool) {
	c, ok := currencies[numericCode]
	return c, ok
}

// Currencies returns a copy of the full currency reference table.
func Currencies() map[string]Currency {
	out := make(map[string]Currency, len(currencies))
	for k, v := range currencies {
		out[k] = v
	}
	return out
}
