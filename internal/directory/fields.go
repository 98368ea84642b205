// =============================================================================
// KLV Inspector - Field Directory
// =============================================================================
//
// This module holds the static directory of KLV field keys. Every key in the
// tagged-field encoding is a fixed-width 3-digit numeric string; the directory
// maps each registered key to its human-readable field name.
//
// DIRECTORY RULES:
//   - Lookups are exact-match over the 3-character key.
//   - Unregistered keys resolve to the literal fallback "Unknown".
//   - Key "999" ("Generic Key") is a real, pre-registered catch-all entry,
//     not the fallback: it resolves via the table like any other key.
//   - The table is built once at package initialization and never mutated.
//
// RESERVED KEYS:
//   - "049": Transaction Currency Code (triggers the currency decorator)
//   - "018": Merchant Category Code (triggers the MCC decorator)
//
// =============================================================================

package directory

// Reserved field keys that carry decorator semantics.
const (
	// CurrencyFieldKey is the key of the transaction currency code field.
	CurrencyFieldKey = "049"

	// MerchantCategoryFieldKey is the key of the merchant category code field.
	MerchantCategoryFieldKey = "018"
)

// UnknownFieldName is returned for keys that have no directory entry.
const UnknownFieldName = "Unknown"

// =============================================================================
// FIELD NAME TABLE
// =============================================================================

// fieldNames maps each registered 3-digit key to its field name.
var fieldNames = map[string]string{
	"001": "Message Type Indicator",
	"002": "Tracking Number",
	"003": "Processing Code",
	"004": "Transaction Amount",
	"005": "Settlement Amount",
	"006": "Billing Amount",
	"007": "Transmission Date and Time",
	"008": "Billing Fee Amount",
	"009": "Settlement Conversion Rate",
	"010": "Billing Conversion Rate",
	"011": "System Trace Audit Number",
	"012": "Local Transaction Time",
	"013": "Local Transaction Date",
	"014": "Expiration Date",
	"015": "Settlement Date",
	"016": "Conversion Date",
	"017": "Capture Date",
	"018": "Merchant Category Code",
	"019": "Acquirer Country Code",
	"020": "Issuer Country Code",
	"021": "Forwarding Institution Country Code",
	"022": "Point of Service Entry Mode",
	"023": "Card Sequence Number",
	"024": "Network Identifier",
	"025": "Point of Service Condition Code",
	"026": "Point of Service Capture Code",
	"027": "Authorization Response Length",
	"028": "Transaction Fee Amount",
	"029": "Settlement Fee Amount",
	"030": "Processing Fee Amount",
	"031": "Acquirer Reference Number",
	"032": "Acquiring Institution Code",
	"033": "Forwarding Institution Code",
	"034": "Extended Account Number",
	"035": "Payment Token",
	"036": "Authentication Data",
	"037": "Retrieval Reference Number",
	"038": "Authorization Code",
	"039": "Response Code",
	"040": "Service Restriction Code",
	"041": "Terminal Identifier",
	"042": "Merchant Identifier",
	"043": "Merchant Name and Location",
	"044": "Additional Response Data",
	"045": "Cardholder Name",
	"046": "Additional Data",
	"047": "National Data",
	"048": "Private Data",
	"049": "Transaction Currency Code",
	"050": "Settlement Currency Code",
	"051": "Billing Currency Code",
	"052": "Security Control Data",
	"053": "Security Related Information",
	"054": "Additional Amounts",
	"055": "Chip Data",
	"056": "Original Data Elements",
	"057": "Authorization Lifecycle Code",
	"058": "Authorizing Agent Code",
	"059": "Transport Data",
	"060": "Reserved National Use",
	"061": "Reserved Private Use",
	"062": "Customer Reference",
	"063": "Network Data",
	"064": "Message Authentication Field",
	"065": "Batch Number",
	"066": "Settlement Code",
	"067": "Extended Payment Code",
	"068": "Receiving Institution Country Code",
	"069": "Settlement Institution Country Code",
	"070": "Network Management Code",
	"071": "Message Number",
	"072": "Data Record",
	"073": "Action Date",
	"074": "Credit Count",
	"075": "Credit Reversal Count",
	"076": "Debit Count",
	"077": "Debit Reversal Count",
	"078": "Transfer Count",
	"079": "Transfer Reversal Count",
	"080": "Inquiry Count",
	"081": "Authorization Count",
	"082": "Credit Processing Fee",
	"083": "Credit Transaction Fee",
	"084": "Debit Processing Fee",
	"085": "Debit Transaction Fee",
	"086": "Total Credit Amount",
	"087": "Total Credit Reversal Amount",
	"088": "Total Debit Amount",
	"089": "Total Debit Reversal Amount",
	"090": "Original Transaction Data",
	"091": "File Update Code",
	"092": "File Security Code",
	"093": "Response Indicator",
	"094": "Service Indicator",
	"095": "Replacement Amounts",
	"096": "Message Security Code",
	"097": "Net Settlement Amount",
	"098": "Payee",
	"099": "Settlement Institution Code",
	"100": "Receiving Institution Code",
	"101": "File Name",
	"102": "Source Account Identifier",
	"103": "Destination Account Identifier",
	"104": "Transaction Description",
	"105": "Invoice Number",
	"106": "Purchase Order Number",
	"107": "Loyalty Program Identifier",
	"108": "Loyalty Points Earned",
	"109": "Loyalty Points Redeemed",
	"110": "Installment Count",
	"111": "Installment Sequence",
	"112": "Tax Amount",
	"113": "Tip Amount",
	"114": "Cashback Amount",
	"115": "Surcharge Amount",
	"116": "Discount Amount",
	"117": "Original Currency Amount",
	"118": "Exchange Rate Applied",
	"119": "Dynamic Currency Conversion Flag",
	"120": "Receipt Reference",
	"200": "Payment Channel",
	"201": "Wallet Provider",
	"202": "Wallet Token Reference",
	"203": "QR Payload Version",
	"204": "QR Initiation Method",
	"205": "Merchant City",
	"206": "Merchant Postal Code",
	"207": "Merchant Country",
	"208": "Terminal Location Code",
	"300": "Dispute Reference",
	"301": "Chargeback Reason Code",
	"302": "Representment Reference",
	"303": "Arbitration Flag",
	"400": "Risk Score",
	"401": "Fraud Indicator",
	"402": "Velocity Counter",
	"403": "Device Fingerprint",
	"500": "Clearing File Identifier",
	"501": "Clearing Cycle",
	"502": "Interchange Fee Descriptor",
	"503": "Settlement Service Indicator",
	"900": "Test Field Alpha",
	"901": "Test Field Beta",
	"998": "Reserved Future Use",
	"999": "Generic Key",
}

// =============================================================================
// LOOKUP FUNCTIONS
// =============================================================================

// LookupFieldName returns the registered field name for a 3-digit key.
// Keys without a directory entry resolve to UnknownFieldName. The function
// is total: any string input yields a result, never an error.
func LookupFieldName(key string) string {
	if name, ok := fieldNames[key]; ok {
		return name
	}
	return UnknownFieldName
}

// HasField reports whether a key has a registered directory entry.
func HasField(key string) bool {
	_, ok := fieldNames[key]
	return ok
}

// FieldNames returns a copy of the full field directory.
// The copy protects the package-level table from mutation by callers
// (useful for populating selection lists or dumping the directory).
func FieldNames() map[string]string {
	out := make(map[string]string, len(fieldNames))
	for k, v := range fieldNames {
		out[k] = v
	}
	return out
}

// FieldCount returns the number of registered directory entries.
func FieldCount() int {
	return len(fieldNames)
}
