// =============================================================================
// KLV Inspector - Merchant Category Code Reference Table
// =============================================================================
//
// Static reference table mapping 4-digit merchant category codes (MCC) to
// their descriptions. Consulted by the MCC decorator when it annotates
// values of the merchant category code field ("018").
//
// Probe values are left-zero-padded to 4 digits before lookup.
//
// =============================================================================

package directory

// =============================================================================
// MCC TABLE
// =============================================================================

// merchantCategories maps 4-digit MCCs to their descriptions.
var merchantCategories = map[string]string{
	"0742": "Veterinary Services",
	"0780": "Landscaping and Horticultural Services",
	"1520": "General Contractors",
	"1711": "Heating, Plumbing, and Air Conditioning",
	"1731": "Electrical Contractors",
	"2741": "Miscellaneous Publishing and Printing",
	"3000": "United Airlines",
	"3351": "Affiliated Auto Rental",
	"3501": "Holiday Inns",
	"4011": "Railroads",
	"4111": "Local Commuter Transport",
	"4112": "Passenger Railways",
	"4121": "Taxicabs and Limousines",
	"4131": "Bus Lines",
	"4214": "Motor Freight Carriers",
	"4411": "Steamship and Cruise Lines",
	"4511": "Airlines and Air Carriers",
	"4722": "Travel Agencies and Tour Operators",
	"4784": "Tolls and Bridge Fees",
	"4789": "Transportation Services",
	"4812": "Telecommunication Equipment",
	"4814": "Telecommunication Services",
	"4816": "Computer Network Services",
	"4829": "Wire Transfer and Money Orders",
	"4899": "Cable and Pay Television",
	"4900": "Utilities",
	"5045": "Computers and Computer Peripheral Equipment",
	"5111": "Stationery and Office Supplies",
	"5172": "Petroleum and Petroleum Products",
	"5192": "Books, Periodicals, and Newspapers",
	"5200": "Home Supply Warehouse Stores",
	"5211": "Lumber and Building Materials",
	"5261": "Nurseries and Lawn and Garden Supply Stores",
	"5300": "Wholesale Clubs",
	"5309": "Duty Free Stores",
	"5310": "Discount Stores",
	"5311": "Department Stores",
	"5331": "Variety Stores",
	"5399": "Miscellaneous General Merchandise",
	"5411": "Grocery Stores and Supermarkets",
	"5422": "Freezer and Locker Meat Provisioners",
	"5441": "Candy, Nut, and Confectionery Stores",
	"5451": "Dairy Products Stores",
	"5462": "Bakeries",
	"5499": "Miscellaneous Food Stores",
	"5511": "Car and Truck Dealers",
	"5532": "Automotive Tire Stores",
	"5541": "Service Stations",
	"5542": "Automated Fuel Dispensers",
	"5611": "Men's Clothing and Accessories Stores",
	"5621": "Women's Ready-To-Wear Stores",
	"5651": "Family Clothing Stores",
	"5655": "Sports and Riding Apparel Stores",
	"5661": "Shoe Stores",
	"5691": "Men's and Women's Clothing Stores",
	"5712": "Furniture and Home Furnishings Stores",
	"5722": "Household Appliance Stores",
	"5732": "Electronics Stores",
	"5733": "Music Stores",
	"5734": "Computer Software Stores",
	"5735": "Record Stores",
	"5811": "Caterers",
	"5812": "Eating Places and Restaurants",
	"5813": "Drinking Places",
	"5814": "Fast Food Restaurants",
	"5912": "Drug Stores and Pharmacies",
	"5921": "Package Stores - Beer, Wine, and Liquor",
	"5941": "Sporting Goods Stores",
	"5942": "Book Stores",
	"5943": "Stationery and School Supply Stores",
	"5945": "Hobby, Toy, and Game Shops",
	"5947": "Gift, Card, Novelty, and Souvenir Shops",
	"5960": "Direct Marketing - Insurance Services",
	"5962": "Direct Marketing - Travel",
	"5964": "Direct Marketing - Catalog Merchants",
	"5967": "Direct Marketing - Inbound Telemarketing",
	"5968": "Direct Marketing - Subscription Merchants",
	"5977": "Cosmetic Stores",
	"5999": "Miscellaneous Retail Stores",
	"6010": "Financial Institutions - Manual Cash Disbursements",
	"6011": "Automated Teller Machines",
	"6012": "Financial Institutions - Merchandise and Services",
	"6051": "Non-Financial Institutions - Currency Exchange",
	"6211": "Security Brokers and Dealers",
	"6300": "Insurance Sales and Underwriting",
	"6513": "Real Estate Agents and Managers",
	"6540": "Stored Value Card Purchase and Load",
	"7011": "Hotels, Motels, and Resorts",
	"7210": "Laundry and Cleaning Services",
	"7230": "Beauty and Barber Shops",
	"7298": "Health and Beauty Spas",
	"7311": "Advertising Services",
	"7372": "Computer Programming and Data Processing",
	"7375": "Information Retrieval Services",
	"7392": "Management and Consulting Services",
	"7399": "Business Services",
	"7512": "Automobile Rental Agency",
	"7523": "Parking Lots and Garages",
	"7538": "Automotive Service Shops",
	"7542": "Car Washes",
	"7832": "Motion Picture Theaters",
	"7841": "Video Tape Rental Stores",
	"7922": "Theatrical Producers and Ticket Agencies",
	"7991": "Tourist Attractions and Exhibits",
	"7994": "Video Game Arcades",
	"7995": "Betting and Casino Gambling",
	"7996": "Amusement Parks and Carnivals",
	"7997": "Membership Clubs",
	"8011": "Doctors and Physicians",
	"8021": "Dentists and Orthodontists",
	"8042": "Optometrists and Ophthalmologists",
	"8062": "Hospitals",
	"8071": "Medical and Dental Laboratories",
	"8099": "Medical Services and Health Practitioners",
	"8211": "Elementary and Secondary Schools",
	"8220": "Colleges and Universities",
	"8299": "Educational Services",
	"8398": "Charitable and Social Service Organizations",
	"8661": "Religious Organizations",
	"8699": "Membership Organizations",
	"8911": "Architectural and Engineering Services",
	"8931": "Accounting and Auditing Services",
	"8999": "Professional Services",
	"9211": "Court Costs",
	"9222": "Fines",
	"9311": "Tax Payments",
	"9399": "Government Services",
	"9402": "Postal Services - Government Only",
}

// =============================================================================
// LOOKUP FUNCTIONS
// =============================================================================

// LookupMerchantCategory returns the description for a 4-digit MCC.
// The probe must already be padded to 4 digits; the decorator layer handles
// padding of raw field values.
func LookupMerchantCategory(code string) (string, bool) {
	desc, ok := merchantCategories[code]
	return desc, ok
}

// MerchantCategories returns a copy of the full MCC reference table.
func MerchantCategories() map[string]string {
	out := make(map[string]string, len(merchantCategories))
	for k, v := range merchantCategories {
		out[k] = v
	}
	return out
}
