package pricing

// Static configuration for the vendor pricing and regional availability
// engine: region metadata, exchange rates, import rules, vendor directories,
// delivery-time ranges and promotional offers. Built once at startup via
// DefaultConfig and never mutated afterwards.

// Region maps a two-letter code to its display name and local currency.
type Region struct {
	Name     string
	Currency string
}

// AvailabilityRule restricts which bikes may be sold in a region. Brands is a
// lowercase allow-list; the single entry "*" admits every manufacturer.
type AvailabilityRule struct {
	Brands          []string
	MaxDisplacement int
	MinYear         int
	Reason          string
}

// Vendor is a regional seller. The engine only echoes vendor identity into
// quotes; it never persists vendors.
type Vendor struct {
	Name     string
	Verified bool
	Rating   float64
	Reviews  int
	Website  string
	Phone    string
}

// DayRange bounds the synthetic delivery estimate for a region, in days.
type DayRange struct {
	Min int
	Max int
}

// Config holds every table the engine consults. All maps are keyed by region
// code except Rates, which is keyed by currency code.
type Config struct {
	DefaultRegion string
	Regions       map[string]Region
	Rates         map[string]float64 // currency -> multiplier against USD
	Rules         map[string]AvailabilityRule
	Vendors       map[string][]Vendor
	// Aliases redirects a region to another region's vendor list only.
	// Currency and availability rules still resolve on the original code.
	Aliases  map[string]string
	Delivery map[string]DayRange
	Offers   []string
}

const (
	// defaultBasePriceUSD substitutes for a missing or non-positive base price.
	defaultBasePriceUSD = 5000
	// freeShippingUSD is the reference-currency threshold above which shipping
	// is free; it is converted with the region's rate before comparison.
	freeShippingUSD = 5000
	// recentYearCutoff splits the availability-label pools: models from this
	// year onward draw from the current-generation pool.
	recentYearCutoff = 2020
)

var defaultDelivery = DayRange{Min: 7, Max: 30}

var recentLabels = []string{"In Stock", "2-3 weeks", "Pre-order"}
var olderLabels = []string{"In Stock", "Limited Stock", "Special Order"}

// DefaultConfig returns the built-in tables. Explicit availability rules exist
// only for a handful of import-restricted markets; every other region falls
// through to a permissive default.
func DefaultConfig() Config {
	return Config{
		DefaultRegion: "US",
		Regions: map[string]Region{
			"US": {Name: "United States", Currency: "USD"},
			"CA": {Name: "Canada", Currency: "CAD"},
			"GB": {Name: "United Kingdom", Currency: "GBP"},
			"DE": {Name: "Germany", Currency: "EUR"},
			"FR": {Name: "France", Currency: "EUR"},
			"IT": {Name: "Italy", Currency: "EUR"},
			"AU": {Name: "Australia", Currency: "AUD"},
			"JP": {Name: "Japan", Currency: "JPY"},
			"IN": {Name: "India", Currency: "INR"},
			"NP": {Name: "Nepal", Currency: "NPR"},
			"BT": {Name: "Bhutan", Currency: "BTN"},
			"TH": {Name: "Thailand", Currency: "THB"},
			"ID": {Name: "Indonesia", Currency: "IDR"},
			"VN": {Name: "Vietnam", Currency: "VND"},
			"PH": {Name: "Philippines", Currency: "PHP"},
			"MY": {Name: "Malaysia", Currency: "MYR"},
			"AE": {Name: "United Arab Emirates", Currency: "AED"},
			"SA": {Name: "Saudi Arabia", Currency: "SAR"},
			"BR": {Name: "Brazil", Currency: "BRL"},
		},
		Rates: map[string]float64{
			"USD": 1.0,
			"CAD": 1.36,
			"GBP": 0.79,
			"EUR": 0.92,
			"AUD": 1.52,
			"JPY": 149.5,
			"INR": 83.2,
			"NPR": 133.1,
			"BTN": 83.2, // pegged to INR
			"THB": 35.7,
			"IDR": 15650,
			"VND": 24480,
			"PHP": 56.2,
			"MYR": 4.71,
			"AED": 3.67,
			"SAR": 3.75,
			"BRL": 5.02,
		},
		Rules: map[string]AvailabilityRule{
			"IN": {
				Brands:          []string{"honda", "yamaha", "kawasaki", "suzuki", "royal enfield", "ktm", "bajaj", "tvs", "hero", "triumph", "bmw", "ducati", "harley-davidson"},
				MaxDisplacement: 800,
				MinYear:         2005,
				Reason:          "Models over 800cc or manufactured before 2005 cannot be registered in India due to import and emissions regulations",
			},
			"NP": {
				Brands:          []string{"*"},
				MaxDisplacement: 250,
				MinYear:         2010,
				Reason:          "Motorcycles above 250cc are restricted in Nepal due to import duties and terrain safety regulations",
			},
			"TH": {
				Brands:          []string{"*"},
				MaxDisplacement: 1200,
				MinYear:         2000,
				Reason:          "Motorcycles above 1200cc require a special import permit in Thailand",
			},
			"ID": {
				Brands:          []string{"*"},
				MaxDisplacement: 500,
				MinYear:         2012,
				Reason:          "Motorcycles above 500cc or older than 2012 face prohibitive luxury import taxes in Indonesia",
			},
			"VN": {
				Brands:          []string{"*"},
				MaxDisplacement: 175,
				MinYear:         2015,
				Reason:          "Motorcycles above 175cc require an A2 license and special registration in Vietnam",
			},
			"AE": {
				Brands:          []string{"*"},
				MaxDisplacement: 100000,
				MinYear:         2015,
				Reason:          "Motorcycles older than 2015 do not meet GCC conformity requirements in the UAE",
			},
			"SA": {
				Brands:          []string{"*"},
				MaxDisplacement: 100000,
				MinYear:         2018,
				Reason:          "Motorcycles older than 2018 cannot obtain SASO import clearance in Saudi Arabia",
			},
		},
		Vendors: map[string][]Vendor{
			"US": {
				{Name: "Apex Moto Supply", Verified: true, Rating: 4.7, Reviews: 1284, Website: "https://apexmotosupply.example.com", Phone: "+1-800-555-0134"},
				{Name: "TwinCam Motors", Verified: true, Rating: 4.5, Reviews: 876, Website: "https://twincammotors.example.com", Phone: "+1-800-555-0188"},
				{Name: "Velocity Powersports", Verified: false, Rating: 4.2, Reviews: 342, Website: "https://velocityps.example.com"},
			},
			"CA": {
				{Name: "Maple Moto Exchange", Verified: true, Rating: 4.6, Reviews: 512, Website: "https://maplemoto.example.com", Phone: "+1-604-555-0190"},
				{Name: "Northern Riders Co", Verified: false, Rating: 4.1, Reviews: 203, Website: "https://northernriders.example.com"},
			},
			"GB": {
				{Name: "Thames Valley Motorcycles", Verified: true, Rating: 4.8, Reviews: 947, Website: "https://tvmoto.example.co.uk", Phone: "+44-20-5550-1122"},
				{Name: "Brighton Bike Barn", Verified: true, Rating: 4.4, Reviews: 388, Website: "https://bikebarn.example.co.uk"},
			},
			"DE": {
				{Name: "Autobahn Zweirad", Verified: true, Rating: 4.7, Reviews: 1033, Website: "https://autobahn-zweirad.example.de", Phone: "+49-89-5550-7733"},
				{Name: "Rheinland Motorrad", Verified: true, Rating: 4.5, Reviews: 621, Website: "https://rheinland-motorrad.example.de"},
			},
			"JP": {
				{Name: "Shinjuku Moto Center", Verified: true, Rating: 4.9, Reviews: 2044, Website: "https://shinjuku-moto.example.jp", Phone: "+81-3-5550-4411"},
				{Name: "Osaka Rider Works", Verified: true, Rating: 4.6, Reviews: 1187, Website: "https://osaka-riderworks.example.jp"},
				{Name: "Nagoya Bike Depot", Verified: false, Rating: 4.3, Reviews: 456, Website: "https://nagoya-bikes.example.jp"},
			},
			"IN": {
				{Name: "Wheels of India", Verified: true, Rating: 4.6, Reviews: 3210, Website: "https://wheelsofindia.example.in", Phone: "+91-11-5550-2244"},
				{Name: "Torque Motors Delhi", Verified: true, Rating: 4.4, Reviews: 1876, Website: "https://torquemotors.example.in", Phone: "+91-11-5550-8899"},
				{Name: "Madras Moto House", Verified: true, Rating: 4.5, Reviews: 1442, Website: "https://madrasmoto.example.in"},
				{Name: "Pune Superbikes", Verified: false, Rating: 4.1, Reviews: 566, Website: "https://punesuperbikes.example.in"},
			},
			"NP": {
				{Name: "Kathmandu Riders Hub", Verified: true, Rating: 4.3, Reviews: 421, Website: "https://ktmridershub.example.np", Phone: "+977-1-555-0177"},
				{Name: "Himalayan Moto Traders", Verified: false, Rating: 4.0, Reviews: 188, Website: "https://himalayanmoto.example.np"},
			},
			"TH": {
				{Name: "Bangkok Big Bikes", Verified: true, Rating: 4.5, Reviews: 734, Website: "https://bkkbigbikes.example.th", Phone: "+66-2-555-0160"},
				{Name: "Chiang Mai Moto Mart", Verified: false, Rating: 4.2, Reviews: 265, Website: "https://cmmotomart.example.th"},
			},
			"AU": {
				{Name: "Outback Moto Traders", Verified: true, Rating: 4.6, Reviews: 689, Website: "https://outbackmoto.example.au", Phone: "+61-2-5550-3300"},
				{Name: "Harbour City Cycles", Verified: true, Rating: 4.4, Reviews: 402, Website: "https://harbourcycles.example.au"},
			},
			"AE": {
				{Name: "Dubai Desert Motors", Verified: true, Rating: 4.8, Reviews: 918, Website: "https://desertmotors.example.ae", Phone: "+971-4-555-0122"},
				{Name: "Abu Dhabi Moto Souk", Verified: true, Rating: 4.5, Reviews: 547, Website: "https://motosouk.example.ae"},
			},
		},
		Aliases: map[string]string{
			// Bhutan has no configured vendors; it is served out of Nepal.
			"BT": "NP",
		},
		Delivery: map[string]DayRange{
			"US": {Min: 3, Max: 7},
			"CA": {Min: 4, Max: 10},
			"GB": {Min: 3, Max: 8},
			"DE": {Min: 2, Max: 6},
			"JP": {Min: 2, Max: 5},
			"IN": {Min: 7, Max: 21},
			"NP": {Min: 14, Max: 45},
			"BT": {Min: 21, Max: 60},
			"TH": {Min: 7, Max: 18},
			"AU": {Min: 5, Max: 14},
			"AE": {Min: 4, Max: 12},
		},
		Offers: []string{
			"Free helmet with purchase",
			"First two services free",
			"5% off on full upfront payment",
			"Free first-year insurance",
			"Extended warranty at half price",
			"Free riding gear voucher",
		},
	}
}
