package pricing

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
)

// Rand is the source of randomness for price jitter, labels, delivery
// estimates and offers. *rand.Rand satisfies it; tests inject a seeded one.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// lockedRand delegates to the package-level math/rand generator, which is
// safe for concurrent use. An injected *rand.Rand is not; callers sharing one
// across goroutines must synchronize it themselves.
type lockedRand struct{}

func (lockedRand) Float64() float64 { return rand.Float64() }
func (lockedRand) Intn(n int) int   { return rand.Intn(n) }

// Bike is the engine's read-only view of a catalog item.
type Bike struct {
	Make         string
	Displacement int
	Year         int
	BasePriceUSD float64
	Status       string
}

// Quote is one vendor's offer for a bike in a region. Sentinel quotes carry
// either Discontinued or NotAvailableInRegion with a Reason and zero prices.
type Quote struct {
	Vendor               string  `json:"vendor"`
	Verified             bool    `json:"verified"`
	VendorRating         float64 `json:"vendor_rating"`
	VendorReviews        int     `json:"vendor_reviews"`
	Website              string  `json:"website,omitempty"`
	Phone                string  `json:"phone,omitempty"`
	PriceLocal           float64 `json:"price_local"`
	PriceUSD             float64 `json:"price_usd"`
	Currency             string  `json:"currency"`
	Availability         string  `json:"availability"`
	Offer                string  `json:"offer,omitempty"`
	Shipping             string  `json:"shipping,omitempty"`
	EstimatedDelivery    string  `json:"estimated_delivery,omitempty"`
	Discontinued         bool    `json:"discontinued,omitempty"`
	NotAvailableInRegion bool    `json:"not_available_in_region,omitempty"`
	Reason               string  `json:"reason,omitempty"`
}

// Engine computes regional vendor quotes. It is stateless apart from its
// immutable config and may be called from any number of goroutines.
type Engine struct {
	cfg Config
	rnd Rand
}

// New builds an engine over cfg. A nil rnd selects the process-wide locked
// generator.
func New(cfg Config, rnd Rand) *Engine {
	if rnd == nil {
		rnd = lockedRand{}
	}
	return &Engine{cfg: cfg, rnd: rnd}
}

// discontinuedStatuses are matched case-insensitively against the bike status.
var discontinuedStatuses = map[string]bool{
	"discontinued":      true,
	"unavailable":       true,
	"out of production": true,
}

// Quote returns vendor quotes for the bike in the given region, sorted
// ascending by local price. Unknown regions degrade to USD rates and the
// default region's vendors rather than failing.
func (e *Engine) Quote(b Bike, regionCode string) []Quote {
	if discontinuedStatuses[strings.ToLower(strings.TrimSpace(b.Status))] {
		return []Quote{{
			Availability: "Discontinued",
			Discontinued: true,
			Reason:       "This model is no longer in production",
		}}
	}

	rule := e.ruleFor(regionCode)
	if reason := rejectReason(rule, b); reason != "" {
		return []Quote{{
			Availability:         "Not available in this region",
			NotAvailableInRegion: true,
			Reason:               reason,
		}}
	}

	currency := "USD"
	if region, ok := e.cfg.Regions[regionCode]; ok {
		currency = region.Currency
	}
	rate, ok := e.cfg.Rates[currency]
	if !ok {
		rate = 1.0
	}

	base := b.BasePriceUSD
	if base <= 0 {
		base = defaultBasePriceUSD
	}

	vendors := e.vendorsFor(regionCode)
	delivery, ok := e.cfg.Delivery[regionCode]
	if !ok {
		delivery = defaultDelivery
	}

	labels := olderLabels
	if b.Year >= recentYearCutoff {
		labels = recentLabels
	}

	quotes := make([]Quote, 0, len(vendors))
	for _, v := range vendors {
		// Uniform jitter in +/-10% of the reference price, sampled per vendor.
		jittered := base * (0.9 + e.rnd.Float64()*0.2)
		local := round2(jittered * rate)

		shipping := "Paid"
		if local > freeShippingUSD*rate {
			shipping = "Free"
		}

		days := delivery.Min + e.rnd.Intn(delivery.Max-delivery.Min+1)

		q := Quote{
			Vendor:            v.Name,
			Verified:          v.Verified,
			VendorRating:      v.Rating,
			VendorReviews:     v.Reviews,
			Website:           v.Website,
			Phone:             v.Phone,
			PriceLocal:        local,
			PriceUSD:          round2(jittered),
			Currency:          currency,
			Availability:      labels[e.rnd.Intn(len(labels))],
			Shipping:          shipping,
			EstimatedDelivery: fmt.Sprintf("%d days", days),
		}
		if e.rnd.Float64() < 0.30 {
			q.Offer = e.cfg.Offers[e.rnd.Intn(len(e.cfg.Offers))]
		}
		quotes = append(quotes, q)
	}

	sort.Slice(quotes, func(i, j int) bool { return quotes[i].PriceLocal < quotes[j].PriceLocal })
	return quotes
}

// Regions exposes the configured region table for read-only use by the API
// layer (e.g. the /api/regions endpoint).
func (e *Engine) Regions() map[string]Region {
	return e.cfg.Regions
}

func (e *Engine) ruleFor(regionCode string) AvailabilityRule {
	if rule, ok := e.cfg.Rules[regionCode]; ok {
		return rule
	}
	return AvailabilityRule{Brands: []string{"*"}, MaxDisplacement: math.MaxInt32, MinYear: 0}
}

// vendorsFor resolves the vendor list, honoring region aliases and falling
// back to the default region when nothing is configured.
func (e *Engine) vendorsFor(regionCode string) []Vendor {
	code := regionCode
	if target, ok := e.cfg.Aliases[code]; ok {
		code = target
	}
	if vendors := e.cfg.Vendors[code]; len(vendors) > 0 {
		return vendors
	}
	return e.cfg.Vendors[e.cfg.DefaultRegion]
}

// rejectReason evaluates the rule checks in order (brand, displacement, year)
// and returns the first failure's reason, or "" when the bike is admitted.
func rejectReason(rule AvailabilityRule, b Bike) string {
	if !brandAllowed(rule.Brands, b.Make) {
		return reasonOr(rule, fmt.Sprintf("%s motorcycles are not sold in this region", b.Make))
	}
	if b.Displacement > rule.MaxDisplacement {
		return reasonOr(rule, fmt.Sprintf("Motorcycles above %dcc are restricted in this region", rule.MaxDisplacement))
	}
	if b.Year < rule.MinYear {
		return reasonOr(rule, fmt.Sprintf("Models older than %d cannot be imported into this region", rule.MinYear))
	}
	return ""
}

func reasonOr(rule AvailabilityRule, fallback string) string {
	if rule.Reason != "" {
		return rule.Reason
	}
	return fallback
}

func brandAllowed(brands []string, brand string) bool {
	needle := strings.ToLower(strings.TrimSpace(brand))
	for _, b := range brands {
		if b == "*" || b == needle {
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
