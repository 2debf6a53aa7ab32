package pipeline

import (
	"regexp"
	"strconv"
	"strings"

	"listing-feed/config"
)

var costCleanRegex = regexp.MustCompile(`(?i)rs\.?|₹|[,\s]`)

// PriceCalculator turns a scraped cost into a selling price by adding a
// weight-tiered shipping charge and a fixed margin.
type PriceCalculator struct {
	cfg *config.Config
}

// NewPriceCalculator creates a new PriceCalculator
func NewPriceCalculator(cfg *config.Config) *PriceCalculator {
	return &PriceCalculator{cfg: cfg}
}

// Price computes the selling price for a raw cost string like "₹499" or
// "Rs. 1,299". An unparsable cost yields the configured fallback, never an
// error; the batch must keep moving.
func (p *PriceCalculator) Price(rawCost, title string) int {
	cost, ok := parseCost(rawCost)
	if !ok {
		return p.cfg.PriceFallback
	}

	shipping := p.shippingCharge(p.estimateWeight(title))

	// Truncate, never round up
	return int(cost + shipping + p.cfg.BufferMargin + p.cfg.ProfitMargin)
}

// estimateWeight guesses the shipment weight in grams from title keywords
func (p *PriceCalculator) estimateWeight(title string) int {
	lower := strings.ToLower(title)
	if containsAny(lower, p.cfg.HeavyKeywords) {
		return p.cfg.HeavyWeightG
	}
	if containsAny(lower, p.cfg.MidWeightWords) {
		return p.cfg.MidWeightG
	}
	return p.cfg.DefaultWeightG
}

func (p *PriceCalculator) shippingCharge(weightG int) float64 {
	switch {
	case weightG <= p.cfg.ShippingLightG:
		return p.cfg.ShippingLight
	case weightG <= p.cfg.ShippingMidG:
		return p.cfg.ShippingMid
	default:
		return p.cfg.ShippingHeavy
	}
}

// parseCost strips currency markers and separators, then parses the remainder
func parseCost(raw string) (float64, bool) {
	cleaned := costCleanRegex.ReplaceAllString(raw, "")
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
