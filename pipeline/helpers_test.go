package pipeline

import (
	"listing-feed/config"
)

// testConfig mirrors the shipped defaults without touching the environment
func testConfig() *config.Config {
	return &config.Config{
		BrandName:       "Sweet India",
		Manufacturer:    "Sweet India Pvt Ltd",
		CountryOfOrigin: "India",
		DepartmentName:  "Women",

		ProfitMargin:   200,
		BufferMargin:   30,
		PriceFallback:  999,
		DefaultWeightG: 450,
		HeavyWeightG:   900,
		MidWeightG:     650,
		ShippingLightG: 500,
		ShippingMidG:   1000,
		ShippingLight:  74,
		ShippingMid:    111,
		ShippingHeavy:  153,

		ClothingKeywords: []string{"kurti", "kurta", "dress", "top", "tunic", "shirt", "gown", "lehenga"},
		FootwearKeywords: []string{"shoe", "sandal", "boot", "slipper", "flat", "heel", "jutti"},
		SareeKeywords:    []string{"saree"},
		HeavyKeywords:    []string{"lehenga", "jacket", "coat", "heavy"},
		MidWeightWords:   []string{"gown", "anarkali", "shoe", "sandal", "boot", "slipper", "flat", "heel", "jutti"},
		Materials:        []string{"rayon", "cotton", "silk", "georgette", "crepe", "leather", "canvas", "polyester"},
		Colors:           []string{"red", "blue", "black", "white", "pink", "yellow", "green"},
		ClothingSizes:    []string{"S", "M", "L", "XL", "2XL"},
		FootwearSizes:    []string{"6 UK", "7 UK", "8 UK", "9 UK"},

		DefaultQuantity: 50,

		ImageMinEdge:     1200,
		BlurBandHeight:   60,
		BlurRadius:       15,
		SharpnessFactor:  1.4,
		ContrastFactor:   1.2,
		SaturationFactor: 1.1,
		JPEGQuality:      95,
		FetchTimeoutSec:  5,

		GitHubOwner:  "mademoneyai-hub",
		GitHubRepo:   "sweet-india-products",
		GitHubBranch: "main",

		SKUPrefix: "SWEET",
	}
}
