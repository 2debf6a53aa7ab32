package pipeline

import (
	"strings"

	"listing-feed/config"
	"listing-feed/models"
)

// CategoryClassifier maps a listing's text to category metadata using ordered
// keyword sets. First satisfied set wins; there is no scoring.
type CategoryClassifier struct {
	cfg *config.Config
}

// NewCategoryClassifier creates a new CategoryClassifier
func NewCategoryClassifier(cfg *config.Config) *CategoryClassifier {
	return &CategoryClassifier{cfg: cfg}
}

// Classify inspects title+description and returns the matching category.
// Priority order: clothing, footwear, saree, then the luggage catch-all.
func (c *CategoryClassifier) Classify(title, description string) models.CategoryInfo {
	text := strings.ToLower(title + " " + description)

	if containsAny(text, c.cfg.ClothingKeywords) {
		return models.CategoryInfo{
			FeedType:        "kurta",
			IsVariation:     true,
			VariationTheme:  "Size",
			Sizes:           append([]string(nil), c.cfg.ClothingSizes...),
			DefaultKeywords: "Latest Fashion, Trendy Wear, Cotton Blend, Comfortable Fit, Party Wear, Casual Look, Ethnic Wear",
			DefaultMaterial: "Cotton Blend",
		}
	}

	if containsAny(text, c.cfg.FootwearKeywords) {
		return models.CategoryInfo{
			FeedType:        "shoes",
			IsVariation:     true,
			VariationTheme:  "Size",
			Sizes:           append([]string(nil), c.cfg.FootwearSizes...),
			DefaultKeywords: "Stylish Footwear, Comfortable Sole, Daily Wear, Party Wear, Trending Fashion",
			DefaultMaterial: "Synthetic",
		}
	}

	if containsAny(text, c.cfg.SareeKeywords) {
		return models.CategoryInfo{
			FeedType:        "saree",
			IsVariation:     false,
			DefaultKeywords: "Traditional Saree, Ethnic Wear, Festive Collection, Wedding Wear, Elegant Drape",
			DefaultMaterial: "Georgette",
		}
	}

	// Catch-all for anything the keyword sets miss
	return models.CategoryInfo{
		FeedType:        "luggage",
		IsVariation:     false,
		DefaultKeywords: "Best Seller, New Arrival, Premium Quality, High Rated",
		DefaultMaterial: "Polyester",
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
