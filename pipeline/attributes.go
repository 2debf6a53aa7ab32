package pipeline

import (
	"strings"

	"listing-feed/config"
	"listing-feed/models"
)

// AttributeExtractor pulls material and color hints out of free text with
// ordered substring checks. It is a cheap lexical pass, not NLP; a miss falls
// through to the category default rather than erroring.
type AttributeExtractor struct {
	cfg *config.Config
}

// NewAttributeExtractor creates a new AttributeExtractor
func NewAttributeExtractor(cfg *config.Config) *AttributeExtractor {
	return &AttributeExtractor{cfg: cfg}
}

// Extract scans text for the first material and color keyword hit
func (e *AttributeExtractor) Extract(text, defaultMaterial string) models.Attributes {
	lower := strings.ToLower(text)

	attrs := models.Attributes{
		Material: defaultMaterial,
		Color:    "Multicolor",
	}

	for _, m := range e.cfg.Materials {
		if strings.Contains(lower, strings.ToLower(m)) {
			attrs.Material = titleCase(m)
			break
		}
	}

	for _, c := range e.cfg.Colors {
		if strings.Contains(lower, strings.ToLower(c)) {
			attrs.Color = titleCase(c)
			break
		}
	}

	return attrs
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
