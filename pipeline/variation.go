package pipeline

import (
	"listing-feed/config"
	"listing-feed/models"
)

// VariationExpander turns one listing into its destination row family: a
// single row for non-variable products, or one Parent followed by one Child
// per size. OutputRow holds no reference types, so plain struct assignment
// gives every row its own copy of the shared fields.
type VariationExpander struct {
	cfg *config.Config
	sku *SKUBuilder
}

// NewVariationExpander creates a new VariationExpander
func NewVariationExpander(cfg *config.Config, sku *SKUBuilder) *VariationExpander {
	return &VariationExpander{cfg: cfg, sku: sku}
}

// Expand emits the ordered row family for one listing. The Parent always
// immediately precedes its Children, and Children keep the size list's order.
func (e *VariationExpander) Expand(info models.CategoryInfo, baseSKU string, shared models.OutputRow, price int) []models.OutputRow {
	shared.FeedProductType = info.FeedType

	if !info.IsVariation {
		row := shared
		row.SKU = baseSKU
		row.Relationship = models.RelationshipNone
		row.Price = price
		row.Quantity = e.cfg.DefaultQuantity
		row.Size = "Free Size"
		return []models.OutputRow{row}
	}

	rows := make([]models.OutputRow, 0, len(info.Sizes)+1)

	parent := shared
	parent.SKU = e.sku.Parent(baseSKU)
	parent.Relationship = models.RelationshipParent
	parent.VariationTheme = info.VariationTheme
	rows = append(rows, parent)

	for _, size := range info.Sizes {
		child := shared
		child.SKU = e.sku.Child(baseSKU, size)
		child.ParentSKU = parent.SKU
		child.Relationship = models.RelationshipChild
		child.VariationTheme = info.VariationTheme
		child.Size = size
		child.Price = price // one price per listing, no per-size override
		child.Quantity = e.cfg.DefaultQuantity
		rows = append(rows, child)
	}

	return rows
}
