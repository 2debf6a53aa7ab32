package pipeline

import (
	"testing"
	"time"

	"listing-feed/models"
)

func testExpander() (*VariationExpander, *SKUBuilder) {
	cfg := testConfig()
	sku := NewSKUBuilder(cfg.SKUPrefix, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	return NewVariationExpander(cfg, sku), sku
}

func clothingInfo() models.CategoryInfo {
	return models.CategoryInfo{
		FeedType:       "kurta",
		IsVariation:    true,
		VariationTheme: "Size",
		Sizes:          []string{"S", "M", "L", "XL", "2XL"},
	}
}

func TestExpand_SingleProduct(t *testing.T) {
	e, sku := testExpander()

	info := models.CategoryInfo{FeedType: "saree", IsVariation: false}
	shared := models.OutputRow{Title: "Banarasi Saree"}

	rows := e.Expand(info, sku.Base(0), shared, 803)
	if len(rows) != 1 {
		t.Fatalf("expected exactly 1 row, got %d", len(rows))
	}
	r := rows[0]
	if r.SKU != "SWEET-20240102030405-1001" {
		t.Fatalf("unexpected SKU %q", r.SKU)
	}
	if r.ParentSKU != "" {
		t.Fatalf("single row must not carry a parent SKU, got %q", r.ParentSKU)
	}
	if r.Relationship != models.RelationshipNone {
		t.Fatalf("expected no relationship, got %q", r.Relationship)
	}
	if r.Price != 803 || r.Quantity != 50 {
		t.Fatalf("expected price 803 qty 50, got %d/%d", r.Price, r.Quantity)
	}
	if r.Size != "Free Size" {
		t.Fatalf("expected Free Size, got %q", r.Size)
	}
}

func TestExpand_ParentPlusChildren(t *testing.T) {
	e, sku := testExpander()

	shared := models.OutputRow{Title: "Cotton Kurti", Description: "soft fabric"}
	rows := e.Expand(clothingInfo(), sku.Base(2), shared, 803)

	if len(rows) != 6 {
		t.Fatalf("expected 6 rows (1 parent + 5 children), got %d", len(rows))
	}

	parent := rows[0]
	if parent.Relationship != models.RelationshipParent {
		t.Fatalf("first row must be the Parent, got %q", parent.Relationship)
	}
	if parent.SKU != "SWEET-20240102030405-1003-PARENT" {
		t.Fatalf("unexpected parent SKU %q", parent.SKU)
	}
	if parent.Price != 0 || parent.Quantity != 0 || parent.Size != "" {
		t.Fatalf("parent must carry no price/quantity/size, got %d/%d/%q",
			parent.Price, parent.Quantity, parent.Size)
	}

	sizes := []string{"S", "M", "L", "XL", "2XL"}
	for i, r := range rows[1:] {
		if r.Relationship != models.RelationshipChild {
			t.Fatalf("row %d: expected Child, got %q", i+1, r.Relationship)
		}
		if r.ParentSKU != parent.SKU {
			t.Fatalf("row %d: parent_sku %q does not match parent %q", i+1, r.ParentSKU, parent.SKU)
		}
		if r.Size != sizes[i] {
			t.Fatalf("row %d: expected size %q, got %q", i+1, sizes[i], r.Size)
		}
		if r.Price != 803 || r.Quantity != 50 {
			t.Fatalf("row %d: expected shared price/quantity, got %d/%d", i+1, r.Price, r.Quantity)
		}
		if r.Description != "soft fabric" {
			t.Fatalf("row %d: shared description not inherited", i+1)
		}
	}
}

func TestExpand_ChildSKUStripsWhitespace(t *testing.T) {
	e, sku := testExpander()

	info := models.CategoryInfo{
		FeedType:       "shoes",
		IsVariation:    true,
		VariationTheme: "Size",
		Sizes:          []string{"6 UK", "7 UK"},
	}
	rows := e.Expand(info, sku.Base(0), models.OutputRow{}, 700)
	if rows[1].SKU != "SWEET-20240102030405-1001-6UK" {
		t.Fatalf("expected whitespace-stripped child SKU, got %q", rows[1].SKU)
	}
}

func TestExpand_ChildrenAreValueCopies(t *testing.T) {
	e, sku := testExpander()

	shared := models.OutputRow{
		Bullets:        [5]string{"b1", "b2", "b3", "b4", "b5"},
		OtherImageURLs: [3]string{"u1", "u2", "u3"},
	}
	rows := e.Expand(clothingInfo(), sku.Base(0), shared, 803)

	rows[1].Bullets[0] = "mutated"
	rows[1].OtherImageURLs[0] = "mutated"

	if rows[2].Bullets[0] != "b1" || rows[0].Bullets[0] != "b1" {
		t.Fatalf("mutating one child's bullets leaked into siblings")
	}
	if rows[2].OtherImageURLs[0] != "u1" {
		t.Fatalf("mutating one child's image URLs leaked into siblings")
	}
}
