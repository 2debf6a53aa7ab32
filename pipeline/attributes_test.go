package pipeline

import "testing"

func TestExtract_MaterialAndColorHit(t *testing.T) {
	e := NewAttributeExtractor(testConfig())

	attrs := e.Extract("Soft cotton fabric in a deep blue shade", "Cotton Blend")
	if attrs.Material != "Cotton" {
		t.Fatalf("expected material Cotton, got %q", attrs.Material)
	}
	if attrs.Color != "Blue" {
		t.Fatalf("expected color Blue, got %q", attrs.Color)
	}
}

func TestExtract_VocabularyOrderWins(t *testing.T) {
	e := NewAttributeExtractor(testConfig())

	// Both silk and cotton appear; cotton comes first in the vocabulary
	attrs := e.Extract("silk border on a cotton base", "Cotton Blend")
	if attrs.Material != "Cotton" {
		t.Fatalf("expected first vocabulary hit Cotton, got %q", attrs.Material)
	}

	// Red precedes green in the palette
	attrs = e.Extract("green leaves on red base", "Cotton Blend")
	if attrs.Color != "Red" {
		t.Fatalf("expected first palette hit Red, got %q", attrs.Color)
	}
}

func TestExtract_FallsBackToDefaults(t *testing.T) {
	e := NewAttributeExtractor(testConfig())

	attrs := e.Extract("beautiful festive wear", "Georgette")
	if attrs.Material != "Georgette" {
		t.Fatalf("expected default material Georgette, got %q", attrs.Material)
	}
	if attrs.Color != "Multicolor" {
		t.Fatalf("expected default color Multicolor, got %q", attrs.Color)
	}
}

func TestExtract_CaseInsensitive(t *testing.T) {
	e := NewAttributeExtractor(testConfig())

	attrs := e.Extract("PURE RAYON, BLACK PRINT", "Cotton Blend")
	if attrs.Material != "Rayon" {
		t.Fatalf("expected Rayon, got %q", attrs.Material)
	}
	if attrs.Color != "Black" {
		t.Fatalf("expected Black, got %q", attrs.Color)
	}
}
