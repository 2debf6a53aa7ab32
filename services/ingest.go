package services

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"listing-feed/models"
	"listing-feed/utils"
)

// Field aliases seen across source exports; first present key wins
var (
	titleKeys       = []string{"Title", "item_name", "Product Name", "Name"}
	descriptionKeys = []string{"Description", "product_description", "item_description"}
	priceKeys       = []string{"Price", "cost_price", "standard_price", "Cost"}
	imageKeys       = [4][]string{
		{"Image 1", "Image1", "main_image_url"},
		{"Image 2", "Image2", "other_image_url1"},
		{"Image 3", "Image3", "other_image_url2"},
		{"Image 4", "Image4", "other_image_url3"},
	}
)

// Ingestor normalizes raw source records into RawListings, resolving every
// optional field to its declared default once, up front
type Ingestor struct {
	logger  *utils.Logger
	tracker *utils.DupeTracker
}

// NewIngestor creates a new Ingestor
func NewIngestor(logger *utils.Logger) *Ingestor {
	return &Ingestor{logger: logger, tracker: utils.NewDupeTracker()}
}

// Ingest converts source records in order. Records with neither title nor
// description are skipped and logged; exact duplicates are dropped. Returns
// the listings and the skip count.
func (g *Ingestor) Ingest(records []map[string]string) ([]models.RawListing, int) {
	var listings []models.RawListing
	skipped := 0

	for _, rec := range records {
		title := strings.TrimSpace(pick(rec, titleKeys))
		desc := stripMarkup(strings.TrimSpace(pick(rec, descriptionKeys)))

		if title == "" && desc == "" {
			skipped++
			g.logger.Warn("Skipping record %d: no title or description", len(listings)+skipped)
			continue
		}

		key := title + "|" + desc
		if !g.tracker.Add(key) {
			skipped++
			g.logger.Debug("Skipping duplicate record: %s", title)
			continue
		}

		if title == "" {
			title = "Product"
		}

		listing := models.RawListing{
			Index:       len(listings),
			Title:       title,
			Description: desc,
			RawPrice:    strings.TrimSpace(pick(rec, priceKeys)),
		}
		for i, keys := range imageKeys {
			listing.ImageURLs[i] = strings.TrimSpace(pick(rec, keys))
		}

		listings = append(listings, listing)
	}

	g.logger.Info("Ingested %d listings from %d records (%d skipped)",
		len(listings), len(records), skipped)
	return listings, skipped
}

func pick(rec map[string]string, keys []string) string {
	for _, k := range keys {
		if v, ok := rec[k]; ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// stripMarkup flattens scraped HTML descriptions to plain text
func stripMarkup(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.TrimSpace(doc.Text())
}
