package pipeline

import (
	"fmt"
	"strings"
	"time"

	"listing-feed/config"
	"listing-feed/models"
	"listing-feed/utils"
)

// Stats counts per-batch image outcomes across assembled listings
type Stats struct {
	ImagesProcessed int
	ImagesFailed    int
}

// RowAssembler orchestrates the full per-record transform: classify, extract
// attributes, compute price, normalize images, expand into row families.
// Records are independent; output order follows input order.
type RowAssembler struct {
	cfg        *config.Config
	logger     *utils.Logger
	classifier *CategoryClassifier
	extractor  *AttributeExtractor
	pricer     *PriceCalculator
	imager     *ImageNormalizer
	expander   *VariationExpander
	sku        *SKUBuilder

	stats Stats
}

// NewRowAssembler wires up the pipeline for one batch run starting now
func NewRowAssembler(cfg *config.Config, logger *utils.Logger) *RowAssembler {
	return NewRowAssemblerAt(cfg, logger, time.Now())
}

// NewRowAssemblerAt wires up the pipeline with an explicit batch start time,
// which seeds the SKU stamp shared by every row of the run
func NewRowAssemblerAt(cfg *config.Config, logger *utils.Logger, start time.Time) *RowAssembler {
	sku := NewSKUBuilder(cfg.SKUPrefix, start)
	return &RowAssembler{
		cfg:        cfg,
		logger:     logger,
		classifier: NewCategoryClassifier(cfg),
		extractor:  NewAttributeExtractor(cfg),
		pricer:     NewPriceCalculator(cfg),
		imager:     NewImageNormalizer(cfg, logger),
		expander:   NewVariationExpander(cfg, sku),
		sku:        sku,
	}
}

// Run assembles every listing in batch order
func (a *RowAssembler) Run(listings []models.RawListing) []models.OutputRow {
	var rows []models.OutputRow
	for _, l := range listings {
		assembled := a.Assemble(l)
		rows = append(rows, assembled...)
		a.logger.Info("Record %d: %s -> %d row(s)", l.Index+1, a.sku.Base(l.Index), len(assembled))
	}
	return rows
}

// Assemble converts one listing into its ordered output rows
func (a *RowAssembler) Assemble(listing models.RawListing) []models.OutputRow {
	info := a.classifier.Classify(listing.Title, listing.Description)
	attrs := a.extractor.Extract(listing.Description, info.DefaultMaterial)
	price := a.pricer.Price(listing.RawPrice, listing.Title)
	base := a.sku.Base(listing.Index)

	shared := models.OutputRow{
		Title:           a.seoTitle(listing.Title),
		Description:     a.description(listing),
		Bullets:         a.bullets(listing.Title, attrs.Material),
		Keywords:        info.DefaultKeywords,
		Color:           attrs.Color,
		Material:        attrs.Material,
		Brand:           a.cfg.BrandName,
		Department:      a.cfg.DepartmentName,
		CountryOfOrigin: a.cfg.CountryOfOrigin,
		Manufacturer:    a.cfg.Manufacturer,
	}

	// Up to 4 slots, each failing independently. A dead slot leaves its
	// column empty; it never shifts the others or sinks the listing.
	for i, url := range listing.ImageURLs {
		if strings.TrimSpace(url) == "" {
			continue
		}
		slot := i + 1
		img, err := a.imager.Process(url, base, slot)
		if err != nil {
			a.stats.ImagesFailed++
			a.logger.Warn("Record %d image slot %d dropped: %v", listing.Index+1, slot, err)
			continue
		}
		a.stats.ImagesProcessed++
		if slot == 1 {
			shared.MainImageURL = img.PublicURL
		} else {
			shared.OtherImageURLs[slot-2] = img.PublicURL
		}
	}

	return a.expander.Expand(info, base, shared, price)
}

// Stats reports image counters accumulated so far
func (a *RowAssembler) Stats() Stats {
	return a.stats
}

// seoTitle prefixes the brand unless the scraped title already carries it
func (a *RowAssembler) seoTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "Product"
	}
	if strings.Contains(strings.ToLower(title), strings.ToLower(a.cfg.BrandName)) {
		return title
	}
	return fmt.Sprintf("%s Premium %s", a.cfg.BrandName, title)
}

func (a *RowAssembler) description(listing models.RawListing) string {
	if desc := strings.TrimSpace(listing.Description); desc != "" {
		return desc
	}
	return fmt.Sprintf(
		"Upgrade your wardrobe with this stylish %s from %s. It ensures comfort and style, perfect for daily use or special occasions.",
		strings.TrimSpace(firstNonEmpty(listing.Title, "product")), a.cfg.BrandName)
}

func (a *RowAssembler) bullets(title, material string) [5]string {
	clean := strings.TrimSpace(firstNonEmpty(title, "product"))
	return [5]string{
		fmt.Sprintf("MATERIAL: Premium quality %s that is breathable and comfortable for all-day wear.", material),
		fmt.Sprintf("DESIGN: Stylish %s featuring a modern design suitable for casual and festive occasions.", clean),
		"FIT TYPE: Regular fit designed to provide a comfortable range of motion.",
		"CARE INSTRUCTIONS: Machine wash or hand wash with mild detergent; dry in shade.",
		fmt.Sprintf("MADE IN INDIA: Proudly manufactured in India by %s.", a.cfg.Manufacturer),
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
