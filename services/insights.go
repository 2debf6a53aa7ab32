package services

import (
	"listing-feed/models"
	"listing-feed/utils"
)

// InsightService computes batch analytics from the assembled feed rows
type InsightService struct {
	logger *utils.Logger
}

// NewInsightService creates a new InsightService
func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// Generate summarizes one converted batch. Price stats are taken over priced
// rows only; Parent rows carry no price by design.
func (s *InsightService) Generate(batchID string, rows []models.OutputRow, listings, skipped, imagesProcessed, imagesFailed int) *models.BatchReport {
	report := &models.BatchReport{
		BatchID:         batchID,
		TotalListings:   listings,
		SkippedListings: skipped,
		TotalRows:       len(rows),
		RowsByCategory:  make(map[string]int),
		ImagesProcessed: imagesProcessed,
		ImagesFailed:    imagesFailed,
	}

	if len(rows) == 0 {
		s.logger.Warn("No rows to generate insights from")
		return report
	}

	var total, priced int
	for i := range rows {
		r := &rows[i]
		switch r.Relationship {
		case models.RelationshipParent:
			report.ParentRows++
		case models.RelationshipChild:
			report.ChildRows++
		default:
			report.SingleRows++
		}

		report.RowsByCategory[r.FeedProductType]++

		if r.Relationship == models.RelationshipParent {
			continue
		}
		priced++
		total += r.Price
		if report.MinPrice == 0 || r.Price < report.MinPrice {
			report.MinPrice = r.Price
		}
		if r.Price > report.MaxPrice {
			report.MaxPrice = r.Price
		}
	}

	if priced > 0 {
		report.AveragePrice = float64(total) / float64(priced)
	}

	return report
}
