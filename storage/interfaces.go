package storage

import "listing-feed/models"

// RecordSource supplies the ordered raw records exported from the source platform
type RecordSource interface {
	ReadRecords() ([]map[string]string, error)
}

// FeedSink persists assembled feed rows in the destination column layout
type FeedSink interface {
	WriteRows(rows []models.OutputRow) error
}
