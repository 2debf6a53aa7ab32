package storage

import (
	"database/sql"
	"fmt"
	"time"

	"listing-feed/models"
	"listing-feed/utils"

	_ "github.com/lib/pq"
)

// PostgresWriter archives assembled feed rows in PostgreSQL so past batches
// stay queryable after their spreadsheets are uploaded and discarded
type PostgresWriter struct {
	db     *sql.DB
	logger *utils.Logger
}

// NewPostgresWriter creates a new PostgresWriter and pings the DB
func NewPostgresWriter(connStr string, logger *utils.Logger) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Minute * 5)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	logger.Info("Connected to PostgreSQL successfully")
	return &PostgresWriter{db: db, logger: logger}, nil
}

// CreateTable creates the feed_rows table if it doesn't exist, with indexes
func (w *PostgresWriter) CreateTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS feed_rows (
		id                SERIAL PRIMARY KEY,
		batch_id          VARCHAR(64)  NOT NULL,
		item_sku          TEXT UNIQUE  NOT NULL,
		parent_sku        TEXT,
		relationship      VARCHAR(10),
		feed_product_type VARCHAR(50),
		item_name         TEXT,
		standard_price    INTEGER      DEFAULT 0,
		quantity          INTEGER      DEFAULT 0,
		size_name         VARCHAR(20),
		color_name        VARCHAR(40),
		material_type     VARCHAR(60),
		main_image_url    TEXT,
		created_at        TIMESTAMP    NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_feed_rows_batch    ON feed_rows (batch_id);
	CREATE INDEX IF NOT EXISTS idx_feed_rows_parent   ON feed_rows (parent_sku);
	CREATE INDEX IF NOT EXISTS idx_feed_rows_category ON feed_rows (feed_product_type);
	`
	_, err := w.db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	w.logger.Info("Table 'feed_rows' is ready")
	return nil
}

// BatchInsert inserts feed rows in a single transaction, skipping duplicates
func (w *PostgresWriter) BatchInsert(batchID string, rows []models.OutputRow) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.Prepare(`
		INSERT INTO feed_rows (batch_id, item_sku, parent_sku, relationship,
			feed_product_type, item_name, standard_price, quantity,
			size_name, color_name, material_type, main_image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (item_sku) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for i := range rows {
		r := &rows[i]
		_, err = stmt.Exec(
			batchID,
			r.SKU,
			r.ParentSKU,
			string(r.Relationship),
			r.FeedProductType,
			r.Title,
			r.Price,
			r.Quantity,
			r.Size,
			r.Color,
			r.Material,
			r.MainImageURL,
		)
		if err != nil {
			w.logger.Warn("Skipping insert for '%s': %v", r.SKU, err)
			continue
		}
		inserted++
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	w.logger.Info("Archived %d/%d feed rows in PostgreSQL", inserted, len(rows))
	return nil
}

// Close closes the database connection
func (w *PostgresWriter) Close() {
	if w.db != nil {
		_ = w.db.Close()
	}
}
