package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"listing-feed/config"
	"listing-feed/pipeline"
	"listing-feed/services"
	"listing-feed/storage"
	"listing-feed/uploader/amazon"
	"listing-feed/utils"
)

func main() {
	// ================== Bootstrap ====================
	logger := utils.NewLogger()
	cfg := config.Load()
	batchID := uuid.New().String()[:8]

	logger.Info("Marketplace Listing Feed Builder")
	logger.Info("Batch %s | brand: %s | input: %s", batchID, cfg.BrandName, cfg.InputFile)
	logger.Info("Margin: %.0f | Buffer: %.0f | Default qty: %d",
		cfg.ProfitMargin, cfg.BufferMargin, cfg.DefaultQuantity)

	// =================== Record Source ========================================
	reader := storage.NewExcelReader(cfg.InputFile, logger)
	records, err := reader.ReadRecords()
	if err != nil {
		// Batch-level failure: abort before producing any output
		logger.Error("Cannot read input batch: %v", err)
		os.Exit(1)
	}

	// =============== Ingestion ===================================
	ingestor := services.NewIngestor(logger)
	listings, skipped := ingestor.Ingest(records)
	if len(listings) == 0 {
		logger.Warn("No usable listings in %s", cfg.InputFile)
		os.Exit(0)
	}

	// ========= Transformation pipeline ===========================
	assembler := pipeline.NewRowAssembler(cfg, logger)
	rows := assembler.Run(listings)

	// ========= Feed sinks ============
	excelSink := storage.NewExcelWriter(cfg.OutputFile, logger)
	if err := excelSink.WriteRows(rows); err != nil {
		logger.Error("Failed to write feed workbook: %v", err)
		os.Exit(1)
	}

	csvSink := storage.NewCSVWriter(cfg.CSVFilePath, logger)
	if err := csvSink.WriteRows(rows); err != nil {
		logger.Error("Failed to write CSV: %v", err)
		// Non-fatal: the workbook is already on disk
	}

	// ========= PostgreSQL: archive feed rows (optional) ============
	if cfg.DatabaseURL != "" {
		pgWriter, err := storage.NewPostgresWriter(cfg.DatabaseURL, logger)
		if err != nil {
			logger.Error("Cannot connect to PostgreSQL: %v", err)
		} else {
			defer pgWriter.Close()
			if err := pgWriter.CreateTable(); err != nil {
				logger.Error("Failed to create DB table: %v", err)
			} else if err := pgWriter.BatchInsert(batchID, rows); err != nil {
				logger.Error("Failed to archive feed rows: %v", err)
			}
		}
	}

	// ==== Insights ============================
	stats := assembler.Stats()
	insightSvc := services.NewInsightService(logger)
	report := insightSvc.Generate(batchID, rows, len(listings), skipped,
		stats.ImagesProcessed, stats.ImagesFailed)
	services.PrintBatchReport(report)

	// ==== Upload automation (optional) ============================
	if cfg.UploadEnabled {
		up := amazon.NewUploader(cfg, logger)
		if err := up.Upload(rows); err != nil {
			logger.Error("Upload automation failed: %v", err)
			os.Exit(1)
		}
	}

	fmt.Println(" Done! Feed →", cfg.OutputFile)
	fmt.Println(" Push", cfg.ImageOutputDir, "to the image repo so the emitted links go live")
}
