package services

import (
	"fmt"
	"sort"
	"strings"

	"listing-feed/models"
)

// PrintBatchReport formats and prints the batch report to terminal
func PrintBatchReport(report *models.BatchReport) {
	border := strings.Repeat("═", 55)
	thin := strings.Repeat("─", 55)

	fmt.Printf("\n╔%s╗\n", border)
	fmt.Printf("║%s║\n", center("CATALOG FEED CONVERSION REPORT", 55))
	fmt.Printf("╚%s╝\n", border)

	fmt.Printf("\n BATCH %s\n%s\n", report.BatchID, thin)
	fmt.Printf("  Listings Processed  : %d\n", report.TotalListings)
	fmt.Printf("  Records Skipped     : %d\n", report.SkippedListings)
	fmt.Printf("  Feed Rows Produced  : %d\n", report.TotalRows)
	fmt.Printf("    Single            : %d\n", report.SingleRows)
	fmt.Printf("    Parent            : %d\n", report.ParentRows)
	fmt.Printf("    Child             : %d\n", report.ChildRows)

	fmt.Printf("\n PRICING\n%s\n", thin)
	fmt.Printf("  Minimum Price       : ₹%d\n", report.MinPrice)
	fmt.Printf("  Maximum Price       : ₹%d\n", report.MaxPrice)
	fmt.Printf("  Average Price       : ₹%.2f\n", report.AveragePrice)

	fmt.Printf("\n IMAGES\n%s\n", thin)
	fmt.Printf("  Processed           : %d\n", report.ImagesProcessed)
	fmt.Printf("  Failed (dropped)    : %d\n", report.ImagesFailed)

	if len(report.RowsByCategory) > 0 {
		fmt.Printf("\n ROWS PER CATEGORY\n%s\n", thin)
		type catCount struct {
			cat   string
			count int
		}
		var cats []catCount
		for cat, cnt := range report.RowsByCategory {
			cats = append(cats, catCount{cat, cnt})
		}
		sort.Slice(cats, func(i, j int) bool {
			return cats[i].count > cats[j].count
		})
		for _, cc := range cats {
			bar := strings.Repeat("▓", cc.count)
			fmt.Printf("  %-15s %4d  %s\n", cc.cat+":", cc.count, bar)
		}
	}

	fmt.Printf("\n%s\n\n", border)
}

func center(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return s
	}
	pad := (width - len(runes)) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-len(runes)-pad)
}
