package amazon

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"

	"listing-feed/config"
	"listing-feed/models"
	"listing-feed/utils"
)

// Uploader drives Seller Central's add-a-product page one row at a time.
// This is a convenience for small batches; the bulk spreadsheet remains the
// primary upload path.
type Uploader struct {
	cfg         *config.Config
	logger      *utils.Logger
	rateLimiter *utils.RateLimiter
}

// NewUploader creates a new Uploader
func NewUploader(cfg *config.Config, logger *utils.Logger) *Uploader {
	return &Uploader{
		cfg:         cfg,
		logger:      logger,
		rateLimiter: utils.NewRateLimiter(cfg.RateLimitDelay),
	}
}

// newContext creates a chromedp context with a persistent profile so the
// seller login survives across runs. Headful: the operator may need to clear
// a captcha or OTP by hand.
func (u *Uploader) newContext() (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", false),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.UserDataDir(filepath.Join(os.TempDir(), "listing-feed-profile")),
		chromedp.WindowSize(1280, 900),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	ctx, cancelCtx := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	cancel := func() {
		cancelCtx()
		cancelAlloc()
	}
	return ctx, cancel
}

// Upload submits each priced row. Parent rows carry no price or image of
// their own on this form and are skipped.
func (u *Uploader) Upload(rows []models.OutputRow) error {
	u.logger.Info("Starting Seller Central upload for %d rows...", len(rows))

	ctx, cancel := u.newContext()
	defer cancel()

	ctx, cancelTimeout := context.WithTimeout(ctx, 60*time.Minute)
	defer cancelTimeout()

	if err := u.login(ctx); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	uploaded := 0
	for i := range rows {
		r := &rows[i]
		if r.Relationship == models.RelationshipParent {
			continue
		}
		if r.MainImageURL == "" {
			u.logger.Warn("Row '%s' has no main image, skipping upload", r.SKU)
			continue
		}

		u.rateLimiter.Wait()
		err := utils.RetryWithBackoff(u.cfg.MaxRetries, func() error {
			return u.submitRow(ctx, r)
		}, u.logger)
		if err != nil {
			u.logger.Error("Row '%s' failed: %v", r.SKU, err)
			u.screenshot(ctx, r.SKU)
			continue
		}
		uploaded++
		u.logger.Info("Uploaded %s (%d/%d)", r.SKU, uploaded, len(rows))
	}

	u.logger.Info("Upload complete: %d rows submitted", uploaded)
	return nil
}

// login opens the listing page and fills the sign-in form if it appears,
// then waits for the operator to confirm the catalog page is up
func (u *Uploader) login(ctx context.Context) error {
	err := chromedp.Run(ctx,
		chromedp.Navigate(u.cfg.SellerURL),
		chromedp.Sleep(3*time.Second),
	)
	if err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}

	var onSignIn bool
	_ = chromedp.Run(ctx, chromedp.Evaluate(
		`document.querySelector('#ap_email') !== null`, &onSignIn))

	if onSignIn && u.cfg.SellerEmail != "" {
		u.logger.Info("Sign-in form detected, filling credentials...")
		_ = chromedp.Run(ctx,
			chromedp.SendKeys(`#ap_email`, u.cfg.SellerEmail, chromedp.ByQuery),
			chromedp.Click(`#continue`, chromedp.ByQuery),
			chromedp.Sleep(time.Second),
			chromedp.SendKeys(`#ap_password`, u.cfg.SellerPassword, chromedp.ByQuery),
			chromedp.Click(`#signInSubmit`, chromedp.ByQuery),
		)
	}

	fmt.Println("\nComplete any OTP/captcha in the browser, then press ENTER to continue...")
	reader := bufio.NewReader(os.Stdin)
	_, _ = reader.ReadString('\n')
	return nil
}

// submitRow uploads the row's processed main image and description on the
// add-a-product page
func (u *Uploader) submitRow(ctx context.Context, row *models.OutputRow) error {
	imagePath, err := filepath.Abs(filepath.Join(u.cfg.ImageOutputDir, path.Base(row.MainImageURL)))
	if err != nil {
		return fmt.Errorf("image path: %w", err)
	}
	if _, err := os.Stat(imagePath); err != nil {
		return fmt.Errorf("processed image missing: %w", err)
	}

	err = chromedp.Run(ctx,
		chromedp.Navigate(u.cfg.SellerURL),
		chromedp.Sleep(4*time.Second),
	)
	if err != nil {
		return fmt.Errorf("navigate failed: %w", err)
	}

	// The "Product image" card must be active before the file input exists
	_ = chromedp.Run(ctx, chromedp.Evaluate(`
		(function() {
			var nodes = document.querySelectorAll('span, div');
			for (var i = 0; i < nodes.length; i++) {
				if (nodes[i].innerText && nodes[i].innerText.trim() === 'Product image') {
					nodes[i].click();
					return true;
				}
			}
			return false;
		})()
	`, nil))

	err = chromedp.Run(ctx,
		chromedp.WaitReady(`input[type="file"]`, chromedp.ByQuery),
		chromedp.SetUploadFiles(`input[type="file"]`, []string{imagePath}, chromedp.ByQuery),
		chromedp.Sleep(8*time.Second), // give the upload time to finish
	)
	if err != nil {
		return fmt.Errorf("image upload failed: %w", err)
	}

	err = chromedp.Run(ctx,
		chromedp.WaitVisible(`textarea`, chromedp.ByQuery),
		chromedp.SendKeys(`textarea`, row.Description, chromedp.ByQuery),
		chromedp.Click(`//button[contains(text(), "Submit")]`, chromedp.BySearch),
		chromedp.Sleep(5*time.Second),
	)
	if err != nil {
		return fmt.Errorf("description/submit failed: %w", err)
	}

	return nil
}

// screenshot saves the current page for post-mortem when a row fails
func (u *Uploader) screenshot(ctx context.Context, sku string) {
	var buf []byte
	if err := chromedp.Run(ctx, chromedp.CaptureScreenshot(&buf)); err != nil {
		return
	}
	name := fmt.Sprintf("upload_error_%s.png", sku)
	if err := os.WriteFile(name, buf, 0644); err == nil {
		u.logger.Warn("Saved failure screenshot: %s", name)
	}
}
