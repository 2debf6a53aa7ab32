package pipeline

import (
	"fmt"
	"image"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"

	"listing-feed/config"
	"listing-feed/models"
	"listing-feed/utils"
)

// ImageNormalizer fetches a listing image and applies the fixed visual
// transform: upright orientation, HD upscale, a blurred band over the bottom
// to hide source-platform watermarks, and a mild enhancement pass. It also
// owns the deterministic filename and public-link scheme the image repo must
// publish under.
type ImageNormalizer struct {
	cfg    *config.Config
	logger *utils.Logger
	client *http.Client
}

// NewImageNormalizer creates a new ImageNormalizer
func NewImageNormalizer(cfg *config.Config, logger *utils.Logger) *ImageNormalizer {
	return &ImageNormalizer{
		cfg:    cfg,
		logger: logger,
		client: &http.Client{Timeout: time.Duration(cfg.FetchTimeoutSec) * time.Second},
	}
}

// Process handles one image slot end to end: fetch, transform, save locally.
// The caller decides what a failure means; here it only means this slot.
func (n *ImageNormalizer) Process(url, sku string, slot int) (models.NormalizedImage, error) {
	src, err := n.Fetch(url)
	if err != nil {
		return models.NormalizedImage{}, fmt.Errorf("fetch slot %d: %w", slot, err)
	}

	processed := n.Normalize(src)

	filename := n.Filename(sku, slot)
	if err := n.Save(processed, filename); err != nil {
		return models.NormalizedImage{}, fmt.Errorf("save slot %d: %w", slot, err)
	}

	return models.NormalizedImage{
		SlotIndex: slot,
		Filename:  filename,
		PublicURL: n.PublicURL(filename),
	}, nil
}

// Fetch retrieves and decodes an image within the configured timeout,
// applying stored orientation metadata so the result displays upright
func (n *ImageNormalizer) Fetch(url string) (image.Image, error) {
	resp, err := n.client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d for %s", resp.StatusCode, url)
	}

	img, err := imaging.Decode(resp.Body, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}
	return img, nil
}

// Normalize applies the fixed transform in order: upscale, bottom-band blur,
// sharpness/contrast/saturation boost
func (n *ImageNormalizer) Normalize(src image.Image) *image.NRGBA {
	img := imaging.Clone(src) // force a known color layout

	// Upscale so the shorter edge reaches the target; never downscale
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if min(w, h) < n.cfg.ImageMinEdge {
		if w <= h {
			img = imaging.Resize(img, n.cfg.ImageMinEdge, 0, imaging.Lanczos)
		} else {
			img = imaging.Resize(img, 0, n.cfg.ImageMinEdge, imaging.Lanczos)
		}
	}

	// Replace the bottom band with a heavily blurred copy of itself, hiding
	// watermark text without hard-cropping content
	w, h = img.Bounds().Dx(), img.Bounds().Dy()
	band := n.cfg.BlurBandHeight
	if band > 0 && h > band {
		box := image.Rect(0, h-band, w, h)
		blurred := imaging.Blur(imaging.Crop(img, box), n.cfg.BlurRadius)
		img = imaging.Paste(img, blurred, image.Pt(0, h-band))
	}

	img = imaging.Sharpen(img, n.cfg.SharpnessFactor-1)
	img = imaging.AdjustContrast(img, (n.cfg.ContrastFactor-1)*100)
	img = imaging.AdjustSaturation(img, (n.cfg.SaturationFactor-1)*100)
	return img
}

// Filename is the deterministic local name for a slot: {sku}_img{slot}.jpg
func (n *ImageNormalizer) Filename(sku string, slot int) string {
	return fmt.Sprintf("%s_img%d.jpg", sku, slot)
}

// PublicURL is the raw GitHub link the image repo is expected to publish.
// The blob itself is pushed out-of-band after the run.
func (n *ImageNormalizer) PublicURL(filename string) string {
	return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/%s/%s",
		n.cfg.GitHubOwner, n.cfg.GitHubRepo, n.cfg.GitHubBranch, filename)
}

// Save writes the processed image into the configured output directory
func (n *ImageNormalizer) Save(img image.Image, filename string) error {
	if err := os.MkdirAll(n.cfg.ImageOutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create image directory: %w", err)
	}

	path := filepath.Join(n.cfg.ImageOutputDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	return imaging.Encode(f, img, imaging.JPEG, imaging.JPEGQuality(n.cfg.JPEGQuality))
}
