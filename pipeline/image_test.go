package pipeline

import (
	"bytes"
	"image"
	"image/color"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"listing-feed/utils"
)

func testImageJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestFilenameAndPublicURLAreDeterministic(t *testing.T) {
	n := NewImageNormalizer(testConfig(), utils.NewLogger())

	name := n.Filename("SWEET-20240102030405-1001", 1)
	if name != "SWEET-20240102030405-1001_img1.jpg" {
		t.Fatalf("unexpected filename %q", name)
	}

	url := n.PublicURL(name)
	want := "https://raw.githubusercontent.com/mademoneyai-hub/sweet-india-products/main/SWEET-20240102030405-1001_img1.jpg"
	if url != want {
		t.Fatalf("unexpected public URL:\n got %q\nwant %q", url, want)
	}
}

func TestNormalize_UpscalesShortEdgeToTarget(t *testing.T) {
	n := NewImageNormalizer(testConfig(), utils.NewLogger())

	src := image.NewNRGBA(image.Rect(0, 0, 300, 400))
	out := n.Normalize(src)

	w, h := out.Bounds().Dx(), out.Bounds().Dy()
	if w != 1200 {
		t.Fatalf("expected shorter edge upscaled to 1200, got %d", w)
	}
	if h != 1600 {
		t.Fatalf("expected aspect ratio preserved (1600), got %d", h)
	}
}

func TestNormalize_NeverDownscales(t *testing.T) {
	n := NewImageNormalizer(testConfig(), utils.NewLogger())

	src := image.NewNRGBA(image.Rect(0, 0, 2000, 1500))
	out := n.Normalize(src)

	if out.Bounds().Dx() != 2000 || out.Bounds().Dy() != 1500 {
		t.Fatalf("large image must keep its dimensions, got %dx%d",
			out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestNormalize_BlursBottomBand(t *testing.T) {
	cfg := testConfig()
	cfg.ImageMinEdge = 100 // keep the test image small
	n := NewImageNormalizer(cfg, utils.NewLogger())

	// Sharp black/white vertical stripes at the bottom should smear together
	src := image.NewNRGBA(image.Rect(0, 0, 200, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			c := color.NRGBA{A: 255}
			if (x/2)%2 == 0 {
				c = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			}
			src.Set(x, y, c)
		}
	}
	out := n.Normalize(src)

	h := out.Bounds().Dy()
	bottomA := out.NRGBAAt(100, h-30)
	bottomB := out.NRGBAAt(102, h-30)
	diff := int(bottomA.R) - int(bottomB.R)
	if diff < 0 {
		diff = -diff
	}
	if diff > 100 {
		t.Fatalf("bottom band not blurred: adjacent stripes still differ by %d", diff)
	}
}

func TestProcess_SavesFileAndBuildsLink(t *testing.T) {
	cfg := testConfig()
	cfg.ImageOutputDir = t.TempDir()
	n := NewImageNormalizer(cfg, utils.NewLogger())

	payload := testImageJPEG(t, 300, 300)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	img, err := n.Process(srv.URL, "SKU-TEST", 2)
	if err != nil {
		t.Fatalf("Process error: %v", err)
	}
	if img.SlotIndex != 2 {
		t.Fatalf("expected slot 2, got %d", img.SlotIndex)
	}
	if img.Filename != "SKU-TEST_img2.jpg" {
		t.Fatalf("unexpected filename %q", img.Filename)
	}

	saved := filepath.Join(cfg.ImageOutputDir, img.Filename)
	f, err := os.Open(saved)
	if err != nil {
		t.Fatalf("processed image not saved: %v", err)
	}
	defer f.Close()

	decoded, err := imaging.Decode(f)
	if err != nil {
		t.Fatalf("saved file is not a decodable image: %v", err)
	}
	if decoded.Bounds().Dx() < cfg.ImageMinEdge {
		t.Fatalf("saved image below target edge: %d", decoded.Bounds().Dx())
	}
}

func TestProcess_FetchFailuresReturnError(t *testing.T) {
	cfg := testConfig()
	cfg.ImageOutputDir = t.TempDir()
	n := NewImageNormalizer(cfg, utils.NewLogger())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/missing":
			http.NotFound(w, r)
		default:
			_, _ = w.Write([]byte("this is not an image"))
		}
	}))
	defer srv.Close()

	if _, err := n.Process(srv.URL+"/missing", "SKU-TEST", 1); err == nil {
		t.Fatalf("expected error for 404 response")
	}
	if _, err := n.Process(srv.URL+"/garbage", "SKU-TEST", 1); err == nil {
		t.Fatalf("expected error for undecodable payload")
	}
	if _, err := n.Process("http://127.0.0.1:1/none", "SKU-TEST", 1); err == nil {
		t.Fatalf("expected error for unreachable host")
	}
}
