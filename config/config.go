package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application-level configuration
type Config struct {
	// Identity stamped on every feed row
	BrandName       string
	Manufacturer    string
	CountryOfOrigin string
	DepartmentName  string

	// Pricing
	ProfitMargin   float64 // fixed margin added on top of cost + shipping
	BufferMargin   float64 // optional safety buffer, 0 disables
	PriceFallback  int     // used when the scraped cost cannot be parsed
	DefaultWeightG int     // grams, when the title gives no weight hint
	HeavyWeightG   int
	MidWeightG     int
	ShippingLightG int // tier threshold: weight <= this ships at ShippingLight
	ShippingMidG   int
	ShippingLight  float64
	ShippingMid    float64
	ShippingHeavy  float64

	// Keyword vocabularies driving classification and extraction
	ClothingKeywords []string
	FootwearKeywords []string
	SareeKeywords    []string
	HeavyKeywords    []string
	MidWeightWords   []string
	Materials        []string
	Colors           []string
	ClothingSizes    []string
	FootwearSizes    []string

	// Inventory
	DefaultQuantity int

	// Image processing
	ImageMinEdge     int // upscale target for the shorter edge, never downscale
	BlurBandHeight   int // pixels blurred at the bottom to hide watermarks
	BlurRadius       float64
	SharpnessFactor  float64
	ContrastFactor   float64
	SaturationFactor float64
	JPEGQuality      int
	FetchTimeoutSec  int
	ImageOutputDir   string

	// Remote image store (GitHub raw links, published out-of-band)
	GitHubOwner  string
	GitHubRepo   string
	GitHubBranch string

	// SKU
	SKUPrefix string

	// I/O
	InputFile   string
	OutputFile  string
	CSVFilePath string
	DatabaseURL string

	// Upload automation
	UploadEnabled  bool
	SellerEmail    string
	SellerPassword string
	SellerURL      string
	MaxRetries     int
	RateLimitDelay int // milliseconds between uploads
}

// Load reads configuration from environment variables or falls back to defaults
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		BrandName:       getEnv("BRAND_NAME", "Sweet India"),
		Manufacturer:    getEnv("MANUFACTURER", "Sweet India Pvt Ltd"),
		CountryOfOrigin: getEnv("COUNTRY_OF_ORIGIN", "India"),
		DepartmentName:  getEnv("DEPARTMENT_NAME", "Women"),

		ProfitMargin:   getEnvFloat("PROFIT_MARGIN", 200),
		BufferMargin:   getEnvFloat("BUFFER_MARGIN", 30),
		PriceFallback:  getEnvInt("PRICE_FALLBACK", 999),
		DefaultWeightG: getEnvInt("DEFAULT_WEIGHT_G", 450),
		HeavyWeightG:   getEnvInt("HEAVY_WEIGHT_G", 900),
		MidWeightG:     getEnvInt("MID_WEIGHT_G", 650),
		ShippingLightG: getEnvInt("SHIPPING_LIGHT_G", 500),
		ShippingMidG:   getEnvInt("SHIPPING_MID_G", 1000),
		ShippingLight:  getEnvFloat("SHIPPING_LIGHT", 74),
		ShippingMid:    getEnvFloat("SHIPPING_MID", 111),
		ShippingHeavy:  getEnvFloat("SHIPPING_HEAVY", 153),

		ClothingKeywords: getEnvList("CLOTHING_KEYWORDS",
			"kurti,kurta,dress,top,tunic,shirt,gown,lehenga"),
		FootwearKeywords: getEnvList("FOOTWEAR_KEYWORDS",
			"shoe,sandal,boot,slipper,flat,heel,jutti"),
		SareeKeywords: getEnvList("SAREE_KEYWORDS", "saree"),
		HeavyKeywords: getEnvList("HEAVY_KEYWORDS", "lehenga,jacket,coat,heavy"),
		MidWeightWords: getEnvList("MID_WEIGHT_KEYWORDS",
			"gown,anarkali,shoe,sandal,boot,slipper,flat,heel,jutti"),
		Materials: getEnvList("MATERIALS",
			"rayon,cotton,silk,georgette,crepe,leather,canvas,polyester"),
		Colors:        getEnvList("COLORS", "red,blue,black,white,pink,yellow,green"),
		ClothingSizes: getEnvList("CLOTHING_SIZES", "S,M,L,XL,2XL"),
		FootwearSizes: getEnvList("FOOTWEAR_SIZES", "6 UK,7 UK,8 UK,9 UK"),

		DefaultQuantity: getEnvInt("DEFAULT_QUANTITY", 50),

		ImageMinEdge:     getEnvInt("IMAGE_MIN_EDGE", 1200),
		BlurBandHeight:   getEnvInt("BLUR_BAND_HEIGHT", 60),
		BlurRadius:       getEnvFloat("BLUR_RADIUS", 15),
		SharpnessFactor:  getEnvFloat("SHARPNESS_FACTOR", 1.4),
		ContrastFactor:   getEnvFloat("CONTRAST_FACTOR", 1.2),
		SaturationFactor: getEnvFloat("SATURATION_FACTOR", 1.1),
		JPEGQuality:      getEnvInt("JPEG_QUALITY", 95),
		FetchTimeoutSec:  getEnvInt("FETCH_TIMEOUT_SEC", 10),
		ImageOutputDir:   getEnv("IMAGE_OUTPUT_DIR", "output/images"),

		GitHubOwner:  getEnv("GITHUB_OWNER", "mademoneyai-hub"),
		GitHubRepo:   getEnv("GITHUB_REPO", "sweet-india-products"),
		GitHubBranch: getEnv("GITHUB_BRANCH", "main"),

		SKUPrefix: getEnv("SKU_PREFIX", "SWEET"),

		InputFile:   getEnv("INPUT_FILE", "final_meesho_data.xlsx"),
		OutputFile:  getEnv("OUTPUT_FILE", "output/Amazon_Ready_Upload.xlsx"),
		CSVFilePath: getEnv("CSV_FILE_PATH", "output/feed_rows.csv"),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		UploadEnabled:  getEnvBool("UPLOAD_ENABLED", false),
		SellerEmail:    getEnv("SELLER_EMAIL", ""),
		SellerPassword: getEnv("SELLER_PASSWORD", ""),
		SellerURL:      getEnv("SELLER_URL", "https://sellercentral.amazon.in/product-search?ref=xx_catadd_dnav_xx"),
		MaxRetries:     getEnvInt("MAX_RETRIES", 3),
		RateLimitDelay: getEnvInt("RATE_LIMIT_DELAY_MS", 2000),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvList(key, defaultVal string) []string {
	raw := getEnv(key, defaultVal)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
