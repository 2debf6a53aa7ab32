package models

// RawListing represents one unprocessed record exported from the source marketplace
type RawListing struct {
	Index       int // position within the batch, the only identity a record has
	Title       string
	Description string
	RawPrice    string // e.g. "₹499" or "Rs. 1,299"
	ImageURLs   [4]string
}

// CategoryInfo is the classifier's verdict for one listing
type CategoryInfo struct {
	FeedType        string
	IsVariation     bool
	VariationTheme  string
	Sizes           []string
	DefaultKeywords string
	DefaultMaterial string
}

// Attributes holds material/color extracted from the listing description
type Attributes struct {
	Material string
	Color    string
}

// NormalizedImage is one successfully processed image slot
type NormalizedImage struct {
	SlotIndex int // 1..4, slot 1 is the main image
	Filename  string
	PublicURL string
}

// Relationship marks a row's role in a size-variation family
type Relationship string

const (
	RelationshipNone   Relationship = ""
	RelationshipParent Relationship = "Parent"
	RelationshipChild  Relationship = "Child"
)

// OutputRow is one assembled destination-schema row. Parent rows carry the
// shared content but no price, quantity or size.
type OutputRow struct {
	FeedProductType string
	SKU             string
	ParentSKU       string
	Relationship    Relationship
	VariationTheme  string
	Title           string
	Description     string
	Bullets         [5]string
	Keywords        string
	Price           int
	Quantity        int
	Size            string
	Color           string
	Material        string
	MainImageURL    string
	OtherImageURLs  [3]string
	Brand           string
	Department      string
	CountryOfOrigin string
	Manufacturer    string
}

// BatchReport holds computed stats for one converted batch
type BatchReport struct {
	BatchID         string
	TotalListings   int
	SkippedListings int
	TotalRows       int
	SingleRows      int
	ParentRows      int
	ChildRows       int
	RowsByCategory  map[string]int
	MinPrice        int
	MaxPrice        int
	AveragePrice    float64
	ImagesProcessed int
	ImagesFailed    int
}
