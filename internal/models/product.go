package models

// RawProductNode is the upstream product record exactly as the storefront
// returns it, decoded once at the client boundary. Money amounts stay as
// decimal strings until normalization.
type RawProductNode struct {
	ID             string
	Handle         string
	Title          string
	OnlineStoreURL string
	Image          *RawImage
	PriceRange     RawPriceRange
	Variants       []RawVariant
}

type RawImage struct {
	URL     string
	AltText string
}

type RawPriceRange struct {
	MinAmount string
	MaxAmount string
	Currency  string
}

// RawVariant holds one purchasable variant. CompareAtPrice is empty when the
// variant has no list price.
type RawVariant struct {
	ID             string
	Title          string
	Price          string
	CompareAtPrice string
	Currency       string
}

// PageResult is one page of candidates plus the cursor state needed to
// request the next one.
type PageResult struct {
	Nodes       []RawProductNode
	HasNextPage bool
	EndCursor   string
}

// QuerySpec selects the upstream source: exactly one of Collection (handle
// lookup) or Search (free-text query) is set.
type QuerySpec struct {
	Collection string
	Search     string
}

// Product is the normalized, client-facing shape.
type Product struct {
	ID          string    `json:"id"`
	Handle      string    `json:"handle"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	ImageURL    *string   `json:"image_url,omitempty"`
	ImageAlt    *string   `json:"image_alt,omitempty"`
	PriceMin    float64   `json:"price_min"`
	PriceMax    float64   `json:"price_max"`
	Currency    string    `json:"currency,omitempty"`
	Variants    []Variant `json:"variants"`
	MaxDiscount int       `json:"max_discount"`
}

type Variant struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Price          float64  `json:"price"`
	CompareAtPrice *float64 `json:"compare_at_price,omitempty"`
	Currency       string   `json:"currency,omitempty"`
}
