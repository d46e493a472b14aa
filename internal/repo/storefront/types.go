package storefront

import (
	"github.com/nguyentranbao-ct/deals-api/internal/models"
	"github.com/nguyentranbao-ct/deals-api/pkg/util"
)

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type gqlResponse struct {
	Data   *gqlData   `json:"data"`
	Errors []gqlError `json:"errors,omitempty"`
}

type gqlError struct {
	Message string `json:"message"`
}

type gqlData struct {
	Collection *gqlCollection `json:"collection"`
	Products   *gqlProducts   `json:"products"`
}

type gqlCollection struct {
	Products gqlProducts `json:"products"`
}

type gqlProducts struct {
	PageInfo gqlPageInfo      `json:"pageInfo"`
	Edges    []gqlProductEdge `json:"edges"`
}

type gqlPageInfo struct {
	HasNextPage bool    `json:"hasNextPage"`
	EndCursor   *string `json:"endCursor"`
}

type gqlProductEdge struct {
	Node gqlProduct `json:"node"`
}

type gqlProduct struct {
	ID             string        `json:"id"`
	Handle         string        `json:"handle"`
	Title          string        `json:"title"`
	OnlineStoreURL *string       `json:"onlineStoreUrl"`
	FeaturedImage  *gqlImage     `json:"featuredImage"`
	PriceRange     gqlPriceRange `json:"priceRange"`
	Variants       gqlVariants   `json:"variants"`
}

type gqlImage struct {
	URL     string  `json:"url"`
	AltText *string `json:"altText"`
}

type gqlMoney struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type gqlPriceRange struct {
	MinVariantPrice gqlMoney `json:"minVariantPrice"`
	MaxVariantPrice gqlMoney `json:"maxVariantPrice"`
}

type gqlVariants struct {
	Edges []gqlVariantEdge `json:"edges"`
}

type gqlVariantEdge struct {
	Node gqlVariant `json:"node"`
}

type gqlVariant struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Price          gqlMoney  `json:"price"`
	CompareAtPrice *gqlMoney `json:"compareAtPrice"`
}

// pageResult flattens the edges/node connection into the internal page shape.
func (p gqlProducts) pageResult() *models.PageResult {
	return &models.PageResult{
		Nodes:       util.ConvertList(p.Edges, func(e gqlProductEdge) models.RawProductNode { return e.Node.rawNode() }),
		HasNextPage: p.PageInfo.HasNextPage,
		EndCursor:   util.Val(p.PageInfo.EndCursor),
	}
}

func (p gqlProduct) rawNode() models.RawProductNode {
	node := models.RawProductNode{
		ID:             p.ID,
		Handle:         p.Handle,
		Title:          p.Title,
		OnlineStoreURL: util.Val(p.OnlineStoreURL),
		PriceRange: models.RawPriceRange{
			MinAmount: p.PriceRange.MinVariantPrice.Amount,
			MaxAmount: p.PriceRange.MaxVariantPrice.Amount,
			Currency:  p.PriceRange.MinVariantPrice.CurrencyCode,
		},
		Variants: util.ConvertList(p.Variants.Edges, func(e gqlVariantEdge) models.RawVariant { return e.Node.rawVariant() }),
	}

	if p.FeaturedImage != nil {
		node.Image = &models.RawImage{
			URL:     p.FeaturedImage.URL,
			AltText: util.Val(p.FeaturedImage.AltText),
		}
	}

	return node
}

func (v gqlVariant) rawVariant() models.RawVariant {
	variant := models.RawVariant{
		ID:       v.ID,
		Title:    v.Title,
		Price:    v.Price.Amount,
		Currency: v.Price.CurrencyCode,
	}
	if v.CompareAtPrice != nil {
		variant.CompareAtPrice = v.CompareAtPrice.Amount
	}
	return variant
}
