package usecase

import (
	"fmt"

	"github.com/nguyentranbao-ct/deals-api/internal/models"
	"github.com/nguyentranbao-ct/deals-api/pkg/util"
)

// mapProduct flattens one upstream node into the client-facing shape and
// stamps its maximum discount.
func mapProduct(node models.RawProductNode, storeBase string) models.Product {
	product := models.Product{
		ID:          node.ID,
		Handle:      node.Handle,
		Title:       node.Title,
		URL:         productURL(node, storeBase),
		PriceMin:    parseAmount(node.PriceRange.MinAmount),
		PriceMax:    parseAmount(node.PriceRange.MaxAmount),
		Currency:    node.PriceRange.Currency,
		Variants:    util.ConvertList(node.Variants, mapVariant),
		MaxDiscount: MaxDiscountPercent(node.Variants),
	}

	// url and alt travel together: both set or both absent
	if node.Image != nil {
		product.ImageURL = util.Ptr(node.Image.URL)
		product.ImageAlt = util.Ptr(node.Image.AltText)
	}

	return product
}

func mapVariant(v models.RawVariant) models.Variant {
	variant := models.Variant{
		ID:       v.ID,
		Title:    v.Title,
		Price:    parseAmount(v.Price),
		Currency: v.Currency,
	}
	if v.CompareAtPrice != "" {
		variant.CompareAtPrice = util.Ptr(parseAmount(v.CompareAtPrice))
	}
	return variant
}

// productURL prefers the node's canonical URL and falls back to the
// conventional storefront path.
func productURL(node models.RawProductNode, storeBase string) string {
	if node.OnlineStoreURL != "" {
		return node.OnlineStoreURL
	}
	return fmt.Sprintf("%s/products/%s", storeBase, node.Handle)
}
