package usecase

import (
	"sort"

	"github.com/nguyentranbao-ct/deals-api/internal/models"
)

// rankProducts normalizes the aggregated candidates, keeps only the
// discounted ones, orders them by discount descending and cuts the list at
// limit. The sort is stable, so equally discounted products keep the order
// the upstream returned them in.
func rankProducts(nodes []models.RawProductNode, limit int, storeBase string) []models.Product {
	products := make([]models.Product, 0, len(nodes))
	for _, node := range nodes {
		if product := mapProduct(node, storeBase); product.MaxDiscount > 0 {
			products = append(products, product)
		}
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].MaxDiscount > products[j].MaxDiscount
	})

	if len(products) > limit {
		products = products[:limit]
	}
	return products
}
