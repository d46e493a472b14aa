package usecase

import (
	"math"
	"strconv"
	"strings"

	"github.com/nguyentranbao-ct/deals-api/internal/models"
)

// MaxDiscountPercent returns the largest discount across a product's variants
// as a whole percentage, or 0 when no variant is discounted. A variant counts
// only when its compare-at price is positive and strictly above the selling
// price. Percentages round half away from zero via math.Round, so a 1/3 cut
// is 33 and a 2/3 cut is 67.
func MaxDiscountPercent(variants []models.RawVariant) int {
	best := 0
	for _, v := range variants {
		price := parseAmount(v.Price)
		compareAt := parseAmount(v.CompareAtPrice)
		if compareAt <= 0 || compareAt <= price {
			continue
		}
		pct := int(math.Round((compareAt - price) / compareAt * 100))
		if pct > best {
			best = pct
		}
	}
	return best
}

// parseAmount reads a decimal amount string. Missing or malformed values
// degrade to 0 rather than failing the request.
func parseAmount(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
