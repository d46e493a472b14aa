package usecase

import (
	"context"
	"fmt"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/nguyentranbao-ct/deals-api/internal/config"
	"github.com/nguyentranbao-ct/deals-api/internal/models"
	"github.com/nguyentranbao-ct/deals-api/internal/repo/storefront"
)

type DealsUsecase interface {
	TopDeals(ctx context.Context, params models.DealsParams) ([]models.Product, error)
}

type dealsUsecase struct {
	storefront storefront.Client
	storeBase  string
}

func NewDealsUsecase(cfg *config.Config, client storefront.Client) DealsUsecase {
	return &dealsUsecase{
		storefront: client,
		storeBase:  cfg.Shopify.StoreBaseURL(),
	}
}

func (uc *dealsUsecase) TopDeals(ctx context.Context, params models.DealsParams) ([]models.Product, error) {
	nodes, err := uc.collectCandidates(ctx, params.Spec, params.Limit, params.Factor)
	if err != nil {
		return nil, fmt.Errorf("collect candidates: %w", err)
	}

	products := rankProducts(nodes, params.Limit, uc.storeBase)
	log.Infow(ctx, "ranked deals",
		"candidates", len(nodes),
		"discounted", len(products),
		"limit", params.Limit,
	)
	return products, nil
}

// collectCandidates walks the upstream pages one at a time until it has
// limit*factor candidates or the source runs out. The check happens between
// pages only, so the last page may push the total past the target; those
// extra nodes are kept. Fetch errors propagate to the caller untouched, with
// nothing collected.
func (uc *dealsUsecase) collectCandidates(ctx context.Context, spec models.QuerySpec, limit, factor int) ([]models.RawProductNode, error) {
	target := limit * factor

	var nodes []models.RawProductNode
	cursor := ""
	for hasNext := true; hasNext && len(nodes) < target; {
		page, err := uc.storefront.FetchPage(ctx, spec, cursor)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, page.Nodes...)
		hasNext = page.HasNextPage
		cursor = page.EndCursor
	}

	return nodes, nil
}
