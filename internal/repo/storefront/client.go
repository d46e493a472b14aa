package storefront

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/nguyentranbao-ct/deals-api/internal/config"
	"github.com/nguyentranbao-ct/deals-api/internal/models"
	"github.com/nguyentranbao-ct/deals-api/pkg/util"
)

// Client fetches one page of candidate products from the Storefront GraphQL
// API. An empty cursor requests the first page.
type Client interface {
	FetchPage(ctx context.Context, spec models.QuerySpec, cursor string) (*models.PageResult, error)
}

type client struct {
	http     *resty.Client
	endpoint string
	token    string
}

func NewClient(cfg *config.Config) Client {
	c := &client{
		http:  util.NewRestyClient(),
		token: cfg.Shopify.StorefrontToken,
	}
	if cfg.Shopify.StoreDomain != "" {
		c.endpoint = cfg.Shopify.GraphQLEndpoint()
	}
	return c
}

func (c *client) FetchPage(ctx context.Context, spec models.QuerySpec, cursor string) (*models.PageResult, error) {
	if c.endpoint == "" || c.token == "" {
		return nil, models.ErrNotConfigured
	}

	query := searchQuery
	variables := map[string]any{
		"first": productPageSize,
	}
	if spec.Collection != "" {
		query = collectionQuery
		variables["handle"] = spec.Collection
	} else {
		variables["query"] = spec.Search
	}
	if cursor != "" {
		variables["cursor"] = cursor
	}

	var result gqlResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Shopify-Storefront-Access-Token", c.token).
		SetHeader("Content-Type", "application/json").
		SetBody(gqlRequest{Query: query, Variables: variables}).
		SetResult(&result).
		SetError(&result).
		Post(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("call storefront api: %w", err)
	}
	if resp.IsError() {
		if msg := joinErrors(result.Errors); msg != "" {
			return nil, fmt.Errorf("storefront api status %d: %s", resp.StatusCode(), msg)
		}
		return nil, fmt.Errorf("storefront api status %d: %s", resp.StatusCode(), resp.String())
	}
	if msg := joinErrors(result.Errors); msg != "" {
		return nil, fmt.Errorf("storefront query errors: %s", msg)
	}
	if result.Data == nil {
		return nil, fmt.Errorf("storefront response has no data")
	}

	if spec.Collection != "" {
		// A null collection means the handle does not resolve. Not an
		// error: the caller gets an exhausted, empty page.
		if result.Data.Collection == nil {
			return &models.PageResult{}, nil
		}
		return result.Data.Collection.Products.pageResult(), nil
	}

	if result.Data.Products == nil {
		return nil, fmt.Errorf("storefront response missing products")
	}
	return result.Data.Products.pageResult(), nil
}

func joinErrors(errs []gqlError) string {
	if len(errs) == 0 {
		return ""
	}
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Message)
	}
	return strings.Join(messages, "; ")
}
