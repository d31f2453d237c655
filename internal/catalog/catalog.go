package catalog

import (
	"context"
	"fmt"
	"net/url"

	"github.com/webshop/storefront/internal/domain"

	lru "github.com/hashicorp/golang-lru/v2"
)

//go:generate mockgen -source internal/catalog/catalog.go -destination=internal/catalog/catalog_mock_test.go -package=catalog

// Sorting criteria understood by the catalog endpoint. Sorting and category
// filtering happen server-side.
const (
	SortAlphaAsc  = "alpha-asc"
	SortAlphaDesc = "alpha-desc"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

type api interface {
	Get(ctx context.Context, path string, out any) error
}

// Client reads the product catalog. Products are immutable from the client's
// point of view, so by-id lookups go through a small LRU warmed by every list
// call.
type Client struct {
	api   api
	cache *lru.Cache[int64, domain.Product]
}

func New(api api, cacheSize int) (*Client, error) {
	c, err := lru.New[int64, domain.Product](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Client{api: api, cache: c}, nil
}

// Products lists the catalog sorted per sort. An empty or "all" category
// returns every product.
func (c *Client) Products(ctx context.Context, sort, category string) ([]domain.Product, error) {
	q := url.Values{}
	if sort != "" {
		q.Set("sort", sort)
	}
	if category != "" && category != "all" {
		q.Set("category", category)
	}
	path := "/products"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var products []domain.Product
	if err := c.api.Get(ctx, path, &products); err != nil {
		return nil, err
	}
	for _, p := range products {
		c.cache.Add(p.ID, p)
	}
	return products, nil
}

func (c *Client) Product(ctx context.Context, id int64) (domain.Product, error) {
	if p, ok := c.cache.Get(id); ok {
		return p, nil
	}

	var p domain.Product
	if err := c.api.Get(ctx, fmt.Sprintf("/products/%d", id), &p); err != nil {
		return domain.Product{}, err
	}
	c.cache.Add(p.ID, p)
	return p, nil
}
