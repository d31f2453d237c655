package api

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"github.com/webshop/storefront/internal/domain"
)

var categories = []string{"cameras", "computers", "phones", "accessories"}

// SeedProducts builds a fake catalog of n products for the dev server.
func SeedProducts(n int) []domain.Product {
	f := gofakeit.New(0)

	products := make([]domain.Product, 0, n)
	for i := 0; i < n; i++ {
		products = append(products, domain.Product{
			ID:       int64(i + 1),
			Name:     f.ProductName(),
			Price:    decimal.NewFromFloat(f.Price(5, 500)).Round(2),
			Category: categories[i%len(categories)],
			Desc:     f.ProductDescription(),
		})
	}
	return products
}
