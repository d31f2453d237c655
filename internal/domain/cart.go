package domain

import "github.com/shopspring/decimal"

// CartLine is one product/quantity pair in the cart. The server keeps at most
// one line per product; AddItem merges quantities instead of creating a second
// line.
type CartLine struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// CartItem is a cart line joined with catalog data. It is computed on every
// read and never stored.
type CartItem struct {
	Product  Product         `json:"product"`
	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}
