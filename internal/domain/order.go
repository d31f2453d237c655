package domain

// ContactInfo is supplied by the caller when submitting an order.
type ContactInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// OrderProduct references a product inside a submitted order.
type OrderProduct struct {
	ID       int64 `json:"id"`
	Quantity int   `json:"quantity"`
}

// Order as posted to and listed from the orders endpoint. The id is assigned
// client-side as (number of existing orders) + 1; see order.Coordinator for
// the caveats this carries.
type Order struct {
	ID        int64          `json:"id"`
	FirstName string         `json:"firstName"`
	LastName  string         `json:"lastName"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	Products  []OrderProduct `json:"products"`
}
