package order

import (
	"context"

	"go.uber.org/zap"

	"github.com/webshop/storefront/internal/domain"
)

//go:generate mockgen -source internal/order/coordinator.go -destination=internal/order/coordinator_mock_test.go -package=order

type api interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body any) error
}

type cartStore interface {
	Lines(ctx context.Context) ([]domain.CartLine, error)
	RemoveAllItems(ctx context.Context) error
}

// Coordinator turns cart contents plus contact info into a submitted order
// and empties the cart afterwards.
type Coordinator struct {
	api    api
	cart   cartStore
	logger *zap.Logger
}

func NewCoordinator(api api, cart cartStore, logger *zap.Logger) *Coordinator {
	return &Coordinator{
		api:    api,
		cart:   cart,
		logger: logger,
	}
}

// CreateOrder assembles and submits an order. Order history and cart lines
// are fetched concurrently; the order id is the count of existing orders plus
// one. The cart is cleared only after the POST succeeds, so a failed
// submission leaves the cart intact for a retry.
//
// The count+1 id is observed client-side and can collide when separate
// clients submit at the same time. Authoritative server-side assignment is
// the fix; until the endpoint does that, the returned id is best-effort.
func (c *Coordinator) CreateOrder(ctx context.Context, contact domain.ContactInfo) (domain.Order, error) {
	type linesResult struct {
		lines []domain.CartLine
		err   error
	}
	linesCh := make(chan linesResult, 1)
	go func() {
		lines, err := c.cart.Lines(ctx)
		linesCh <- linesResult{lines: lines, err: err}
	}()

	orders, err := c.Orders(ctx)
	lr := <-linesCh
	if err != nil {
		return domain.Order{}, err
	}
	if lr.err != nil {
		return domain.Order{}, lr.err
	}

	order := domain.Order{
		ID:        int64(len(orders)) + 1,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
		Products:  make([]domain.OrderProduct, 0, len(lr.lines)),
	}
	for _, line := range lr.lines {
		order.Products = append(order.Products, domain.OrderProduct{
			ID:       line.ProductID,
			Quantity: line.Quantity,
		})
	}

	if err := c.api.Post(ctx, "/orders", order); err != nil {
		return domain.Order{}, err
	}

	if err := c.cart.RemoveAllItems(ctx); err != nil {
		return domain.Order{}, err
	}

	c.logger.Info("order submitted",
		zap.Int64("order_id", order.ID),
		zap.Int("products", len(order.Products)),
	)
	return order, nil
}

// Orders lists all existing orders.
func (c *Coordinator) Orders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.api.Get(ctx, "/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
