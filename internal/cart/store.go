package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/webshop/storefront/internal/catalog"
	"github.com/webshop/storefront/internal/domain"
	"github.com/webshop/storefront/internal/event"
)

type api interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body any) error
	Put(ctx context.Context, path string, body any) error
	Delete(ctx context.Context, path string) error
}

type products interface {
	Products(ctx context.Context, sort, category string) ([]domain.Product, error)
}

// linesFetch is one retrieval of the cart lines. It stays cached after it
// completes, including after a failure, until the next mutation drops it.
type linesFetch struct {
	done  chan struct{}
	lines []domain.CartLine
	err   error
}

// Store is the single source of truth for cart line state. Concurrent reads
// coalesce onto one in-flight fetch of /shopping-cart; every mutation drops
// the cached fetch before its own request goes out and signals subscribers
// once the remote call succeeds.
type Store struct {
	api     api
	catalog products
	changes *event.Notifier
	logger  *zap.Logger

	// pending is the only shared mutable state in the store. Mutations write
	// it (to nil) before awaiting the network, so a read issued after a
	// mutation never sees a pre-mutation snapshot.
	mu      sync.Mutex
	pending *linesFetch
}

func NewStore(api api, catalog products, logger *zap.Logger) *Store {
	return &Store{
		api:     api,
		catalog: catalog,
		changes: event.NewNotifier(),
		logger:  logger,
	}
}

// Subscribe registers a listener on the cart's change signal. One signal is
// emitted per successful mutation; subscribers re-read through Lines or Items,
// the signal carries no state.
func (s *Store) Subscribe() event.Subscription {
	return s.changes.Subscribe()
}

// Lines returns the cart's lines, serving concurrent callers from a single
// fetch. A fetch that failed keeps serving its error to later callers until a
// mutation invalidates it.
func (s *Store) Lines(ctx context.Context) ([]domain.CartLine, error) {
	s.mu.Lock()
	f := s.pending
	if f == nil {
		f = &linesFetch{done: make(chan struct{})}
		s.pending = f
		// The fetch is shared, so an individual caller going away must not
		// cancel it.
		go s.retrieve(context.WithoutCancel(ctx), f)
	}
	s.mu.Unlock()

	select {
	case <-f.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if f.err != nil {
		return nil, f.err
	}
	return append([]domain.CartLine(nil), f.lines...), nil
}

func (s *Store) retrieve(ctx context.Context, f *linesFetch) {
	var lines []domain.CartLine
	if err := s.api.Get(ctx, "/shopping-cart", &lines); err != nil {
		f.err = err
	} else {
		f.lines = lines
	}
	close(f.done)
}

// Items joins the cart lines with the catalog, both fetched concurrently.
// A line whose product no longer resolves is dropped without error: the
// product is simply no longer available. Items come back in catalog order.
func (s *Store) Items(ctx context.Context) ([]domain.CartItem, error) {
	type linesResult struct {
		lines []domain.CartLine
		err   error
	}
	linesCh := make(chan linesResult, 1)
	go func() {
		lines, err := s.Lines(ctx)
		linesCh <- linesResult{lines: lines, err: err}
	}()

	products, err := s.catalog.Products(ctx, catalog.SortAlphaAsc, "")
	lr := <-linesCh
	if err != nil {
		return nil, err
	}
	if lr.err != nil {
		return nil, lr.err
	}

	byProduct := make(map[int64]domain.CartLine, len(lr.lines))
	for _, line := range lr.lines {
		byProduct[line.ProductID] = line
	}

	items := make([]domain.CartItem, 0, len(lr.lines))
	for _, p := range products {
		line, ok := byProduct[p.ID]
		if !ok {
			continue
		}
		items = append(items, domain.CartItem{
			Product:  p,
			Quantity: line.Quantity,
			Total:    p.Price.Mul(decimal.NewFromInt(int64(line.Quantity))),
		})
	}
	return items, nil
}

// ItemsCount sums the quantities across all lines; 0 for an empty cart.
func (s *Store) ItemsCount(ctx context.Context) (int, error) {
	lines, err := s.Lines(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, line := range lines {
		count += line.Quantity
	}
	return count, nil
}

// AddItem puts quantity units of a product in the cart. If the product
// already has a line, the quantities are merged through UpdateItemQuantity,
// so a product never occupies two lines.
//
// Known hazard: two concurrent AddItem calls for a product not yet in the
// cart can both observe "no existing line" and both create one. Mutations for
// one cart are expected to be issued sequentially, as a UI does.
func (s *Store) AddItem(ctx context.Context, productID int64, quantity int) error {
	lines, err := s.Lines(ctx)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if line.ProductID == productID {
			return s.UpdateItemQuantity(ctx, productID, line.Quantity+quantity)
		}
	}

	s.invalidate()
	if err := s.api.Post(ctx, "/shopping-cart", domain.CartLine{ProductID: productID, Quantity: quantity}); err != nil {
		return err
	}
	s.logger.Debug("cart line added", zap.Int64("product_id", productID), zap.Int("quantity", quantity))
	s.changes.Emit()
	return nil
}

// UpdateItemQuantity replaces the quantity on the product's line. Quantity
// validity is the caller's responsibility; the store sends whatever it is
// given.
func (s *Store) UpdateItemQuantity(ctx context.Context, productID int64, quantity int) error {
	s.invalidate()
	body := struct {
		Quantity int `json:"quantity"`
	}{Quantity: quantity}
	if err := s.api.Put(ctx, fmt.Sprintf("/shopping-cart/%d", productID), body); err != nil {
		return err
	}
	s.logger.Debug("cart line updated", zap.Int64("product_id", productID), zap.Int("quantity", quantity))
	s.changes.Emit()
	return nil
}

// RemoveItem deletes the product's line from the cart.
func (s *Store) RemoveItem(ctx context.Context, productID int64) error {
	s.invalidate()
	if err := s.api.Delete(ctx, fmt.Sprintf("/shopping-cart/%d", productID)); err != nil {
		return err
	}
	s.logger.Debug("cart line removed", zap.Int64("product_id", productID))
	s.changes.Emit()
	return nil
}

// RemoveAllItems empties the cart.
func (s *Store) RemoveAllItems(ctx context.Context) error {
	s.invalidate()
	if err := s.api.Delete(ctx, "/shopping-cart/"); err != nil {
		return err
	}
	s.logger.Debug("cart cleared")
	s.changes.Emit()
	return nil
}

// invalidate drops the cached fetch. It runs before the mutation's request is
// issued; on failure the cache stays empty rather than rolling back to a
// pre-mutation snapshot, the next read refetches.
func (s *Store) invalidate() {
	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()
}
