package api

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/webshop/storefront/internal/cart"
	"github.com/webshop/storefront/internal/catalog"
	"github.com/webshop/storefront/internal/domain"
	"github.com/webshop/storefront/internal/order"
	"github.com/webshop/storefront/internal/transport"
)

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: 7, Name: "Mirrorless camera", Price: price("10.00"), Category: "cameras"},
		{ID: 8, Name: "Laptop stand", Price: price("5.00"), Category: "accessories"},
		{ID: 9, Name: "Aperture lens", Price: price("250.00"), Category: "cameras"},
	}
}

type clientStack struct {
	catalog *catalog.Client
	cart    *cart.Store
	orders  *order.Coordinator
}

// newStack builds the whole client side against the test server, the way
// main() wires it. Each stack has its own cookie jar, i.e. its own cart.
func newStack(t *testing.T, baseURL string) clientStack {
	t.Helper()
	stack, _ := newStackWithClient(t, baseURL)
	return stack
}

func newStackWithClient(t *testing.T, baseURL string) (clientStack, *transport.Client) {
	t.Helper()
	client, err := transport.New(baseURL+"/api", 2*time.Second, zap.NewNop())
	require.NoError(t, err)
	products, err := catalog.New(client, 16)
	require.NoError(t, err)
	store := cart.NewStore(client, products, zap.NewNop())
	return clientStack{
		catalog: products,
		cart:    store,
		orders:  order.NewCoordinator(client, store, zap.NewNop()),
	}, client
}

func newTestServer(t *testing.T) (*httptest.Server, *Store) {
	t.Helper()
	store := NewStore(testProducts())
	srv := httptest.NewServer(New(store, zap.NewNop()).Handler())
	t.Cleanup(srv.Close)
	return srv, store
}

func TestCatalogEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)
	stack := newStack(t, srv.URL)
	ctx := context.Background()

	t.Run("price ascending", func(t *testing.T) {
		products, err := stack.catalog.Products(ctx, catalog.SortPriceAsc, "")
		require.NoError(t, err)
		require.Len(t, products, 3)
		require.Equal(t, int64(8), products[0].ID)
		require.Equal(t, int64(9), products[2].ID)
	})

	t.Run("category filter", func(t *testing.T) {
		products, err := stack.catalog.Products(ctx, catalog.SortAlphaAsc, "cameras")
		require.NoError(t, err)
		require.Len(t, products, 2)
		require.Equal(t, "Aperture lens", products[0].Name)
		require.Equal(t, "Mirrorless camera", products[1].Name)
	})

	t.Run("by id", func(t *testing.T) {
		p, err := stack.catalog.Product(ctx, 9)
		require.NoError(t, err)
		require.Equal(t, "Aperture lens", p.Name)
	})

	t.Run("unknown id carries feedback message", func(t *testing.T) {
		_, err := stack.catalog.Product(ctx, 404)
		require.Error(t, err)

		var apiErr *transport.Error
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, "product not found", apiErr.Message)
	})
}

func TestCartFlow(t *testing.T) {
	srv, _ := newTestServer(t)
	stack := newStack(t, srv.URL)
	ctx := context.Background()

	require.NoError(t, stack.cart.AddItem(ctx, 7, 2))
	require.NoError(t, stack.cart.AddItem(ctx, 8, 1))

	// Adding the same product again merges into the existing line.
	require.NoError(t, stack.cart.AddItem(ctx, 7, 1))

	lines, err := stack.cart.Lines(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []domain.CartLine{
		{ProductID: 7, Quantity: 3},
		{ProductID: 8, Quantity: 1},
	}, lines)

	count, err := stack.cart.ItemsCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 4, count)

	items, err := stack.cart.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	// Catalog order is alphabetical: "Laptop stand" before "Mirrorless camera".
	require.Equal(t, "Laptop stand", items[0].Product.Name)
	require.True(t, items[0].Total.Equal(price("5.00")))
	require.Equal(t, "Mirrorless camera", items[1].Product.Name)
	require.True(t, items[1].Total.Equal(price("30.00")))

	require.NoError(t, stack.cart.RemoveItem(ctx, 8))
	require.NoError(t, stack.cart.RemoveAllItems(ctx))

	lines, err = stack.cart.Lines(ctx)
	require.NoError(t, err)
	require.Empty(t, lines)
}

func TestAddUnknownProduct(t *testing.T) {
	srv, _ := newTestServer(t)
	stack := newStack(t, srv.URL)

	err := stack.cart.AddItem(context.Background(), 404, 1)
	require.Error(t, err)

	var apiErr *transport.Error
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, "product not found", apiErr.Message)
}

func TestCheckout(t *testing.T) {
	srv, serverStore := newTestServer(t)
	stack := newStack(t, srv.URL)
	ctx := context.Background()

	require.NoError(t, stack.cart.AddItem(ctx, 7, 2))

	contact := domain.ContactInfo{
		FirstName: "A",
		LastName:  "B",
		Email:     "a.b@example.com",
		Phone:     "555-0100",
	}
	submitted, err := stack.orders.CreateOrder(ctx, contact)
	require.NoError(t, err)
	require.Equal(t, int64(1), submitted.ID)
	require.Equal(t, []domain.OrderProduct{{ID: 7, Quantity: 2}}, submitted.Products)

	// Cart was cleared once the order went through.
	lines, err := stack.cart.Lines(ctx)
	require.NoError(t, err)
	require.Empty(t, lines)

	// The order landed server-side, and the next one gets id 2.
	require.Len(t, serverStore.Orders(), 1)

	require.NoError(t, stack.cart.AddItem(ctx, 8, 1))
	second, err := stack.orders.CreateOrder(ctx, contact)
	require.NoError(t, err)
	require.Equal(t, int64(2), second.ID)

	listed, err := stack.orders.Orders(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
}

func TestInvalidOrderRejected(t *testing.T) {
	srv, serverStore := newTestServer(t)
	stack := newStack(t, srv.URL)
	ctx := context.Background()

	require.NoError(t, stack.cart.AddItem(ctx, 7, 1))

	// Missing contact name: the server rejects, the cart must stay intact.
	_, err := stack.orders.CreateOrder(ctx, domain.ContactInfo{Email: "x@example.com"})
	require.Error(t, err)

	var apiErr *transport.Error
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, "contact name is required", apiErr.Message)

	lines, err := stack.cart.Lines(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.CartLine{{ProductID: 7, Quantity: 1}}, lines)
	require.Empty(t, serverStore.Orders())
}

func TestCartsAreSessionScoped(t *testing.T) {
	srv, _ := newTestServer(t)
	first := newStack(t, srv.URL)
	second := newStack(t, srv.URL)
	ctx := context.Background()

	require.NoError(t, first.cart.AddItem(ctx, 7, 1))

	lines, err := second.cart.Lines(ctx)
	require.NoError(t, err)
	require.Empty(t, lines, "each session has its own cart")
}

func TestRestoredSessionKeepsCart(t *testing.T) {
	srv, _ := newTestServer(t)
	ctx := context.Background()

	// First process: add to the cart, then save the session cookie the way
	// the CLI does on exit.
	first, firstClient := newStackWithClient(t, srv.URL)
	require.NoError(t, first.cart.AddItem(ctx, 7, 2))
	saved := firstClient.Cookies()
	require.NotEmpty(t, saved)

	// Second process: a fresh stack seeded with the saved cookie sees the
	// same cart and can check it out.
	second, secondClient := newStackWithClient(t, srv.URL)
	secondClient.SetCookies(saved)

	lines, err := second.cart.Lines(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.CartLine{{ProductID: 7, Quantity: 2}}, lines)

	submitted, err := second.orders.CreateOrder(ctx, domain.ContactInfo{
		FirstName: "A",
		LastName:  "B",
		Email:     "a.b@example.com",
		Phone:     "555-0100",
	})
	require.NoError(t, err)
	require.Equal(t, []domain.OrderProduct{{ID: 7, Quantity: 2}}, submitted.Products)
}
