package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/webshop/storefront/internal/cart"
	"github.com/webshop/storefront/internal/catalog"
	"github.com/webshop/storefront/internal/config"
	"github.com/webshop/storefront/internal/domain"
	"github.com/webshop/storefront/internal/order"
	"github.com/webshop/storefront/internal/transport"
)

const usage = `usage: storefront <command> [args]

commands:
  products [sort] [category]                list the catalog
  cart                                      show cart contents and total
  count                                     show cart items count
  add <productID> [quantity]                add a product to the cart
  update <productID> <quantity>             set a line's quantity
  remove <productID>                        remove a line
  clear                                     empty the cart
  checkout <first> <last> <email> <phone>   submit the order
  orders                                    list submitted orders
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	client, err := transport.New(cfg.APIURL, cfg.HTTPTimeout, logger)
	if err != nil {
		logger.Fatal("transport", zap.Error(err))
	}
	// Each command is its own process; without the saved cookie the server
	// would hand every run a brand-new cart.
	loadSession(cfg.SessionFile, client)
	products, err := catalog.New(client, cfg.CatalogCacheCap)
	if err != nil {
		logger.Fatal("catalog", zap.Error(err))
	}
	store := cart.NewStore(client, products, logger)
	orders := order.NewCoordinator(client, store, logger)

	// The badge: report the items count whenever the cart signals a change,
	// the way the page header does.
	sub := store.Subscribe()
	defer sub.Unsubscribe()

	ctx := context.Background()
	if err := run(ctx, os.Args[1:], products, store, orders); err != nil {
		saveSession(cfg.SessionFile, client, logger)
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	select {
	case <-sub.C:
		if n, err := store.ItemsCount(ctx); err == nil {
			fmt.Printf("cart: %d item(s)\n", n)
		}
	default:
	}
	saveSession(cfg.SessionFile, client, logger)
}

// sessionCookie is the on-disk form of one saved cookie.
type sessionCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func loadSession(path string, client *transport.Client) {
	data, err := os.ReadFile(path)
	if err != nil {
		return // first run
	}
	var saved []sessionCookie
	if err := json.Unmarshal(data, &saved); err != nil {
		return
	}
	cookies := make([]*http.Cookie, 0, len(saved))
	for _, c := range saved {
		cookies = append(cookies, &http.Cookie{Name: c.Name, Value: c.Value})
	}
	client.SetCookies(cookies)
}

func saveSession(path string, client *transport.Client, logger *zap.Logger) {
	cookies := client.Cookies()
	if len(cookies) == 0 {
		return
	}
	saved := make([]sessionCookie, 0, len(cookies))
	for _, c := range cookies {
		saved = append(saved, sessionCookie{Name: c.Name, Value: c.Value})
	}
	data, err := json.Marshal(saved)
	if err != nil {
		logger.Warn("encode session", zap.Error(err))
		return
	}
	if dir := filepath.Dir(path); dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		logger.Warn("save session", zap.String("path", path), zap.Error(err))
	}
}

func run(ctx context.Context, args []string, products *catalog.Client, store *cart.Store, orders *order.Coordinator) error {
	switch args[0] {
	case "products":
		sortBy := catalog.SortPriceAsc
		category := "all"
		if len(args) > 1 {
			sortBy = args[1]
		}
		if len(args) > 2 {
			category = args[2]
		}
		list, err := products.Products(ctx, sortBy, category)
		if err != nil {
			return err
		}
		for _, p := range list {
			fmt.Printf("%4d  %-40s %10s  %s\n", p.ID, p.Name, p.Price.StringFixed(2), p.Category)
		}
		return nil

	case "cart":
		items, err := store.Items(ctx)
		if err != nil {
			return err
		}
		total := decimal.Zero
		for _, item := range items {
			fmt.Printf("%4d  %-40s x%-3d %10s\n", item.Product.ID, item.Product.Name, item.Quantity, item.Total.StringFixed(2))
			total = total.Add(item.Total)
		}
		fmt.Printf("total: %s\n", total.StringFixed(2))
		return nil

	case "count":
		n, err := store.ItemsCount(ctx)
		if err != nil {
			return err
		}
		fmt.Println(n)
		return nil

	case "add":
		if len(args) < 2 {
			return fmt.Errorf("add: product id required")
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("add: invalid product id %q", args[1])
		}
		quantity := 1
		if len(args) > 2 {
			if quantity, err = strconv.Atoi(args[2]); err != nil {
				return fmt.Errorf("add: invalid quantity %q", args[2])
			}
		}
		// Same guard the product page applies: the store itself does not
		// police quantities.
		if quantity <= 0 {
			quantity = 1
		}
		return store.AddItem(ctx, id, quantity)

	case "update":
		if len(args) < 3 {
			return fmt.Errorf("update: product id and quantity required")
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("update: invalid product id %q", args[1])
		}
		quantity, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("update: invalid quantity %q", args[2])
		}
		return store.UpdateItemQuantity(ctx, id, quantity)

	case "remove":
		if len(args) < 2 {
			return fmt.Errorf("remove: product id required")
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("remove: invalid product id %q", args[1])
		}
		return store.RemoveItem(ctx, id)

	case "clear":
		return store.RemoveAllItems(ctx)

	case "checkout":
		if len(args) < 5 {
			return fmt.Errorf("checkout: first, last, email and phone required")
		}
		o, err := orders.CreateOrder(ctx, domain.ContactInfo{
			FirstName: args[1],
			LastName:  args[2],
			Email:     args[3],
			Phone:     args[4],
		})
		if err != nil {
			return err
		}
		fmt.Printf("order confirmed: #%d for %s %s\n", o.ID, o.FirstName, o.LastName)
		return nil

	case "orders":
		list, err := orders.Orders(ctx)
		if err != nil {
			return err
		}
		for _, o := range list {
			fmt.Printf("#%-4d %s %s  %d product(s)\n", o.ID, o.FirstName, o.LastName, len(o.Products))
		}
		return nil

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}
