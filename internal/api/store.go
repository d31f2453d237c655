package api

import (
	"sort"
	"strings"
	"sync"

	"github.com/webshop/storefront/internal/domain"
)

// Store holds the dev server's state in memory: the product catalog, one cart
// per session, and the submitted orders.
type Store struct {
	mu       sync.Mutex
	products []domain.Product
	carts    map[string][]domain.CartLine
	orders   []domain.Order
}

func NewStore(products []domain.Product) *Store {
	return &Store{
		products: products,
		carts:    make(map[string][]domain.CartLine),
	}
}

// Products returns the catalog filtered by category ("" or "all" keeps
// everything) and sorted per the criteria string.
func (s *Store) Products(sortBy, category string) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		out = append(out, p)
	}

	switch sortBy {
	case "alpha-desc":
		sort.Slice(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) > strings.ToLower(out[j].Name)
		})
	case "price-asc":
		sort.Slice(out, func(i, j int) bool {
			return out[i].Price.LessThan(out[j].Price)
		})
	case "price-desc":
		sort.Slice(out, func(i, j int) bool {
			return out[j].Price.LessThan(out[i].Price)
		})
	default: // alpha-asc
		sort.Slice(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	}
	return out
}

func (s *Store) Product(id int64) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (s *Store) CartLines(session string) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CartLine(nil), s.carts[session]...)
}

func (s *Store) AddCartLine(session string, line domain.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[session] = append(s.carts[session], line)
}

func (s *Store) UpdateCartLine(session string, productID int64, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[session]
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = quantity
			return true
		}
	}
	return false
}

func (s *Store) RemoveCartLine(session string, productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[session]
	for i := range lines {
		if lines[i].ProductID == productID {
			s.carts[session] = append(lines[:i], lines[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) ClearCart(session string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, session)
}

func (s *Store) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Order(nil), s.orders...)
}

func (s *Store) AddOrder(o domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, o)
}
