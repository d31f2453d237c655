package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/webshop/storefront/internal/domain"
)

const sessionCookie = "storefront_session"

// Server is the development API behind the storefront client: the
// /shopping-cart, /orders and /products endpoints over an in-memory Store.
// The cart is scoped to a session cookie, matching the credentials-included
// contract the client relies on.
type Server struct {
	store  *Store
	logger *zap.Logger
	router chi.Router
}

func New(store *Store, logger *zap.Logger) *Server {
	s := &Server{
		store:  store,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLog)
	r.Route("/api", func(r chi.Router) {
		r.Get("/products", s.listProducts)
		r.Get("/products/{id}", s.getProduct)

		r.Get("/shopping-cart", s.listCartLines)
		r.Post("/shopping-cart", s.addCartLine)
		r.Put("/shopping-cart/{productID}", s.updateCartLine)
		r.Delete("/shopping-cart/", s.clearCart)
		r.Delete("/shopping-cart/{productID}", s.removeCartLine)

		r.Get("/orders", s.listOrders)
		r.Post("/orders", s.createOrder)
	})
	s.router = r
	return s
}

func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	return srv.ListenAndServe()
}

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("dur", time.Since(start)),
		)
	})
}

// session returns the cart identity for the request, minting a cookie on
// first contact.
func (s *Server) session(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
	})
	return id
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	sortBy := r.URL.Query().Get("sort")
	category := r.URL.Query().Get("category")
	writeJSON(w, s.store.Products(sortBy, category))
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeFeedback(w, http.StatusBadRequest, "invalid product id")
		return
	}
	p, ok := s.store.Product(id)
	if !ok {
		writeFeedback(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, p)
}

func (s *Server) listCartLines(w http.ResponseWriter, r *http.Request) {
	lines := s.store.CartLines(s.session(w, r))
	if lines == nil {
		lines = []domain.CartLine{}
	}
	writeJSON(w, lines)
}

func (s *Server) addCartLine(w http.ResponseWriter, r *http.Request) {
	var line domain.CartLine
	if err := decodeJSON(r, &line); err != nil {
		writeFeedback(w, http.StatusBadRequest, "bad json")
		return
	}
	if _, ok := s.store.Product(line.ProductID); !ok {
		writeFeedback(w, http.StatusNotFound, "product not found")
		return
	}
	s.store.AddCartLine(s.session(w, r), line)
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) updateCartLine(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		writeFeedback(w, http.StatusBadRequest, "invalid product id")
		return
	}
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeFeedback(w, http.StatusBadRequest, "bad json")
		return
	}
	if !s.store.UpdateCartLine(s.session(w, r), productID, body.Quantity) {
		writeFeedback(w, http.StatusNotFound, "product is not in the cart")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) removeCartLine(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		writeFeedback(w, http.StatusBadRequest, "invalid product id")
		return
	}
	if !s.store.RemoveCartLine(s.session(w, r), productID) {
		writeFeedback(w, http.StatusNotFound, "product is not in the cart")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) clearCart(w http.ResponseWriter, r *http.Request) {
	s.store.ClearCart(s.session(w, r))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	orders := s.store.Orders()
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, orders)
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	var order domain.Order
	if err := decodeJSON(r, &order); err != nil {
		writeFeedback(w, http.StatusBadRequest, "bad json")
		return
	}
	if err := validateOrder(order); err != nil {
		writeFeedback(w, http.StatusBadRequest, err.Error())
		return
	}
	s.store.AddOrder(order)
	s.logger.Info("order received",
		zap.Int64("order_id", order.ID),
		zap.Int("products", len(order.Products)),
	)
	w.WriteHeader(http.StatusCreated)
}

func validateOrder(order domain.Order) error {
	if order.FirstName == "" || order.LastName == "" {
		return errors.New("contact name is required")
	}
	if len(order.Products) == 0 {
		return errors.New("order has no products")
	}
	return nil
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}

func writeFeedback(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(struct {
		FeedbackMessage string `json:"feedbackMessage"`
	}{msg})
}
