// Package apitest provides an in-memory products API for tests.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gclaussn/go-product-demo/http/common"
	"github.com/gclaussn/go-product-demo/product"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// New starts a server, which is closed when the test and all its subtests complete.
func New(t *testing.T) *Server {
	s := &Server{
		faults:   make(map[string]fault),
		products: make(map[product.Id]product.Product),
	}

	r := chi.NewRouter()
	r.Use(s.record)

	r.Post(common.PathProducts, s.createProduct)
	r.Get(common.PathProducts, s.listProducts)
	r.Get(common.PathProductsSearch, s.searchProducts)
	r.Get(common.PathProductsId, s.getProduct)
	r.Put(common.PathProductsId, s.updateProduct)
	r.Delete(common.PathProductsId, s.deleteProduct)

	s.httpServer = httptest.NewServer(r)
	t.Cleanup(s.httpServer.Close)

	return s
}

// UnreachableURL returns the URL of a server, which has already been closed.
func UnreachableURL(t *testing.T) string {
	t.Helper()

	s := httptest.NewServer(http.NotFoundHandler())
	url := s.URL
	s.Close()
	return url
}

type Server struct {
	httpServer *httptest.Server

	mu       sync.Mutex
	faults   map[string]fault
	journal  []string
	order    []product.Id
	products map[product.Id]product.Product
}

type fault struct {
	statusCode int
	body       string
}

func (s *Server) URL() string {
	return s.httpServer.URL
}

// Fail answers each request, matching method and escaped path (e.g. "GET /api/products"), with the given status code and body.
func (s *Server) Fail(request string, statusCode int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.faults[request] = fault{statusCode: statusCode, body: body}
}

// Journal returns all received requests as "METHOD /escaped/path".
func (s *Server) Journal() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.journal)
}

// Products returns all stored products in the order of creation.
func (s *Server) Products() []product.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]product.Product, 0, len(s.order))
	for _, id := range s.order {
		products = append(products, s.products[id])
	}
	return products
}

// Seed stores products. Products without ID get a generated one.
func (s *Server) Seed(products ...product.Product) []product.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	seeded := make([]product.Product, len(products))
	for i, p := range products {
		seeded[i] = s.store(p)
	}
	return seeded
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		request := r.Method + " " + r.URL.EscapedPath()

		s.mu.Lock()
		s.journal = append(s.journal, request)
		f, ok := s.faults[request]
		s.mu.Unlock()

		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set(common.HeaderContentType, common.ContentTypeJson)
		w.WriteHeader(f.statusCode)
		w.Write([]byte(f.body))
	})
}

func (s *Server) store(p product.Product) product.Product {
	now := time.Now().UTC().Truncate(time.Millisecond)

	if p.Id.IsZero() {
		p.Id = product.Id(strings.ReplaceAll(uuid.NewString(), "-", ""))
	}
	if p.CreatedAt == nil {
		p.CreatedAt = &now
	}
	if p.UpdatedAt == nil {
		p.UpdatedAt = &now
	}

	if _, ok := s.products[p.Id]; !ok {
		s.order = append(s.order, p.Id)
	}
	s.products[p.Id] = p
	return p
}

// handler

func (s *Server) createProduct(w http.ResponseWriter, r *http.Request) {
	var cmd product.CreateProductCmd
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		encodeJSONResponseBody(w, common.ErrorRes{Message: "invalid request body", Error: err.Error()}, http.StatusBadRequest)
		return
	}
	if cmd.Name == "" {
		encodeJSONResponseBody(w, common.ErrorRes{Message: "name is required"}, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	p := s.store(product.Product{Name: cmd.Name, Category: cmd.Category, Price: cmd.Price})
	s.mu.Unlock()

	encodeJSONResponseBody(w, common.ProductRes{Success: true, Data: p}, http.StatusCreated)
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id := product.Id(chi.URLParam(r, "id"))

	s.mu.Lock()
	_, ok := s.products[id]
	if ok {
		delete(s.products, id)
		s.order = slices.DeleteFunc(s.order, func(v product.Id) bool { return v == id })
	}
	s.mu.Unlock()

	if !ok {
		encodeJSONResponseBody(w, common.ErrorRes{Message: "Product not found"}, http.StatusNotFound)
		return
	}

	encodeJSONResponseBody(w, common.MessageRes{Success: true, Message: "Product deleted successfully"}, http.StatusOK)
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	id := product.Id(chi.URLParam(r, "id"))

	s.mu.Lock()
	p, ok := s.products[id]
	s.mu.Unlock()

	if !ok {
		encodeJSONResponseBody(w, common.ErrorRes{Message: "Product not found"}, http.StatusNotFound)
		return
	}

	encodeJSONResponseBody(w, common.ProductRes{Success: true, Data: p}, http.StatusOK)
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	products := s.Products()
	encodeJSONResponseBody(w, common.ProductsRes{Success: true, Count: len(products), Data: products}, http.StatusOK)
}

func (s *Server) searchProducts(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	results := make([]product.Product, 0)
	for _, p := range s.Products() {
		if strings.EqualFold(p.Category, category) {
			results = append(results, p)
		}
	}

	encodeJSONResponseBody(w, common.ProductsRes{Success: true, Count: len(results), Data: results}, http.StatusOK)
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	id := product.Id(chi.URLParam(r, "id"))

	var cmd product.UpdateProductCmd
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		encodeJSONResponseBody(w, common.ErrorRes{Message: "invalid request body", Error: err.Error()}, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	p, ok := s.products[id]
	if ok {
		now := time.Now().UTC().Truncate(time.Millisecond)

		p.Name = cmd.Name
		p.Category = cmd.Category
		p.Price = cmd.Price
		p.UpdatedAt = &now
		p = s.store(p)
	}
	s.mu.Unlock()

	if !ok {
		encodeJSONResponseBody(w, common.ErrorRes{Message: "Product not found"}, http.StatusNotFound)
		return
	}

	encodeJSONResponseBody(w, common.ProductRes{Success: true, Data: p}, http.StatusOK)
}

func encodeJSONResponseBody(w http.ResponseWriter, v any, statusCode int) {
	w.Header().Set(common.HeaderContentType, common.ContentTypeJson)
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(v)
}
