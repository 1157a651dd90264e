package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"shoplite/internal/metrics"
	"shoplite/internal/product"

	"github.com/shopspring/decimal"
)

type ProductsServer struct {
	products *product.Store
	logger   *slog.Logger
	mux      *http.ServeMux
}

func NewProductsServer(products *product.Store, logger *slog.Logger, m *metrics.ServerMetrics) *ProductsServer {
	s := &ProductsServer{
		products: products,
		logger:   logger,
		mux:      http.NewServeMux(),
	}

	s.routes(m)
	return s
}

func (s *ProductsServer) routes(m *metrics.ServerMetrics) {
	s.mux.HandleFunc("GET /products", s.listProducts)
	s.mux.HandleFunc("GET /products/{id}", s.getProduct)
	s.mux.HandleFunc("POST /products", s.createProduct)
	s.mux.HandleFunc("GET /healthz", health)
	s.mux.Handle("GET /metrics", m.Handler())
}

func (s *ProductsServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *ProductsServer) listProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.products.List())
}

func (s *ProductsServer) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := intPathValue(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	p, err := s.products.Get(id)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		s.logger.Error("get product", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (s *ProductsServer) createProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name          string          `json:"name"`
		Description   string          `json:"description"`
		Price         decimal.Decimal `json:"price"`
		StockQuantity int             `json:"stockQuantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	p := s.products.Create(product.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
	})

	w.Header().Set("Location", fmt.Sprintf("/products/%d", p.ID))
	writeJSON(w, http.StatusCreated, p)
}
