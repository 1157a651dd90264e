package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"shoplite/internal/metrics"
	"shoplite/internal/order"
)

type OrdersServer struct {
	orders *order.Service
	logger *slog.Logger
	mux    *http.ServeMux
}

func NewOrdersServer(orders *order.Service, logger *slog.Logger, m *metrics.ServerMetrics) *OrdersServer {
	s := &OrdersServer{
		orders: orders,
		logger: logger,
		mux:    http.NewServeMux(),
	}

	s.routes(m)
	return s
}

func (s *OrdersServer) routes(m *metrics.ServerMetrics) {
	s.mux.HandleFunc("GET /orders", s.listOrders)
	s.mux.HandleFunc("GET /orders/{id}", s.getOrder)
	s.mux.HandleFunc("GET /orders/user/{userID}", s.listUserOrders)
	s.mux.HandleFunc("POST /orders", s.createOrder)
	s.mux.HandleFunc("PUT /orders/{id}/status", s.updateStatus)
	s.mux.HandleFunc("GET /healthz", health)
	s.mux.Handle("GET /metrics", m.Handler())
}

// HandleFunc exposes the mux for extra routes wired up by the app, such as
// the websocket endpoint.
func (s *OrdersServer) HandleFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.mux.HandleFunc(pattern, handler)
}

func (s *OrdersServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *OrdersServer) listOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.orders.List(r.Context()))
}

func (s *OrdersServer) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := intPathValue(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	o, err := s.orders.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			writeError(w, http.StatusNotFound, "order not found")
			return
		}
		s.logger.Error("get order", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, o)
}

func (s *OrdersServer) listUserOrders(w http.ResponseWriter, r *http.Request) {
	userID, err := intPathValue(r, "userID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	writeJSON(w, http.StatusOK, s.orders.ListByUser(r.Context(), userID))
}

func (s *OrdersServer) createOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID int          `json:"userId"`
		Items  []order.Item `json:"items"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	o := s.orders.Create(r.Context(), req.UserID, req.Items)

	w.Header().Set("Location", fmt.Sprintf("/orders/%d", o.ID))
	writeJSON(w, http.StatusCreated, o)
}

func (s *OrdersServer) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := intPathValue(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	// The body is a bare JSON string, e.g. "Shipped".
	var status string
	if err := json.NewDecoder(r.Body).Decode(&status); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	o, err := s.orders.UpdateStatus(r.Context(), id, order.Status(status))
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			writeError(w, http.StatusNotFound, "order not found")
			return
		}
		s.logger.Error("update order status", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, o)
}

func health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
