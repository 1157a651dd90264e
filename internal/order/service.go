package order

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"shoplite/internal/contracts"
	"shoplite/internal/messaging"

	"github.com/google/uuid"
)

// StatusListener receives status changes for live subscribers.
type StatusListener interface {
	BroadcastOrderUpdate(orderID int, status string)
}

// Service owns the order lifecycle: creation, lookups and status
// transitions, plus event fan-out for each mutation. Event delivery is
// best-effort and never fails the request.
type Service struct {
	store     *Store
	publisher messaging.Publisher
	listener  StatusListener
	logger    *slog.Logger
}

func NewService(store *Store, publisher messaging.Publisher, listener StatusListener, logger *slog.Logger) *Service {
	return &Service{
		store:     store,
		publisher: publisher,
		listener:  listener,
		logger:    logger,
	}
}

func (s *Service) Create(ctx context.Context, userID int, items []Item) Order {
	o := s.store.Create(userID, items)

	s.publish(ctx, contracts.OrderCreatedKey, contracts.OrderCreatedEvent{
		EventID:     uuid.New().String(),
		OrderID:     o.ID,
		UserID:      o.UserID,
		TotalAmount: o.TotalAmount.String(),
		CreatedAt:   o.CreatedAt,
	})

	return o
}

func (s *Service) Get(ctx context.Context, id int) (Order, error) {
	return s.store.Get(id)
}

func (s *Service) List(ctx context.Context) []Order {
	return s.store.List()
}

func (s *Service) ListByUser(ctx context.Context, userID int) []Order {
	return s.store.ListByUser(userID)
}

func (s *Service) UpdateStatus(ctx context.Context, id int, status Status) (Order, error) {
	o, err := s.store.UpdateStatus(id, status)
	if err != nil {
		return Order{}, err
	}

	if s.listener != nil {
		s.listener.BroadcastOrderUpdate(o.ID, string(o.Status))
	}

	s.publish(ctx, contracts.OrderStatusChangedKey, contracts.OrderStatusChangedEvent{
		EventID:   uuid.New().String(),
		OrderID:   o.ID,
		Status:    string(o.Status),
		ChangedAt: time.Now().UTC(),
	})

	return o, nil
}

func (s *Service) publish(ctx context.Context, routingKey string, event any) {
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal event", "routing_key", routingKey, "err", err)
		return
	}
	if err := s.publisher.Publish(ctx, routingKey, payload); err != nil {
		s.logger.Error("publish event", "routing_key", routingKey, "err", err)
	}
}
