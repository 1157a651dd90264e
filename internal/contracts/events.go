package contracts

import "time"

const (
	OrderCreatedKey       = "orders.created"
	OrderStatusChangedKey = "orders.status-changed"
)

type OrderCreatedEvent struct {
	EventID     string    `json:"event_id"`
	OrderID     int       `json:"order_id"`
	UserID      int       `json:"user_id"`
	TotalAmount string    `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

type OrderStatusChangedEvent struct {
	EventID   string    `json:"event_id"`
	OrderID   int       `json:"order_id"`
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
}
