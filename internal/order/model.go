package order

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Money fields serialize as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

type Status string

// Well-known lifecycle tags. The status-update endpoint accepts any string
// verbatim; these are for callers, not an enforced enumeration.
const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
)

type Order struct {
	ID          int             `json:"id"`
	UserID      int             `json:"userId"`
	Items       []Item          `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      Status          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Item is one line within an order. The unit price is whatever the caller
// supplied at creation time; it is not looked up from the product catalog.
type Item struct {
	ProductID int             `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}
