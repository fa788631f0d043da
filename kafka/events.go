package kafka

import "time"

// CheckedOutLine is one cart line as captured at checkout time
type CheckedOutLine struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// CartCheckedOutEvent represents a shopper requesting a checkout summary
type CartCheckedOutEvent struct {
	EventID    string           `json:"event_id"`
	EventType  string           `json:"event_type"`
	SessionID  string           `json:"session_id"`
	Lines      []CheckedOutLine `json:"lines"`
	TotalItems int              `json:"total_items"`
	TotalPrice float64          `json:"total_price"`
	Timestamp  time.Time        `json:"timestamp"`
}

// Event types
const (
	EventTypeCartCheckedOut = "cart.checked_out"
)

// Kafka topics
const (
	TopicCartCheckedOut = "cart-checked-out"
)
