package domain

import "time"

type OrderItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// OrderRequest is the snapshot of the cart sent to the commerce API at
// checkout time. It is derived and never stored locally.
type OrderRequest struct {
	UserID int64              `json:"userId"`
	Items  []OrderItemRequest `json:"items"`
}

type OrderItem struct {
	ID          int64   `json:"id"`
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Subtotal    float64 `json:"subtotal"`
}

type OrderTransaction struct {
	ID            int64   `json:"id"`
	Provider      string  `json:"provider"`
	ExternalID    string  `json:"externalId"`
	Status        string  `json:"status"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	PaymentMethod string  `json:"paymentMethod"`
}

type Order struct {
	ID           int64              `json:"id"`
	UserID       int64              `json:"userId"`
	Status       string             `json:"status"`
	TotalAmount  float64            `json:"totalAmount"`
	CreatedAt    *time.Time         `json:"createdAt,omitempty"`
	UpdatedAt    *time.Time         `json:"updatedAt,omitempty"`
	Items        []OrderItem        `json:"items"`
	Transactions []OrderTransaction `json:"transactions,omitempty"`
}
