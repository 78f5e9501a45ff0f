package models

import "time"

// OrderItem is a snapshot of a product at purchase time. It is a copy of the
// catalog row, not a reference to it, so later product edits never change
// what the customer bought.
type OrderItem struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Photo       string  `json:"photo,omitempty"`
	Description string  `json:"description,omitempty"`
}

type Order struct {
	ID           int         `json:"id"`
	CustomerName string      `json:"customerName"`
	Email        string      `json:"email"`
	Address      string      `json:"address"`
	City         string      `json:"city"`
	Zip          string      `json:"zip"`
	Items        []OrderItem `json:"items"`
	Total        float64     `json:"total"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
}

const (
	OrderStatusPending  = "pending"
	OrderStatusAccepted = "accepted"
	// "rejected" is never stored: a reject request deletes the order instead.
	OrderStatusRejected = "rejected"
)
