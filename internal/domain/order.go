package domain

import "time"

// Order is an immutable record of a completed checkout. Items carry copies of
// the product data taken at submission time, never references into the
// catalog, so later catalog edits cannot alter order history.
type Order struct {
	ID        string      `json:"id"`
	Customer  Customer    `json:"customer"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Customer holds the contact and shipping fields collected at checkout.
type Customer struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Address   string `json:"address" binding:"required"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
	Zip       string `json:"zip" binding:"required"`
	Country   string `json:"country" binding:"required"`
}

// OrderItem is a point-in-time snapshot of one cart line.
type OrderItem struct {
	ProductID string  `json:"id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price" binding:"gte=0"`
	Quantity  int     `json:"quantity" binding:"gte=1"`
}
