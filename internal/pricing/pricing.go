// Package pricing derives checkout totals from cart contents.
package pricing

import "shophub/internal/cart"

// TaxRate is the flat tax applied to every order.
const TaxRate = 0.10

// Summary breaks a cart down into the figures shown at checkout. Values are
// unrounded; callers format them for display.
type Summary struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Summarize computes subtotal, tax and total over the given lines using the
// snapshot prices held in each line.
func Summarize(lines []cart.Line) Summary {
	var subtotal float64
	for _, l := range lines {
		subtotal += l.Product.Price * float64(l.Quantity)
	}
	tax := subtotal * TaxRate
	return Summary{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}
