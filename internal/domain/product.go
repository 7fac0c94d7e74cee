package domain

import "time"

// Product is a catalog entry. The storefront only ever reads it; writes come
// from the seed and importer tooling.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Rating      float64   `json:"rating"`
	Reviews     int       `json:"reviews"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
