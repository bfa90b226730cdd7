package model

import "time"

// SaleRecord represents one product-sale document as delivered by the seed
// dataset. It is a pure domain model with no database-specific dependencies or
// tags, so it can be shared across the seed, repository, and HTTP layers.
//
// The dataset identifier is not unique: re-seeding appends the whole dataset
// again, so multiple rows may carry the same ID.
type SaleRecord struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Sold        bool      `json:"sold"`
	DateOfSale  time.Time `json:"dateOfSale"`
}
