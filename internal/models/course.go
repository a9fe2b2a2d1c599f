package models

import (
	"strconv"
	"time"
)

// Course is the read-only parent record a landing page belongs to. The
// renderer uses its title/description as the hero fallback and its current
// price for CTA labels; price changes propagate to published pages on the
// next render.
type Course struct {
	ID          string    `json:"id" badgerhold:"key"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"` // EUR
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DisplayPrice formats the price for CTA labels: whole euros without
// decimals, otherwise two decimal places.
func (c *Course) DisplayPrice() string {
	if c.Price == float64(int64(c.Price)) {
		return strconv.FormatInt(int64(c.Price), 10)
	}
	return strconv.FormatFloat(c.Price, 'f', 2, 64)
}
