package domain

import "time"

// Order links a user to a purchased product. The table exists in the schema
// and carries foreign keys to users and products, but no endpoint exposes it
// yet; the type is part of the data model only.
type Order struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	ProductID  int64     `json:"product_id"`
	Quantity   int       `json:"quantity"`
	TotalPrice float64   `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}
