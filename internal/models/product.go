package models

import "time"

type Category struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ProductCount int64  `json:"product_count,omitempty"`
}

type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	Stock       int64     `json:"stock"`
	ImageURL    string    `json:"image_url"`
	CategoryID  int64     `json:"category_id"`
	Category    string    `json:"category,omitempty"`
	UserID      *int64    `json:"user_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductRequest is the body of both POST and PUT /products: updates are
// full-row, so the two share a shape. Exactly one of Category/CategoryID
// must be present; the service enforces that, not the validator.
type ProductRequest struct {
	Name        string  `json:"name" validate:"required,min=3"`
	Price       float64 `json:"price" validate:"gte=0"`
	Description string  `json:"description" validate:"required,min=10"`
	ImageURL    string  `json:"image_url" validate:"required,url,min=10"`
	Category    string  `json:"category,omitempty" validate:"omitempty,min=3"`
	CategoryID  int64   `json:"category_id,omitempty" validate:"omitempty,min=1"`
	Stock       int64   `json:"stock" validate:"gte=0"`
	Currency    string  `json:"currency" validate:"required,min=3"`
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=3"`
}

type DeleteResponse struct {
	Removed bool `json:"removed"`
}
