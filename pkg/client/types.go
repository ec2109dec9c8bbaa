package client

import "time"

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

// ProductInput is the body for product create and update. Set either
// Category (free-text, created on the server if new) or CategoryID.
type ProductInput struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category,omitempty"`
	CategoryID  int64   `json:"category_id,omitempty"`
	Stock       int64   `json:"stock"`
	Currency    string  `json:"currency"`
}

type Category struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ProductCount int64  `json:"product_count,omitempty"`
}

type CartItem struct {
	ID        int64 `json:"id"`
	UserID    int64 `json:"user_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
	Updated   bool  `json:"updated"`
}

type CartLine struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	ProductID int64   `json:"product_id"`
	Quantity  int64   `json:"quantity"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
	Stock     int64   `json:"stock"`
	ImageURL  string  `json:"image_url"`
}

type QuantityUpdate struct {
	Removed  bool  `json:"removed,omitempty"`
	Updated  bool  `json:"updated,omitempty"`
	Quantity int64 `json:"quantity,omitempty"`
}

type Favorite struct {
	ID        int64 `json:"id"`
	UserID    int64 `json:"user_id"`
	ProductID int64 `json:"product_id"`
}

type deleteResponse struct {
	Removed bool `json:"removed"`
}
