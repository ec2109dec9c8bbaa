package models

// CartItem is the persisted row, unique per (user, product).
type CartItem struct {
	ID        int64 `json:"id"`
	UserID    int64 `json:"user_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
	// Updated is true when AddToCart merged into an existing row instead of
	// inserting a new one.
	Updated bool `json:"updated"`
}

// CartLine is a cart row joined with its product's display fields.
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

type AddToCartRequest struct {
	Quantity int64 `json:"quantity" validate:"omitempty,min=1"`
}

type UpdateQuantityRequest struct {
	Quantity int64 `json:"quantity" validate:"min=0"`
}

type UpdateQuantityResponse struct {
	Removed  bool  `json:"removed,omitempty"`
	Updated  bool  `json:"updated,omitempty"`
	Quantity int64 `json:"quantity,omitempty"`
}
