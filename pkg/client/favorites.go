package client

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) Favorites(ctx context.Context) ([]Product, error) {
	var products []Product

	if err := c.do(ctx, http.MethodGet, "/favorites", nil, &products, true); err != nil {
		return nil, err
	}

	return products, nil
}

// AddFavorite marks a product as a favorite. Adding the same product
// twice returns the existing entry.
func (c *Client) AddFavorite(ctx context.Context, productID int64) (*Favorite, error) {
	favorite := &Favorite{}

	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/favorites/%d", productID), nil, favorite, true); err != nil {
		return nil, err
	}

	return favorite, nil
}

func (c *Client) RemoveFavorite(ctx context.Context, productID int64) (bool, error) {
	var out deleteResponse

	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/favorites/%d", productID), nil, &out, true); err != nil {
		return false, err
	}

	return out.Removed, nil
}
