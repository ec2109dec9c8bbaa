package client

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) Cart(ctx context.Context) ([]CartLine, error) {
	var lines []CartLine

	if err := c.do(ctx, http.MethodGet, "/cart", nil, &lines, true); err != nil {
		return nil, err
	}

	return lines, nil
}

// AddToCart adds quantity of a product, merging into an existing line.
func (c *Client) AddToCart(ctx context.Context, productID, quantity int64) (*CartItem, error) {
	item := &CartItem{}

	body := map[string]int64{"quantity": quantity}

	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/cart/%d", productID), body, item, true); err != nil {
		return nil, err
	}

	return item, nil
}

// SetQuantity replaces a line's quantity; zero removes the line.
func (c *Client) SetQuantity(ctx context.Context, productID, quantity int64) (*QuantityUpdate, error) {
	update := &QuantityUpdate{}

	body := map[string]int64{"quantity": quantity}

	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/cart/%d", productID), body, update, true); err != nil {
		return nil, err
	}

	return update, nil
}

func (c *Client) RemoveFromCart(ctx context.Context, productID int64) (bool, error) {
	var out deleteResponse

	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/cart/%d", productID), nil, &out, true); err != nil {
		return false, err
	}

	return out.Removed, nil
}
