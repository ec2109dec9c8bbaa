package client

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category

	if err := c.do(ctx, http.MethodGet, "/categories", nil, &categories, false); err != nil {
		return nil, err
	}

	return categories, nil
}

func (c *Client) Category(ctx context.Context, id int64) (*Category, error) {
	category := &Category{}

	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/categories/%d", id), nil, category, false); err != nil {
		return nil, err
	}

	return category, nil
}

func (c *Client) CategoryProducts(ctx context.Context, id int64) ([]Product, error) {
	var products []Product

	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/categories/%d/products", id), nil, &products, false); err != nil {
		return nil, err
	}

	return products, nil
}

// CreateCategory requires an admin token.
func (c *Client) CreateCategory(ctx context.Context, name string) (*Category, error) {
	category := &Category{}

	if err := c.do(ctx, http.MethodPost, "/categories", map[string]string{"name": name}, category, true); err != nil {
		return nil, err
	}

	return category, nil
}

// RenameCategory requires an admin token.
func (c *Client) RenameCategory(ctx context.Context, id int64, name string) (*Category, error) {
	category := &Category{}

	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/categories/%d", id), map[string]string{"name": name}, category, true); err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory requires an admin token.
func (c *Client) DeleteCategory(ctx context.Context, id int64) (bool, error) {
	var out deleteResponse

	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil, &out, true); err != nil {
		return false, err
	}

	return out.Removed, nil
}
