package client

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var products []Product

	if err := c.do(ctx, http.MethodGet, "/products", nil, &products, false); err != nil {
		return nil, err
	}

	return products, nil
}

func (c *Client) Product(ctx context.Context, id int64) (*Product, error) {
	product := &Product{}

	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, product, false); err != nil {
		return nil, err
	}

	return product, nil
}

// MyProducts lists the products owned by the logged-in user.
func (c *Client) MyProducts(ctx context.Context) ([]Product, error) {
	var products []Product

	if err := c.do(ctx, http.MethodGet, "/products/me", nil, &products, true); err != nil {
		return nil, err
	}

	return products, nil
}

func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (*Product, error) {
	product := &Product{}

	if err := c.do(ctx, http.MethodPost, "/products", input, product, true); err != nil {
		return nil, err
	}

	return product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, input ProductInput) (*Product, error) {
	product := &Product{}

	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), input, product, true); err != nil {
		return nil, err
	}

	return product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) (bool, error) {
	var out deleteResponse

	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, &out, true); err != nil {
		return false, err
	}

	return out.Removed, nil
}
