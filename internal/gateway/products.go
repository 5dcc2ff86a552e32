package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"cute-storefront/internal/domain"
)

// ProductRequest is the product creation payload.
type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Stock       int     `json:"stock"`
	IsActive    bool    `json:"isActive"`
}

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	env, err := c.do(ctx, http.MethodGet, "/products", nil)
	if err != nil {
		return nil, err
	}
	var products []domain.Product
	if err := decodeData(env, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	env, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil)
	if err != nil {
		return nil, err
	}
	var product domain.Product
	if err := decodeData(env, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, in ProductRequest) (*domain.Product, error) {
	env, err := c.do(ctx, http.MethodPost, "/products", in)
	if err != nil {
		return nil, err
	}
	var product domain.Product
	if err := decodeData(env, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UploadProductImage attaches an image to a product via multipart upload.
func (c *Client) UploadProductImage(ctx context.Context, productID int64, filename string, file io.Reader, isMain bool, order int) (*domain.Product, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copy image payload: %w", err)
	}
	if err := writer.WriteField("isMain", strconv.FormatBool(isMain)); err != nil {
		return nil, err
	}
	if err := writer.WriteField("order", strconv.Itoa(order)); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/products/%d/images", c.baseURL, productID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload product image: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode upload response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Code: env.Code, Message: env.Message, FieldErrors: env.FieldErrors}
	}

	var product domain.Product
	if err := decodeData(&env, &product); err != nil {
		return nil, err
	}
	return &product, nil
}
