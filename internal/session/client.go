// Package session はブラウジング1セッション分のクライアント側オーケストレーション。
// サーバーが確定したカートだけを信じて、表示用の合計はそこから毎回計算し直す。
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	"app/internal/usecase"
)

// サーバーが返した {"error": ...}
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// 接続失敗・不正な応答などネットワーク境界の失敗
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// コアのAPI境界。HTTPの実装はClient、テストではモックを渡す。
type API interface {
	Seed(ctx context.Context) error
	ListRestaurants(ctx context.Context) ([]model.Restaurant, error)
	GetMenu(ctx context.Context, restaurantID string) ([]model.MenuItem, error)
	GetCart(ctx context.Context, userID string) (usecase.CartResponse, error)
	AddToCart(ctx context.Context, userID string, in usecase.AddItemInput) (usecase.CartResponse, error)
	ClearCart(ctx context.Context, userID string) (usecase.CartResponse, error)
	PlaceOrder(ctx context.Context, userID string, restaurantID string, address string) (usecase.OrderOutput, error)
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type addCartRequest struct {
	RestaurantID string  `json:"restaurant_id"`
	MenuItemID   string  `json:"menu_item_id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Quantity     int64   `json:"quantity"`
}

// totalは送らない（サーバーが計算し直すのでクライアント値は確定値にならない）
type placeOrderRequest struct {
	UserID       string `json:"user_id"`
	RestaurantID string `json:"restaurant_id"`
	Address      string `json:"address"`
}

func (c *Client) Seed(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/api/seed", nil, nil)
}

func (c *Client) ListRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	var out []model.Restaurant
	if err := c.doJSON(ctx, http.MethodGet, "/api/restaurants", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetMenu(ctx context.Context, restaurantID string) ([]model.MenuItem, error) {
	var out []model.MenuItem
	if err := c.doJSON(ctx, http.MethodGet, "/api/menu/"+restaurantID, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCart(ctx context.Context, userID string) (usecase.CartResponse, error) {
	var out usecase.CartResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/cart/"+userID, nil, &out); err != nil {
		return usecase.CartResponse{}, err
	}
	return out, nil
}

func (c *Client) AddToCart(ctx context.Context, userID string, in usecase.AddItemInput) (usecase.CartResponse, error) {
	req := addCartRequest{
		RestaurantID: in.RestaurantID,
		MenuItemID:   in.MenuItemID,
		Name:         in.Name,
		Price:        in.Price,
		Quantity:     in.Quantity,
	}

	var out usecase.CartResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/cart/"+userID+"/add", req, &out); err != nil {
		return usecase.CartResponse{}, err
	}
	return out, nil
}

func (c *Client) ClearCart(ctx context.Context, userID string) (usecase.CartResponse, error) {
	var out usecase.CartResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/cart/"+userID+"/clear", nil, &out); err != nil {
		return usecase.CartResponse{}, err
	}
	return out, nil
}

func (c *Client) PlaceOrder(ctx context.Context, userID string, restaurantID string, address string) (usecase.OrderOutput, error) {
	req := placeOrderRequest{
		UserID:       userID,
		RestaurantID: restaurantID,
		Address:      address,
	}

	var out usecase.OrderOutput
	if err := c.doJSON(ctx, http.MethodPost, "/api/orders", req, &out); err != nil {
		return usecase.OrderOutput{}, err
	}
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, method string, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Err: err}
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return &TransportError{Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(respBody, &apiErr); err != nil || apiErr.Error == "" {
			return &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return &APIError{Status: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &TransportError{Err: err}
	}
	return nil
}
