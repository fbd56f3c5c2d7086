package usecase

import (
	"context"
	"math"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// CartUsecase は /api/cart の業務ロジックです。
type CartUsecase struct {
	cartRepo repo.CartRepository
}

// DI
func NewCartUsecase(cartRepo repo.CartRepository) *CartUsecase {
	return &CartUsecase{cartRepo: cartRepo}
}

// price は追加時点のスナップショットを返す（カタログは読み直さない）。
type CartLineResponse struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int64   `json:"quantity"`
}

// total はサーバー側で計算した確定値。
type CartResponse struct {
	UserID       string             `json:"user_id"`
	RestaurantID string             `json:"restaurant_id"`
	Items        []CartLineResponse `json:"items"`
	Total        float64            `json:"total"`
}

type AddItemInput struct {
	RestaurantID string
	MenuItemID   string
	Name         string
	Price        float64
	Quantity     int64
}

// GetCart はカート取得（無ければ空カートを作って返す）。
func (u *CartUsecase) GetCart(ctx context.Context, userID string) (CartResponse, error) {
	if strings.TrimSpace(userID) == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	cart, err := u.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart)
}

// AddItem はカートに追加（同一メニューは数量加算、別店舗はカートを作り直す）。
func (u *CartUsecase) AddItem(ctx context.Context, userID string, in AddItemInput) (CartResponse, error) {
	if strings.TrimSpace(userID) == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	if strings.TrimSpace(in.RestaurantID) == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid restaurant id")
	}
	if strings.TrimSpace(in.MenuItemID) == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid menu item id")
	}
	if strings.TrimSpace(in.Name) == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Price < 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}
	// quantity省略時は1
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	cart, err := u.cartRepo.UpsertItem(ctx, userID, in.RestaurantID, model.CartItem{
		MenuItemID:    in.MenuItemID,
		NameSnapshot:  in.Name,
		PriceSnapshot: in.Price,
		Quantity:      in.Quantity,
	})
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart)
}

// ClearCart は明細を空にして店舗の紐付けも外す。空カートへの実行もno-op成功。
func (u *CartUsecase) ClearCart(ctx context.Context, userID string) (CartResponse, error) {
	if strings.TrimSpace(userID) == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	cart, err := u.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartRepo.Clear(ctx, cart.ID); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cart.RestaurantID = ""
	return u.buildCartResponse(ctx, cart)
}

// 明細をまとめてCartResponseを作る。totalはここで計算する。
func (u *CartUsecase) buildCartResponse(ctx context.Context, cart model.Cart) (CartResponse, error) {
	items, err := u.cartRepo.ListItems(ctx, cart.ID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	respItems := make([]CartLineResponse, 0, len(items))
	var total float64 = 0

	for _, it := range items {
		respItems = append(respItems, CartLineResponse{
			MenuItemID: it.MenuItemID,
			Name:       it.NameSnapshot,
			Price:      it.PriceSnapshot,
			Quantity:   it.Quantity,
		})

		total += it.PriceSnapshot * float64(it.Quantity)
	}

	return CartResponse{
		UserID:       cart.UserID,
		RestaurantID: cart.RestaurantID,
		Items:        respItems,
		Total:        round2(total),
	}, nil
}

// 金額は小数2桁に丸める
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
