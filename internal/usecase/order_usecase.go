package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type IDGenerator interface {
	NewID() string
}

type Clock interface {
	Now() time.Time
}

type OrderUsecase struct {
	tx    repo.TransactionManager
	idGen IDGenerator
	clock Clock
}

// DI
func NewOrderUsecase(tx repo.TransactionManager, idGen IDGenerator, clock Clock) *OrderUsecase {
	return &OrderUsecase{tx: tx, idGen: idGen, clock: clock}
}

type PlaceOrderInput struct {
	RestaurantID string
	Address      string
}

type OrderLineOutput struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int64   `json:"quantity"`
}

type OrderOutput struct {
	ID           string            `json:"id"`
	UserID       string            `json:"user_id"`
	RestaurantID string            `json:"restaurant_id"`
	Status       string            `json:"status"`
	Total        float64           `json:"total"`
	Address      string            `json:"address"`
	CreatedAt    time.Time         `json:"created_at"`
	Items        []OrderLineOutput `json:"items"`
}

// PlaceOrder は注文確定。
// カート読み取り→注文作成→カートクリアを1トランザクションで行い、
// カート行のロックで同時のaddItemとも直列化する。
// totalはサーバー側で計算し直す（クライアントのtotalは信用しない）。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID string, in PlaceOrderInput) (OrderOutput, error) {
	if strings.TrimSpace(userID) == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	if strings.TrimSpace(in.RestaurantID) == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid restaurant id")
	}
	if strings.TrimSpace(in.Address) == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "address required")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cart, err := r.Carts().FindByUserIDForUpdate(ctx, userID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusBadRequest, "cart empty")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		cartItems, err := r.Carts().ListItems(ctx, cart.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(cartItems) == 0 {
			return NewHTTPError(http.StatusBadRequest, "cart empty")
		}

		// 古いクライアント状態からの注文を防ぐ
		if cart.RestaurantID != in.RestaurantID {
			return NewHTTPError(http.StatusConflict, "restaurant mismatch")
		}

		orderItems := make([]model.OrderItem, 0, len(cartItems))
		var total float64 = 0

		now := u.clock.Now()
		for _, ci := range cartItems {
			orderItems = append(orderItems, model.OrderItem{
				MenuItemID:    ci.MenuItemID,
				NameSnapshot:  ci.NameSnapshot,
				PriceSnapshot: ci.PriceSnapshot,
				Quantity:      ci.Quantity,
				CreatedAt:     now,
			})

			total += ci.PriceSnapshot * float64(ci.Quantity)
		}
		total = round2(total)

		order := model.Order{
			ID:           u.idGen.NewID(),
			UserID:       userID,
			RestaurantID: cart.RestaurantID,
			Total:        total,
			Address:      strings.TrimSpace(in.Address),
			Status:       model.OrderStatusPlaced,
			CreatedAt:    now,
		}

		if err := r.Orders().Create(ctx, order); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderItems().CreateBulk(ctx, order.ID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// 注文作成とカートクリアは同じTxで見える
		if err := r.Carts().Clear(ctx, cart.ID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(order, orderItems)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// 注文履歴（新しい順）
func (u *OrderUsecase) ListUserOrders(ctx context.Context, userID string) ([]OrderOutput, error) {
	if strings.TrimSpace(userID) == "" {
		return []OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderLineOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderLineOutput{
			MenuItemID: it.MenuItemID,
			Name:       it.NameSnapshot,
			Price:      it.PriceSnapshot,
			Quantity:   it.Quantity,
		})
	}

	return OrderOutput{
		ID:           o.ID,
		UserID:       o.UserID,
		RestaurantID: o.RestaurantID,
		Status:       string(o.Status),
		Total:        o.Total,
		Address:      o.Address,
		CreatedAt:    o.CreatedAt,
		Items:        outItems,
	}
}
