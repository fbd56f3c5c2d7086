package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) error
	FindByID(ctx context.Context, orderID string) (model.Order, error)
	// 新しい順
	ListByUserID(ctx context.Context, userID string) ([]model.Order, error)
}
