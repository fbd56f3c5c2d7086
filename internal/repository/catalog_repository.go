package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// カタログ（店舗・メニュー）の永続化だけを約束。
// シード後は読み取りのみ。
type CatalogRepository interface {
	// 無いレコードだけ作る（冪等）。既存のIDは変更しない。
	SeedIfMissing(ctx context.Context, restaurants []model.Restaurant, items []model.MenuItem) error

	ListRestaurants(ctx context.Context) ([]model.Restaurant, error)
	FindRestaurantByID(ctx context.Context, id string) (model.Restaurant, error)
	// 店舗が存在してメニューが無い場合は空スライス（エラーではない）
	ListMenuByRestaurantID(ctx context.Context, restaurantID string) ([]model.MenuItem, error)

	CountRestaurants(ctx context.Context) (int64, error)
	CountMenuItems(ctx context.Context) (int64, error)
}
