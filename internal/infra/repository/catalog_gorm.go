package repository

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

// DI
func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// 無いレコードだけ作る。
// ON CONFLICT DO NOTHINGなので、同時に走っても一意キー違反で
// 落ちずに同じ1セットへ収束する（後発側はシード済み扱いのno-op）。
func (r *CatalogGormRepository) SeedIfMissing(ctx context.Context, restaurants []model.Restaurant, items []model.MenuItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(restaurants) > 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&restaurants).Error; err != nil {
				return err
			}
		}

		if len(items) > 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&items).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// 店舗一覧（id昇順で順序を安定させる）
func (r *CatalogGormRepository) ListRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	var restaurants []model.Restaurant

	if err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&restaurants).Error; err != nil {
		return []model.Restaurant{}, err
	}

	return restaurants, nil
}

func (r *CatalogGormRepository) FindRestaurantByID(ctx context.Context, id string) (model.Restaurant, error) {
	var rest model.Restaurant

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&rest).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Restaurant{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Restaurant{}, err
	}
	return rest, nil
}

// メニュー一覧。店舗にメニューが無ければ空スライス。
func (r *CatalogGormRepository) ListMenuByRestaurantID(ctx context.Context, restaurantID string) ([]model.MenuItem, error) {
	var items []model.MenuItem

	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.MenuItem{}, err
	}

	return items, nil
}

func (r *CatalogGormRepository) CountRestaurants(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Restaurant{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CatalogGormRepository) CountMenuItems(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.MenuItem{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
