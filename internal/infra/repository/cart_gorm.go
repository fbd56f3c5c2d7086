package repository

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// ユーザーのカートを取得し、無ければ作成
func (r *CartGormRepository) GetOrCreateByUserID(ctx context.Context, userID string) (model.Cart, error) {
	var cart model.Cart

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := lockOrCreateCart(tx, userID)
		if err != nil {
			return err
		}
		cart = found
		return nil
	})

	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// カート行をFOR UPDATEで取得。
// 注文確定のトランザクション内から呼び、ユーザー単位の直列化ポイントになる。
func (r *CartGormRepository) FindByUserIDForUpdate(ctx context.Context, userID string) (model.Cart, error) {
	var cart model.Cart

	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&cart).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cart{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// カート明細を一覧取得（追加順）
func (r *CartGormRepository) ListItems(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	var items []model.CartItem

	if err := r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.CartItem{}, err
	}

	return items, nil
}

// カートへの追加をユーザー単位で直列化して行う。
// カート行のロックを取ってから店舗切替・数量加算を1トランザクションで済ませる。
func (r *CartGormRepository) UpsertItem(ctx context.Context, userID string, restaurantID string, item model.CartItem) (model.Cart, error) {
	var cart model.Cart

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		locked, err := lockOrCreateCart(tx, userID)
		if err != nil {
			return err
		}
		cart = locked

		// 別店舗への追加はカートを作り直す（明細を破棄）
		if cart.RestaurantID != "" && cart.RestaurantID != restaurantID {
			if err := tx.Where("cart_id = ?", cart.ID).Delete(&model.CartItem{}).Error; err != nil {
				return err
			}
			cart.RestaurantID = ""
		}

		if cart.RestaurantID == "" {
			if err := tx.Model(&model.Cart{}).
				Where("id = ?", cart.ID).
				Update("restaurant_id", restaurantID).Error; err != nil {
				return err
			}
			cart.RestaurantID = restaurantID
		}

		var existing model.CartItem
		findErr := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("cart_id = ? AND menu_item_id = ?", cart.ID, item.MenuItemID).
			First(&existing).Error

		if findErr == nil {
			// 既存ありだったら数量を増やす
			res := tx.Model(&model.CartItem{}).
				Where("id = ?", existing.ID).
				Update("quantity", existing.Quantity+item.Quantity)

			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return repo.ErrNotFound
			}
			return nil
		}

		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		// 無い場合は新規明細
		now := time.Now()
		newItem := model.CartItem{
			CartID:        cart.ID,
			MenuItemID:    item.MenuItemID,
			NameSnapshot:  item.NameSnapshot,
			PriceSnapshot: item.PriceSnapshot,
			Quantity:      item.Quantity,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		return tx.Create(&newItem).Error
	})

	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// 明細を全削除して店舗の紐付けも外す。
// 先にカート行のロックを取り、同時のUpsertItemと直列化する。
func (r *CartGormRepository) Clear(ctx context.Context, cartID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cart model.Cart
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", cartID).
			First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repo.ErrNotFound
			}
			return err
		}

		if err := tx.Where("cart_id = ?", cartID).Delete(&model.CartItem{}).Error; err != nil {
			return err
		}

		return tx.Model(&model.Cart{}).
			Where("id = ?", cartID).
			Update("restaurant_id", "").Error
	})
}

// FOR UPDATEで探す→無ければ作る。作成が競合したらもう一回探す。
func lockOrCreateCart(tx *gorm.DB, userID string) (model.Cart, error) {
	var cart model.Cart

	findErr := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&cart).Error

	if findErr == nil {
		return cart, nil
	}

	if !errors.Is(findErr, gorm.ErrRecordNotFound) {
		return model.Cart{}, findErr
	}

	now := time.Now()
	newCart := model.Cart{
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := tx.Create(&newCart).Error; err != nil {
		retryErr := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			First(&cart).Error
		if retryErr == nil {
			return cart, nil
		}
		return model.Cart{}, err
	}

	return newCart, nil
}
