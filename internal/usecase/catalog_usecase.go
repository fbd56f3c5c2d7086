package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"app/internal/domain/model"
	"app/internal/domain/seed"
	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// CatalogUsecase は店舗・メニューの読み取りとシード。
type CatalogUsecase struct {
	catalogRepo repo.CatalogRepository
}

// DI
func NewCatalogUsecase(catalogRepo repo.CatalogRepository) *CatalogUsecase {
	return &CatalogUsecase{catalogRepo: catalogRepo}
}

type SeedOutput struct {
	Restaurants int64 `json:"restaurants"`
	MenuItems   int64 `json:"menu_items"`
}

// Seed は固定の参照データを投入する。何回呼んでも1セットのまま。
func (u *CatalogUsecase) Seed(ctx context.Context) (SeedOutput, error) {
	if err := u.catalogRepo.SeedIfMissing(ctx, seed.Restaurants(), seed.MenuItems()); err != nil {
		return SeedOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	restaurants, err := u.catalogRepo.CountRestaurants(ctx)
	if err != nil {
		return SeedOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	menuItems, err := u.catalogRepo.CountMenuItems(ctx)
	if err != nil {
		return SeedOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return SeedOutput{Restaurants: restaurants, MenuItems: menuItems}, nil
}

// 店舗一覧（順序はid昇順で安定）
func (u *CatalogUsecase) ListRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	restaurants, err := u.catalogRepo.ListRestaurants(ctx)
	if err != nil {
		return []model.Restaurant{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return restaurants, nil
}

func (u *CatalogUsecase) GetRestaurant(ctx context.Context, restaurantID string) (model.Restaurant, error) {
	if strings.TrimSpace(restaurantID) == "" {
		return model.Restaurant{}, NewHTTPError(http.StatusBadRequest, "invalid restaurant id")
	}

	rest, err := u.catalogRepo.FindRestaurantByID(ctx, restaurantID)
	if err == repo.ErrNotFound {
		return model.Restaurant{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Restaurant{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return rest, nil
}

// GetMenu は店舗のメニューを返す。
// メニューが無い店舗は空配列、店舗ID自体が不明なときだけ404。
func (u *CatalogUsecase) GetMenu(ctx context.Context, restaurantID string) ([]model.MenuItem, error) {
	if strings.TrimSpace(restaurantID) == "" {
		return []model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "invalid restaurant id")
	}

	if _, err := u.catalogRepo.FindRestaurantByID(ctx, restaurantID); err != nil {
		if err == repo.ErrNotFound {
			return []model.MenuItem{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return []model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.catalogRepo.ListMenuByRestaurantID(ctx, restaurantID)
	if err != nil {
		return []model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}
