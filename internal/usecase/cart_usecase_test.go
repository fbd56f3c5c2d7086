package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) GetOrCreateByUserID(ctx context.Context, userID string) (model.Cart, error) {
	args := m.Called(ctx, userID)
	cart, _ := args.Get(0).(model.Cart)
	return cart, args.Error(1)
}

func (m *CartRepoMock) FindByUserIDForUpdate(ctx context.Context, userID string) (model.Cart, error) {
	args := m.Called(ctx, userID)
	cart, _ := args.Get(0).(model.Cart)
	return cart, args.Error(1)
}

func (m *CartRepoMock) ListItems(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	args := m.Called(ctx, cartID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *CartRepoMock) UpsertItem(ctx context.Context, userID string, restaurantID string, item model.CartItem) (model.Cart, error) {
	args := m.Called(ctx, userID, restaurantID, item)
	cart, _ := args.Get(0).(model.Cart)
	return cart, args.Error(1)
}

func (m *CartRepoMock) Clear(ctx context.Context, cartID int64) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

func TestCartUsecase_GetCart_CreatesEmptyCart(t *testing.T) {
	cartRepo := new(CartRepoMock)
	uc := usecase.NewCartUsecase(cartRepo)

	cartRepo.On("GetOrCreateByUserID", mock.Anything, "demo-user").
		Return(model.Cart{ID: 1, UserID: "demo-user"}, nil)
	cartRepo.On("ListItems", mock.Anything, int64(1)).Return([]model.CartItem{}, nil)

	out, err := uc.GetCart(context.Background(), "demo-user")
	assert.NoError(t, err)
	assert.Equal(t, "demo-user", out.UserID)
	assert.Empty(t, out.Items)
	assert.Equal(t, 0.0, out.Total)
	assert.Equal(t, "", out.RestaurantID)
}

func TestCartUsecase_GetCart_InvalidUser(t *testing.T) {
	uc := usecase.NewCartUsecase(new(CartRepoMock))

	_, err := uc.GetCart(context.Background(), " ")
	assertHTTPError(t, err, 400, "invalid user id")
}

func TestCartUsecase_AddItem_InvalidQuantity(t *testing.T) {
	uc := usecase.NewCartUsecase(new(CartRepoMock))

	_, err := uc.AddItem(context.Background(), "demo-user", usecase.AddItemInput{
		RestaurantID: "r1",
		MenuItemID:   "m1",
		Name:         "Pizza",
		Price:        9.50,
		Quantity:     -1,
	})
	assertHTTPError(t, err, 400, "invalid quantity")
}

func TestCartUsecase_AddItem_NegativePrice(t *testing.T) {
	uc := usecase.NewCartUsecase(new(CartRepoMock))

	_, err := uc.AddItem(context.Background(), "demo-user", usecase.AddItemInput{
		RestaurantID: "r1",
		MenuItemID:   "m1",
		Name:         "Pizza",
		Price:        -0.01,
		Quantity:     1,
	})
	assertHTTPError(t, err, 400, "invalid price")
}

// quantity省略（0）は1個扱い
func TestCartUsecase_AddItem_DefaultsQuantityToOne(t *testing.T) {
	cartRepo := new(CartRepoMock)
	uc := usecase.NewCartUsecase(cartRepo)

	expected := model.CartItem{
		MenuItemID:    "m1",
		NameSnapshot:  "Pizza",
		PriceSnapshot: 9.50,
		Quantity:      1,
	}
	cart := model.Cart{ID: 7, UserID: "demo-user", RestaurantID: "r1"}

	cartRepo.On("UpsertItem", mock.Anything, "demo-user", "r1", expected).Return(cart, nil)
	cartRepo.On("ListItems", mock.Anything, int64(7)).Return([]model.CartItem{
		{MenuItemID: "m1", NameSnapshot: "Pizza", PriceSnapshot: 9.50, Quantity: 1},
	}, nil)

	out, err := uc.AddItem(context.Background(), "demo-user", usecase.AddItemInput{
		RestaurantID: "r1",
		MenuItemID:   "m1",
		Name:         "Pizza",
		Price:        9.50,
	})
	assert.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, int64(1), out.Items[0].Quantity)

	cartRepo.AssertExpectations(t)
}

// totalはスナップショット価格×数量の合計
func TestCartUsecase_AddItem_ReturnsServerTotal(t *testing.T) {
	cartRepo := new(CartRepoMock)
	uc := usecase.NewCartUsecase(cartRepo)

	cart := model.Cart{ID: 7, UserID: "demo-user", RestaurantID: "r1"}
	cartRepo.On("UpsertItem", mock.Anything, "demo-user", "r1", mock.Anything).Return(cart, nil)
	cartRepo.On("ListItems", mock.Anything, int64(7)).Return([]model.CartItem{
		{MenuItemID: "m1", NameSnapshot: "Pizza", PriceSnapshot: 5.00, Quantity: 2},
		{MenuItemID: "m2", NameSnapshot: "Tiramisu", PriceSnapshot: 3.50, Quantity: 1},
	}, nil)

	out, err := uc.AddItem(context.Background(), "demo-user", usecase.AddItemInput{
		RestaurantID: "r1",
		MenuItemID:   "m2",
		Name:         "Tiramisu",
		Price:        3.50,
		Quantity:     1,
	})
	assert.NoError(t, err)
	assert.Equal(t, 13.50, out.Total)
	assert.Equal(t, "r1", out.RestaurantID)
}

func TestCartUsecase_ClearCart_ReturnsEmptyCart(t *testing.T) {
	cartRepo := new(CartRepoMock)
	uc := usecase.NewCartUsecase(cartRepo)

	cartRepo.On("GetOrCreateByUserID", mock.Anything, "demo-user").
		Return(model.Cart{ID: 7, UserID: "demo-user", RestaurantID: "r1"}, nil)
	cartRepo.On("Clear", mock.Anything, int64(7)).Return(nil)
	cartRepo.On("ListItems", mock.Anything, int64(7)).Return([]model.CartItem{}, nil)

	out, err := uc.ClearCart(context.Background(), "demo-user")
	assert.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Equal(t, "", out.RestaurantID)
	assert.Equal(t, 0.0, out.Total)

	cartRepo.AssertExpectations(t)
}
