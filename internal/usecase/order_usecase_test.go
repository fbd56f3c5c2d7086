package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks（衝突回避の命名）
// =====================

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID string, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

// Txの中身をそのまま実行するだけの偽TransactionManager
type fakeTxManager struct {
	carts      repo.CartRepository
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
}

func (f *fakeTxManager) Carts() repo.CartRepository           { return f.carts }
func (f *fakeTxManager) Orders() repo.OrderRepository         { return f.orders }
func (f *fakeTxManager) OrderItems() repo.OrderItemRepository { return f.orderItems }

func (f *fakeTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(f)
}

type fixedIDGen struct{ id string }

func (g *fixedIDGen) NewID() string { return g.id }

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

func newOrderUsecaseForTest(cartRepo repo.CartRepository, orderRepo repo.OrderRepository, orderItemRepo repo.OrderItemRepository) *usecase.OrderUsecase {
	tx := &fakeTxManager{carts: cartRepo, orders: orderRepo, orderItems: orderItemRepo}
	idGen := &fixedIDGen{id: "order-1"}
	clock := &fixedClock{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	return usecase.NewOrderUsecase(tx, idGen, clock)
}

func TestOrderUsecase_PlaceOrder_EmptyCart(t *testing.T) {
	cartRepo := new(CartRepoMock)
	orderRepo := new(OrderRepoMock)
	orderItemRepo := new(OrderItemRepoMock)
	uc := newOrderUsecaseForTest(cartRepo, orderRepo, orderItemRepo)

	cartRepo.On("FindByUserIDForUpdate", mock.Anything, "demo-user").
		Return(model.Cart{ID: 1, UserID: "demo-user"}, nil)
	cartRepo.On("ListItems", mock.Anything, int64(1)).Return([]model.CartItem{}, nil)

	_, err := uc.PlaceOrder(context.Background(), "demo-user", usecase.PlaceOrderInput{
		RestaurantID: "r1",
		Address:      "221B Baker Street, London",
	})
	assertHTTPError(t, err, 400, "cart empty")

	// 注文は作られない
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	cartRepo.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
}

// カートが無いユーザーも空カート扱い
func TestOrderUsecase_PlaceOrder_NoCart(t *testing.T) {
	cartRepo := new(CartRepoMock)
	uc := newOrderUsecaseForTest(cartRepo, new(OrderRepoMock), new(OrderItemRepoMock))

	cartRepo.On("FindByUserIDForUpdate", mock.Anything, "demo-user").
		Return(model.Cart{}, repo.ErrNotFound)

	_, err := uc.PlaceOrder(context.Background(), "demo-user", usecase.PlaceOrderInput{
		RestaurantID: "r1",
		Address:      "221B Baker Street, London",
	})
	assertHTTPError(t, err, 400, "cart empty")
}

func TestOrderUsecase_PlaceOrder_RestaurantMismatch(t *testing.T) {
	cartRepo := new(CartRepoMock)
	orderRepo := new(OrderRepoMock)
	uc := newOrderUsecaseForTest(cartRepo, orderRepo, new(OrderItemRepoMock))

	cartRepo.On("FindByUserIDForUpdate", mock.Anything, "demo-user").
		Return(model.Cart{ID: 1, UserID: "demo-user", RestaurantID: "r1"}, nil)
	cartRepo.On("ListItems", mock.Anything, int64(1)).Return([]model.CartItem{
		{MenuItemID: "m1", NameSnapshot: "Pizza", PriceSnapshot: 9.50, Quantity: 1},
	}, nil)

	_, err := uc.PlaceOrder(context.Background(), "demo-user", usecase.PlaceOrderInput{
		RestaurantID: "r2",
		Address:      "221B Baker Street, London",
	})
	assertHTTPError(t, err, 409, "restaurant mismatch")

	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	cartRepo.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
}

// totalはサーバー計算：5.00×2 + 3.50×1 = 13.50
func TestOrderUsecase_PlaceOrder_ComputesTotalAndClearsCart(t *testing.T) {
	cartRepo := new(CartRepoMock)
	orderRepo := new(OrderRepoMock)
	orderItemRepo := new(OrderItemRepoMock)
	uc := newOrderUsecaseForTest(cartRepo, orderRepo, orderItemRepo)

	cartItems := []model.CartItem{
		{MenuItemID: "m1", NameSnapshot: "Pizza", PriceSnapshot: 5.00, Quantity: 2},
		{MenuItemID: "m2", NameSnapshot: "Tiramisu", PriceSnapshot: 3.50, Quantity: 1},
	}

	cartRepo.On("FindByUserIDForUpdate", mock.Anything, "demo-user").
		Return(model.Cart{ID: 1, UserID: "demo-user", RestaurantID: "r1"}, nil)
	cartRepo.On("ListItems", mock.Anything, int64(1)).Return(cartItems, nil)
	cartRepo.On("Clear", mock.Anything, int64(1)).Return(nil)

	orderRepo.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.ID == "order-1" && o.Total == 13.50 && o.RestaurantID == "r1" &&
			o.Status == model.OrderStatusPlaced && o.Address == "221B Baker Street, London"
	})).Return(nil)
	orderItemRepo.On("CreateBulk", mock.Anything, "order-1", mock.Anything).Return(nil)

	out, err := uc.PlaceOrder(context.Background(), "demo-user", usecase.PlaceOrderInput{
		RestaurantID: "r1",
		Address:      "221B Baker Street, London",
	})
	assert.NoError(t, err)
	assert.Equal(t, "order-1", out.ID)
	assert.Equal(t, 13.50, out.Total)
	assert.Equal(t, "PLACED", out.Status)

	// 注文スナップショットは確定時点のカート明細と一致する
	assert.Len(t, out.Items, 2)
	assert.Equal(t, "m1", out.Items[0].MenuItemID)
	assert.Equal(t, int64(2), out.Items[0].Quantity)
	assert.Equal(t, "m2", out.Items[1].MenuItemID)

	cartRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	orderItemRepo.AssertExpectations(t)
}

// 作成に失敗したらカートはクリアされない
func TestOrderUsecase_PlaceOrder_CreateFailureLeavesCart(t *testing.T) {
	cartRepo := new(CartRepoMock)
	orderRepo := new(OrderRepoMock)
	uc := newOrderUsecaseForTest(cartRepo, orderRepo, new(OrderItemRepoMock))

	cartRepo.On("FindByUserIDForUpdate", mock.Anything, "demo-user").
		Return(model.Cart{ID: 1, UserID: "demo-user", RestaurantID: "r1"}, nil)
	cartRepo.On("ListItems", mock.Anything, int64(1)).Return([]model.CartItem{
		{MenuItemID: "m1", NameSnapshot: "Pizza", PriceSnapshot: 9.50, Quantity: 1},
	}, nil)
	orderRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("boom"))

	_, err := uc.PlaceOrder(context.Background(), "demo-user", usecase.PlaceOrderInput{
		RestaurantID: "r1",
		Address:      "221B Baker Street, London",
	})
	assertHTTPError(t, err, 500, "db error")

	cartRepo.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
}

func TestOrderUsecase_PlaceOrder_AddressRequired(t *testing.T) {
	uc := newOrderUsecaseForTest(new(CartRepoMock), new(OrderRepoMock), new(OrderItemRepoMock))

	_, err := uc.PlaceOrder(context.Background(), "demo-user", usecase.PlaceOrderInput{
		RestaurantID: "r1",
		Address:      "   ",
	})
	assertHTTPError(t, err, 400, "address required")
}

func TestOrderUsecase_ListUserOrders_NewestFirst(t *testing.T) {
	cartRepo := new(CartRepoMock)
	orderRepo := new(OrderRepoMock)
	orderItemRepo := new(OrderItemRepoMock)
	uc := newOrderUsecaseForTest(cartRepo, orderRepo, orderItemRepo)

	orders := []model.Order{
		{ID: "o2", UserID: "demo-user", Total: 5.50, Status: model.OrderStatusPlaced},
		{ID: "o1", UserID: "demo-user", Total: 13.50, Status: model.OrderStatusPlaced},
	}
	orderRepo.On("ListByUserID", mock.Anything, "demo-user").Return(orders, nil)
	orderItemRepo.On("ListByOrderID", mock.Anything, "o2").Return([]model.OrderItem{}, nil)
	orderItemRepo.On("ListByOrderID", mock.Anything, "o1").Return([]model.OrderItem{}, nil)

	out, err := uc.ListUserOrders(context.Background(), "demo-user")
	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, "o2", out[0].ID)
	assert.Equal(t, "o1", out[1].ID)
}
