package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// itemsとtotalは参考値として受けるだけで、サーバー側で計算し直す。
type OrderCreateRequest struct {
	UserID       string             `json:"user_id" validate:"required"`
	RestaurantID string             `json:"restaurant_id" validate:"required"`
	Items        []OrderLineRequest `json:"items"`
	Total        float64            `json:"total"`
	Address      string             `json:"address" validate:"required"`
}

type OrderLineRequest struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int64   `json:"quantity"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/orders", h.create)
	e.GET("/api/orders/:userId", h.list)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), req.UserID, usecase.PlaceOrderInput{
		RestaurantID: req.RestaurantID,
		Address:      req.Address,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) list(c echo.Context) error {
	out, err := h.uc.ListUserOrders(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
