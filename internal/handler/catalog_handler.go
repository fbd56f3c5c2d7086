package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// カタログの公開API
type CatalogHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewCatalogHandler(uc *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/seed", h.seed)
	e.GET("/api/restaurants", h.listRestaurants)
	e.GET("/api/restaurants/:id", h.restaurantDetail)
	e.GET("/api/menu/:restaurantId", h.menu)
}

func (h *CatalogHandler) seed(c echo.Context) error {
	out, err := h.uc.Seed(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// フロントは素の配列を期待するのでラップしない
func (h *CatalogHandler) listRestaurants(c echo.Context) error {
	out, err := h.uc.ListRestaurants(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) restaurantDetail(c echo.Context) error {
	out, err := h.uc.GetRestaurant(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) menu(c echo.Context) error {
	out, err := h.uc.GetMenu(c.Request().Context(), c.Param("restaurantId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
