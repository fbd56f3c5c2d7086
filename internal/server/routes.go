package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

func registerRoutes(e *echo.Echo, catalogH *handler.CatalogHandler, cartH *handler.CartHandler, orderH *handler.OrderHandler) {
	catalogH.RegisterRoutes(e)
	cartH.RegisterRoutes(e)
	orderH.RegisterRoutes(e)
}
