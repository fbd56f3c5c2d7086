package server

import (
	"net/http"

	"app/internal/config"
	"app/internal/handler"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// echoのValidatorフックに渡す
type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// New はミドルウェアとルートを組んだechoを返す。
func New(cfg config.Config, catalogH *handler.CatalogHandler, cartH *handler.CartHandler, orderH *handler.OrderHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &requestValidator{validate: validator.New()}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// フロント（FE_URL）からのアクセスを許可
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.FEURL},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderContentType},
	}))

	registerRoutes(e, catalogH, cartH, orderH)
	return e
}

func Start(addr string, e *echo.Echo) error {
	return e.Start(addr)
}
