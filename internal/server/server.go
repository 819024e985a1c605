package server

import (
	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Handlers はルーティングに必要なハンドラ一式。
type Handlers struct {
	Auth         *handler.AuthHandler
	Cart         *handler.CartHandler
	Product      *handler.ProductHandler
	AdminUser    *handler.AdminUserHandler
	AdminProduct *handler.AdminProductHandler
}

// Start はechoを組み立てて起動する。
func Start(addr string, cfg config.Config, h Handlers) error {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.FEURL},
		AllowCredentials: true,
	}))

	RegisterRoutes(e, h)

	return e.Start(addr)
}
