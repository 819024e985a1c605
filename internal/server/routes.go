package server

import (
	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, h Handlers) {
	h.Auth.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e)
	h.Product.RegisterRoutes(e)
	h.AdminUser.RegisterRoutes(e)
	h.AdminProduct.RegisterRoutes(e)
}
