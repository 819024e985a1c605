package handler

import (
	"net/http"

	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 管理画面の商品管理API
type AdminProductHandler struct {
	productUC *usecase.ProductUsecase
	authUC    *usecase.AuthUsecase
}

func NewAdminProductHandler(productUC *usecase.ProductUsecase, authUC *usecase.AuthUsecase) *AdminProductHandler {
	return &AdminProductHandler{productUC: productUC, authUC: authUC}
}

func (h *AdminProductHandler) RegisterRoutes(e *echo.Echo) {
	admin := e.Group(
		"/admin",
		middleware.SessionGuard(h.authUC),
		middleware.AdminRoleGuard(),
	)

	admin.POST("/products", h.create)
	admin.PUT("/products/:id", h.update)
	admin.DELETE("/products/:id", h.delete)
}

func (h *AdminProductHandler) create(c echo.Context) error {
	var req usecase.SaveProductInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.productUC.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *AdminProductHandler) update(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req usecase.SaveProductInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.productUC.Update(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AdminProductHandler) delete(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.productUC.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
}
