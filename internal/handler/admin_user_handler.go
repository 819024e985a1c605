package handler

import (
	"errors"
	"net/http"

	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 管理画面のユーザー管理API
type AdminUserHandler struct {
	uc *usecase.AuthUsecase
}

func NewAdminUserHandler(uc *usecase.AuthUsecase) *AdminUserHandler {
	return &AdminUserHandler{uc: uc}
}

func (h *AdminUserHandler) RegisterRoutes(e *echo.Echo) {
	// /admin 配下は全部「ログイン必須 + 管理者限定」
	admin := e.Group(
		"/admin",
		middleware.SessionGuard(h.uc),
		middleware.AdminRoleGuard(),
	)

	admin.GET("/users", h.listUsers)
	admin.DELETE("/users/:email", h.deleteUser)
	admin.POST("/users/:email/toggle-admin", h.toggleAdmin)
}

func (h *AdminUserHandler) listUsers(c echo.Context) error {
	out, err := h.uc.ListAccounts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AdminUserHandler) deleteUser(c echo.Context) error {
	actor, ok := getUserEmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	email := c.Param("email")
	if email == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid email"})
	}

	err := h.uc.DeleteAccount(c.Request().Context(), actor, email)
	if errors.Is(err, usecase.ErrOwnAccount) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	if errors.Is(err, usecase.ErrAccountNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	}
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
}

func (h *AdminUserHandler) toggleAdmin(c echo.Context) error {
	actor, ok := getUserEmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	email := c.Param("email")
	if email == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid email"})
	}

	err := h.uc.ToggleAdmin(c.Request().Context(), actor, email)
	if errors.Is(err, usecase.ErrOwnAccount) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	if errors.Is(err, usecase.ErrAccountNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	}
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
}
