package handler

import (
	"errors"
	"net/http"

	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /auth と /profile のHTTP
type AuthHandler struct {
	uc *usecase.AuthUsecase
}

// DI
func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// /auth/register のリクエストボディ。
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// /auth/login のリクエストボディ。
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ResetPasswordRequest struct {
	Email string `json:"email"`
}

// リセット後の仮パスワードはそのままレスポンスで返す。
type ResetPasswordResponse struct {
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/auth/register", h.register)
	e.POST("/auth/login", h.login)
	e.POST("/auth/logout", h.logout)
	e.GET("/auth/me", h.me)
	e.POST("/auth/reset-password", h.resetPassword)

	e.PUT("/profile", h.updateProfile, middleware.SessionGuard(h.uc))
}

func (h *AuthHandler) register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "email and password are required"})
	}

	session, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if errors.Is(err, usecase.ErrDuplicateAccount) {
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	}
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, session)
}

func (h *AuthHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	session, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if errors.Is(err, usecase.ErrInvalidCredentials) {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	}
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, session)
}

func (h *AuthHandler) logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context()); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "logout success"})
}

// 現在のセッション。ログアウト中は401。
func (h *AuthHandler) me(c echo.Context) error {
	s, err := h.uc.Current(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	if s == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	return c.JSON(http.StatusOK, s)
}

func (h *AuthHandler) resetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "email is required"})
	}

	password, err := h.uc.ResetPassword(c.Request().Context(), req.Email)
	if errors.Is(err, usecase.ErrAccountNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	}
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, ResetPasswordResponse{Password: password})
}

func (h *AuthHandler) updateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	s, err := h.uc.Current(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	if s == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	s.Name = req.Name
	s.Phone = req.Phone

	if err := h.uc.UpdateProfile(c.Request().Context(), *s); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, s)
}

// SessionGuardがcontextに入れたemailを取り出す。
func getUserEmailFromContext(c echo.Context) (string, bool) {
	raw := c.Get(middleware.CtxUserEmailKey)
	email, ok := raw.(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}
