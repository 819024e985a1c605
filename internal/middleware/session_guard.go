package middleware

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	CtxUserEmailKey = "user_email" // string
	CtxIsAdminKey   = "is_admin"   // bool
)

// 永続化されたセッションを読んでログイン必須を掛けるミドルウェア。
// セッションが無ければ401。あればemailと管理者フラグをcontextへ保存する。
func SessionGuard(auth *usecase.AuthUsecase) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s, err := auth.Current(c.Request().Context())
			if err != nil {
				return c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
			}
			if s == nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//contextへ保存
			c.Set(CtxUserEmailKey, s.Email)
			c.Set(CtxIsAdminKey, s.IsAdmin)

			return next(c)
		}
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}
