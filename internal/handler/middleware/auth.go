package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"estate-booking/internal/domain/user"
	"estate-booking/internal/handler/httperr"
	"estate-booking/internal/pkg/authctx"
	"estate-booking/internal/pkg/config"
	"estate-booking/internal/pkg/cookie"
	"estate-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	cookie         config.CookieConfig
	loginURL       string
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

type loginRedirect struct {
	Redirect string `json:"redirect"`
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, cfg config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		cookie:         cfg.Cookie,
		loginURL:       cfg.Wizard.LoginURL,
	}
}

// RequireAuth verifies the marketplace token and attaches the session to the
// request context, where use cases and the marketplace client pick it up.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c, m.cookie)
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrAuthRequired,
				usecase.ErrAuthRequired.Error(), loginRedirect{Redirect: m.loginURL})
			return
		}

		userID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			cookie.ClearAccessToken(c, m.cookie)
			httperr.AbortWithError(c, http.StatusUnauthorized, err,
				"Your session has expired. Please sign in again.", loginRedirect{Redirect: m.loginURL})
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Set(ctxUserRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"user_id": userID,
			"role":    string(role),
		})
		ctx := authctx.WithSession(c.Request.Context(), authctx.Session{
			UserID:      userID,
			Role:        string(role),
			AccessToken: token,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	return id, ok && id != ""
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}
