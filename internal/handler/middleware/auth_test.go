//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"estate-booking/internal/domain/user"
	"estate-booking/internal/handler/middleware"
	"estate-booking/internal/pkg/authctx"
	"estate-booking/internal/pkg/config"
	"estate-booking/tests/common/authtest"
	"estate-booking/tests/common/httptest"
	usecasemock "estate-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sessionEcho struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	Token  string `json:"token"`
}

func newAuthRouter(tv *usecasemock.MockTokenValidator, cfg config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	auth := middleware.NewAuthMiddleware(tv, cfg)
	router.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		sess, ok := authctx.FromContext(c.Request.Context())
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		userID, _ := middleware.GetUserID(c)
		if userID != sess.UserID {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, sessionEcho{UserID: sess.UserID, Role: sess.Role, Token: sess.AccessToken})
	})
	return router
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	cfg := config.NewTestConfig()

	t.Run("success: bearer token puts the session on the context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tv := usecasemock.NewMockTokenValidator(ctrl)
		tv.EXPECT().ValidateToken("token-1").Return("user-1", user.RoleGuest, nil)

		rec := httptest.PerformRequest(t, newAuthRouter(tv, cfg), http.MethodGet, "/me", nil, "token-1")

		var body sessionEcho
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, sessionEcho{UserID: "user-1", Role: string(user.RoleGuest), Token: "token-1"}, body)
	})

	t.Run("success: cookie wins over the header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tv := usecasemock.NewMockTokenValidator(ctrl)
		tv.EXPECT().ValidateToken("from-cookie").Return("user-1", user.RoleGuest, nil)
		cookies := []*http.Cookie{{Name: cfg.Cookie.AccessTokenName, Value: "from-cookie"}}

		rec := httptest.PerformRequestWithCookies(t, newAuthRouter(tv, cfg), http.MethodGet, "/me", nil, cookies, "from-header")

		var body sessionEcho
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "from-cookie", body.Token)
	})

	t.Run("success: real marketplace token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tv := usecasemock.NewMockTokenValidator(ctrl)
		token := authtest.NewJWTHelper(cfg.JWT).GenerateToken(t, "user-9", user.RoleGuest)
		tv.EXPECT().ValidateToken(token).Return("user-9", user.RoleGuest, nil)

		rec := httptest.PerformRequest(t, newAuthRouter(tv, cfg), http.MethodGet, "/me", nil, token)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("error: missing token redirects to login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tv := usecasemock.NewMockTokenValidator(ctrl)

		rec := httptest.PerformRequest(t, newAuthRouter(tv, cfg), http.MethodGet, "/me", nil, "")

		var detail struct {
			Redirect string `json:"redirect"`
		}
		httptest.AssertErrorDetail(t, rec, http.StatusUnauthorized, "sign in", &detail)
		assert.Equal(t, cfg.Wizard.LoginURL, detail.Redirect)
	})

	t.Run("error: rejected token clears the session cookie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tv := usecasemock.NewMockTokenValidator(ctrl)
		tv.EXPECT().ValidateToken("stale").Return("", user.Role(""), errors.New("token expired"))
		cookies := []*http.Cookie{{Name: cfg.Cookie.AccessTokenName, Value: "stale"}}

		rec := httptest.PerformRequestWithCookies(t, newAuthRouter(tv, cfg), http.MethodGet, "/me", nil, cookies, "")

		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "session has expired")
		cleared := httptest.ExtractCookie(rec, cfg.Cookie.AccessTokenName)
		require.NotNil(t, cleared)
		assert.Empty(t, cleared.Value)
	})
}
