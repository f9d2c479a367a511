package cookie

import (
	"net/http"

	"estate-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

func GetAccessToken(c *gin.Context, cfg config.CookieConfig) string {
	token, _ := c.Cookie(cfg.AccessTokenName)
	return token
}

// ClearAccessToken expires the session cookie so the browser lands on the
// login page with a clean slate.
func ClearAccessToken(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		cfg.AccessTokenName,
		"",
		-1,
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
