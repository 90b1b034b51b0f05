// Package theme carries the visitor's light/dark preference through a request.
package theme

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"

	Default = Dark

	CookieName = "theme"
	cookieAge  = 365 * 24 * 60 * 60

	contextKey = "theme"
)

// Parse maps a stored value onto a theme, falling back to Default.
func Parse(v string) Theme {
	switch Theme(v) {
	case Light:
		return Light
	case Dark:
		return Dark
	default:
		return Default
	}
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) String() string { return string(t) }

// Middleware reads the preference cookie once and stores it on the context.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, _ := c.Cookie(CookieName)
		c.Set(contextKey, Parse(v))
		c.Next()
	}
}

// FromContext returns the preference stored by Middleware.
func FromContext(c *gin.Context) Theme {
	if v, ok := c.Get(contextKey); ok {
		if t, ok := v.(Theme); ok {
			return t
		}
	}
	return Default
}

// ToggleHandler flips the preference and sends the visitor back to the page
// they came from.
func ToggleHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		next := FromContext(c).Toggle()
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(CookieName, next.String(), cookieAge, "/", "", false, false)

		if c.GetHeader("HX-Request") == "true" {
			c.Header("HX-Refresh", "true")
			c.Status(http.StatusNoContent)
			return
		}
		c.Redirect(http.StatusSeeOther, backTo(c.Request))
	}
}

// backTo picks a local path to return to, never an external URL.
func backTo(r *http.Request) string {
	candidates := []string{r.FormValue("next"), r.Referer()}
	for _, raw := range candidates {
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil {
			continue
		}
		if u.Host != "" && u.Host != r.Host {
			continue
		}
		path := u.EscapedPath()
		if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
			continue
		}
		if u.RawQuery != "" {
			path += "?" + u.RawQuery
		}
		return path
	}
	return "/"
}
