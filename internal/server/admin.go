package server

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

const adminCookie = "admin_token"

// adminAuth lets a request through only with the session cookie set at login.
func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) validAdmin(username, password string) bool {
	want := s.cfg.Admin
	if want.Username == "" || want.Password == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(want.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(want.Password)) == 1
	return userOK && passOK
}

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", s.page(c, PageMeta{Title: "Admin Login"}, nil))
	})

	r.POST("/admin/login", func(c *gin.Context) {
		visitor := s.tracker.HashIP(c.ClientIP())
		if !s.validAdmin(c.PostForm("username"), c.PostForm("password")) {
			s.log.Warn("failed admin login attempt", slog.String("visitor", visitor))
			c.HTML(http.StatusUnauthorized, "admin-login.html", s.page(c, PageMeta{Title: "Admin Login"}, gin.H{
				"error": "Invalid credentials",
			}))
			return
		}

		// 24 hours
		c.SetCookie(adminCookie, s.adminToken, 3600*24, "/admin", "", s.cfg.IsProd(), true)
		s.log.Info("admin login", slog.String("visitor", visitor))
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", s.cfg.IsProd(), true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin")
	admin.Use(s.adminAuth())

	admin.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.tracker.Store().Stats(c.Request.Context(), s.now())
		if err != nil {
			s.log.Error("error loading admin stats", slog.String("error", err.Error()))
			c.HTML(http.StatusInternalServerError, "admin-error.html", s.page(c, PageMeta{Title: "Admin"}, gin.H{
				"error": "Failed to load statistics",
			}))
			return
		}

		c.HTML(http.StatusOK, "admin-dashboard.html", s.page(c, PageMeta{Title: "Dashboard"}, gin.H{
			"stats": stats,
		}))
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.tracker.Store().Stats(c.Request.Context(), s.now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=stats.json")
		c.JSON(http.StatusOK, stats)
	})
}
