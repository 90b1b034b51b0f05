package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shival-gupta/portfolio/internal/seo"
)

func (s *Server) robots(c *gin.Context) {
	c.String(http.StatusOK, seo.Robots(s.origin()))
}

func (s *Server) sitemap(c *gin.Context) {
	body, err := seo.Sitemap(s.origin(), s.now())
	if err != nil {
		s.log.Error("error generating sitemap", slog.String("error", err.Error()))
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

// sceneJSON serves the background mesh the browser draws.
func (s *Server) sceneJSON(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=86400")
	c.JSON(http.StatusOK, s.mesh)
}
