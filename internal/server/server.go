// Package server wires the site's routes onto a gin engine.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shival-gupta/portfolio/internal/analytics"
	"github.com/shival-gupta/portfolio/internal/config"
	"github.com/shival-gupta/portfolio/internal/contact"
	"github.com/shival-gupta/portfolio/internal/content"
	"github.com/shival-gupta/portfolio/internal/markdown"
	"github.com/shival-gupta/portfolio/internal/scene"
	"github.com/shival-gupta/portfolio/internal/theme"
	"github.com/shival-gupta/portfolio/web"
)

type Options struct {
	Config  *config.Config
	Content *content.Store
	Sender  contact.Sender
	// Tracker is nil when analytics are disabled.
	Tracker *analytics.Tracker
	Logger  *slog.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

type Server struct {
	cfg      *config.Config
	content  *content.Store
	sender   contact.Sender
	tracker  *analytics.Tracker
	log      *slog.Logger
	markdown *markdown.Renderer
	mesh     scene.Mesh
	now      func() time.Time
	started  time.Time

	adminToken string
}

func New(opts Options) (*Server, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	s := &Server{
		cfg:      opts.Config,
		content:  opts.Content,
		sender:   opts.Sender,
		tracker:  opts.Tracker,
		log:      opts.Logger,
		markdown: markdown.New(),
		mesh:     scene.Generate(opts.Config.Site.SceneSeed, scene.DefaultOptions()),
		now:      now,
		started:  now(),
	}

	if s.tracker != nil {
		token, err := analytics.RandomToken()
		if err != nil {
			return nil, err
		}
		s.adminToken = token
	}

	return s, nil
}

// Engine builds the router with every route registered.
func (s *Server) Engine() (*gin.Engine, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.log), theme.Middleware())
	if s.tracker != nil {
		r.Use(s.tracker.Middleware())
	}
	r.SetHTMLTemplate(tmpl)

	r.StaticFS("/static", http.FS(web.Static()))

	r.GET("/", s.home)
	r.GET("/projects", s.projects)
	r.GET("/project-grid", s.projectGrid)
	r.GET("/projects/:id/video", s.projectVideo)
	r.GET("/about", s.about)
	r.GET("/contact", s.contactPage)
	r.GET("/privacy", s.privacy)

	// HTMX contact form endpoints
	r.GET("/contact-form", s.contactForm)
	r.POST("/contact", s.submitContact)

	r.POST("/theme", theme.ToggleHandler())
	r.GET("/resume", s.resume)

	r.GET("/robots.txt", s.robots)
	r.GET("/sitemap.xml", s.sitemap)
	r.GET("/api/scene.json", s.sceneJSON)

	if s.tracker != nil {
		s.setupAdminRoutes(r)
	}

	r.NoRoute(s.notFound)

	return r, nil
}

// requestLogger is gin.Logger written through slog.
func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := slog.LevelInfo
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		log.Log(c.Request.Context(), level, "request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		)
	}
}
