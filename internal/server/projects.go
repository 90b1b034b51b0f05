package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shival-gupta/portfolio/internal/content"
	"github.com/shival-gupta/portfolio/internal/video"
)

// filterState is what the filter bar and grid render from.
type filterState struct {
	Active   string
	Counts   []content.CategoryCount
	Projects []content.Project
}

func newFilterState(site *content.Site, requested string) filterState {
	active := content.NormalizeCategory(requested)
	return filterState{
		Active:   active,
		Counts:   content.Counts(site.Projects),
		Projects: content.Filter(site.Projects, active),
	}
}

func (s *Server) projects(c *gin.Context) {
	site := s.content.Current()
	c.HTML(http.StatusOK, "projects.html", s.page(c, PageMeta{
		Title:       "Projects",
		Description: "Explore my portfolio of AI, Robotics, IoT, and XR projects including autonomous robots, VR experiences, and smart home systems.",
	}, gin.H{
		"filter": newFilterState(site, c.Query("category")),
	}))
}

// projectGrid returns the filter bar and grid for an HTMX swap.
func (s *Server) projectGrid(c *gin.Context) {
	site := s.content.Current()
	c.HTML(http.StatusOK, "project-grid.html", s.page(c, PageMeta{}, gin.H{
		"filter": newFilterState(site, c.Query("category")),
	}))
}

// projectVideo returns the video dialog body for a project.
func (s *Server) projectVideo(c *gin.Context) {
	project, ok := s.content.Current().Project(c.Param("id"))
	if !ok || project.VideoURL == "" {
		c.HTML(http.StatusNotFound, "video.html", s.page(c, PageMeta{}, gin.H{
			"missing": true,
		}))
		return
	}

	c.HTML(http.StatusOK, "video.html", s.page(c, PageMeta{}, gin.H{
		"project": project,
		"player":  video.Parse(project.VideoURL),
	}))
}
