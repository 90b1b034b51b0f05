package server

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shival-gupta/portfolio/internal/content"
)

func (s *Server) home(c *gin.Context) {
	site := s.content.Current()
	c.HTML(http.StatusOK, "index.html", s.page(c, PageMeta{}, gin.H{
		"techPreview": site.TechPreview(8),
	}))
}

func (s *Server) about(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", s.page(c, PageMeta{
		Title:       "About",
		Description: "Experience, education and skills of " + s.content.Current().Contact.Name + ".",
	}, nil))
}

func (s *Server) contactPage(c *gin.Context) {
	site := s.content.Current()
	c.HTML(http.StatusOK, "contact.html", s.page(c, contactMeta(site), gin.H{
		"form": formState{},
	}))
}

func (s *Server) privacy(c *gin.Context) {
	site := s.content.Current()

	body, err := s.markdown.Render([]byte(privacyMarkdown(site, s.tracker != nil)))
	if err != nil {
		s.log.Error("error rendering privacy policy", slog.String("error", err.Error()))
		c.HTML(http.StatusInternalServerError, "error.html", s.page(c, PageMeta{Title: "Error"}, gin.H{
			"error": "Sorry, this page could not be rendered.",
		}))
		return
	}

	c.HTML(http.StatusOK, "privacy.html", s.page(c, PageMeta{
		Title:       "Privacy Policy",
		Description: "Privacy policy for " + site.Contact.Name + "'s portfolio website.",
	}, gin.H{
		"updated": s.started,
		"body":    body,
	}))
}

func (s *Server) resume(c *gin.Context) {
	c.Redirect(http.StatusMovedPermanently, s.cfg.Site.ResumeURL)
}

func (s *Server) notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", s.page(c, PageMeta{Title: "Not Found"}, nil))
}

func privacyMarkdown(site *content.Site, analytics bool) string {
	collected := "- **Contact form submissions:** Name, email address, subject and message content when you use the contact form. " +
		"They are forwarded to a form-processing service and delivered by email; this site does not store them.\n"
	if analytics {
		collected += "- **Analytics data:** Anonymous page view statistics. Your IP address is salted and hashed before it is stored, " +
			"requests sent with Do Not Track are not recorded, and records are deleted after twelve months.\n"
	}

	r := strings.NewReplacer(
		"{name}", site.Contact.Name,
		"{email}", site.Contact.Email,
		"{collected}", collected,
	)
	return r.Replace(privacyTemplate)
}

const privacyTemplate = `## Overview

This privacy policy describes how {name}'s portfolio website collects, uses, and protects your information when you visit this site.

## Information Collection

This website may collect the following information:

{collected}
## Use of Information

Any information collected is used solely for:

- Responding to your inquiries
- Improving the website experience
- Understanding site traffic and usage patterns

## Data Protection

Your information is kept secure and is not shared with third parties except as required by law or to provide the services you request.

## Cookies

This website uses a single preference cookie to remember whether you chose the light or dark theme. No tracking cookies are set.

## Third-Party Services

This site may link to the following third-party services:

- GitHub (code repository links)
- YouTube (project videos)

## Your Rights

You have the right to request access to, correction of, or deletion of any personal data I hold about you.

## Contact

For any privacy-related questions, please contact me at [{email}](mailto:{email}).
`
