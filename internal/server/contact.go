package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/shival-gupta/portfolio/internal/contact"
	"github.com/shival-gupta/portfolio/internal/content"
)

// formState is the contact form as rendered: the values to show again and
// what went wrong last time, if anything.
type formState struct {
	Values contact.Submission
	Errors []string
	Failed bool
}

func contactMeta(site *content.Site) PageMeta {
	return PageMeta{
		Title:       "Contact",
		Description: "Get in touch with " + site.Contact.Name + " for collaboration opportunities, project inquiries, or just to say hello.",
	}
}

// contactForm returns a fresh, empty form fragment.
func (s *Server) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact-form.html", s.page(c, PageMeta{}, gin.H{
		"form": formState{},
	}))
}

// submitContact relays the form once. Success swaps in the confirmation
// panel; any failure re-renders the form with the visitor's values so they
// can retry.
func (s *Server) submitContact(c *gin.Context) {
	var sub contact.Submission
	if err := c.ShouldBind(&sub); err != nil {
		s.renderContact(c, "contact-form.html", gin.H{
			"form": formState{Values: sub, Errors: bindingErrors(err)},
		})
		return
	}

	// whitespace-only fields are blank once trimmed
	sub.Normalize()
	if err := binding.Validator.ValidateStruct(&sub); err != nil {
		s.renderContact(c, "contact-form.html", gin.H{
			"form": formState{Values: sub, Errors: bindingErrors(err)},
		})
		return
	}

	if err := s.sender.Send(c.Request.Context(), sub); err != nil {
		s.log.Error("error sending contact submission",
			slog.String("submission", sub.ID),
			slog.String("error", err.Error()))

		s.renderContact(c, "contact-form.html", gin.H{
			"form": formState{Values: sub, Failed: true},
		})
		return
	}

	s.log.Info("contact submission sent", slog.String("submission", sub.ID))
	s.renderContact(c, "contact-success.html", gin.H{"sent": true})
}

// renderContact answers HTMX with the fragment alone and a plain form post
// with the whole contact page around it.
func (s *Server) renderContact(c *gin.Context, fragment string, data gin.H) {
	if c.GetHeader("HX-Request") != "" {
		c.HTML(http.StatusOK, fragment, s.page(c, PageMeta{}, data))
		return
	}
	c.HTML(http.StatusOK, "contact.html", s.page(c, contactMeta(s.content.Current()), data))
}

// bindingErrors turns validator output into messages for the form.
func bindingErrors(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"Please check the form and try again."}
	}

	var msgs []string
	for _, fe := range verrs {
		field := fieldLabel(fe.Field())
		switch fe.ActualTag() {
		case "required":
			msgs = append(msgs, field+" is required.")
		case "email":
			msgs = append(msgs, field+" must be a valid email address.")
		case "max":
			msgs = append(msgs, field+" is too long.")
		default:
			msgs = append(msgs, field+" is invalid.")
		}
	}
	return msgs
}

func fieldLabel(field string) string {
	switch field {
	case "Email":
		return "Email"
	case "Subject":
		return "Subject"
	case "Message":
		return "Message"
	default:
		return "Name"
	}
}
