// Package contact delivers contact form submissions.
package contact

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Submission is one contact form post. Botcheck is the honeypot field; humans
// never see it, so it is passed on untouched for the receiver to judge.
type Submission struct {
	ID       string `form:"-" json:"-"`
	Name     string `form:"name" json:"name" binding:"required,max=200"`
	Email    string `form:"email" json:"email" binding:"required,email,max=320"`
	Subject  string `form:"subject" json:"subject" binding:"required,max=300"`
	Message  string `form:"message" json:"message" binding:"required,max=5000"`
	Botcheck string `form:"botcheck" json:"botcheck"`
}

// Normalize trims whitespace and stamps the submission with an id used to
// correlate log lines.
func (s *Submission) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Subject = strings.TrimSpace(s.Subject)
	s.Message = strings.TrimSpace(s.Message)
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
}

// Sender delivers a submission in a single attempt.
type Sender interface {
	Send(ctx context.Context, sub Submission) error
}

var (
	// ErrRejected means the receiving service answered but refused the
	// submission.
	ErrRejected = errors.New("submission rejected")
	// ErrNotConfigured means the sender is missing credentials.
	ErrNotConfigured = errors.New("contact sender not configured")
)
