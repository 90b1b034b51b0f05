// Package content holds the hand-authored data behind every page of the site.
package content

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type ContactInfo struct {
	Name     string `yaml:"name" json:"name" validate:"required"`
	Phone    string `yaml:"phone" json:"phone"`
	Email    string `yaml:"email" json:"email" validate:"required,email"`
	GitHub   string `yaml:"github" json:"github" validate:"omitempty,url"`
	LinkedIn string `yaml:"linkedin" json:"linkedin" validate:"omitempty,url"`
	Website  string `yaml:"website" json:"website" validate:"omitempty,url"`
	Location string `yaml:"location" json:"location"`
}

// FirstName is the footer brand text.
func (c ContactInfo) FirstName() string {
	name, _, _ := strings.Cut(strings.TrimSpace(c.Name), " ")
	return name
}

// Initials is the navigation brand text, e.g. "SG".
func (c ContactInfo) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(c.Name) {
		r, _ := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

type Skill struct {
	Category string   `yaml:"category" json:"category" validate:"required"`
	Items    []string `yaml:"items" json:"items" validate:"required,min=1"`
}

type Project struct {
	ID             string   `yaml:"id" json:"id" validate:"required"`
	Title          string   `yaml:"title" json:"title" validate:"required"`
	Subtitle       string   `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	DateRange      string   `yaml:"date_range" json:"dateRange" validate:"required"`
	Description    []string `yaml:"description" json:"description"`
	Technologies   []string `yaml:"technologies" json:"technologies"`
	Categories     []string `yaml:"categories" json:"categories" validate:"required,min=1,dive,category"`
	GitHubURL      string   `yaml:"github_url,omitempty" json:"githubUrl,omitempty"`
	DemoURL        string   `yaml:"demo_url,omitempty" json:"demoUrl,omitempty"`
	VideoURL       string   `yaml:"video_url,omitempty" json:"videoUrl,omitempty"`
	CertificateURL string   `yaml:"certificate_url,omitempty" json:"certificateUrl,omitempty"`
	Featured       bool     `yaml:"featured,omitempty" json:"featured,omitempty"`
}

// HasCategory reports whether the project is tagged with id.
func (p Project) HasCategory(id string) bool {
	for _, c := range p.Categories {
		if c == id {
			return true
		}
	}
	return false
}

// IsWinner marks subtitles that get the award icon.
func (p Project) IsWinner() bool {
	return strings.Contains(p.Subtitle, "Winner")
}

type Experience struct {
	ID             string   `yaml:"id" json:"id" validate:"required"`
	Role           string   `yaml:"role" json:"role" validate:"required"`
	Company        string   `yaml:"company" json:"company" validate:"required"`
	Location       string   `yaml:"location" json:"location"`
	DateRange      string   `yaml:"date_range" json:"dateRange" validate:"required"`
	Description    []string `yaml:"description" json:"description"`
	CertificateURL string   `yaml:"certificate_url,omitempty" json:"certificateUrl,omitempty"`
}

type GradeType string

const (
	GradeCGPA       GradeType = "CGPA"
	GradePercentage GradeType = "Percentage"
)

type Education struct {
	ID          string    `yaml:"id" json:"id" validate:"required"`
	Degree      string    `yaml:"degree" json:"degree" validate:"required"`
	Institution string    `yaml:"institution" json:"institution" validate:"required"`
	Location    string    `yaml:"location,omitempty" json:"location,omitempty"`
	DateRange   string    `yaml:"date_range" json:"dateRange" validate:"required"`
	Grade       string    `yaml:"grade" json:"grade"`
	GradeType   GradeType `yaml:"grade_type" json:"gradeType" validate:"omitempty,oneof=CGPA Percentage"`
}

type Extracurricular struct {
	Name string `yaml:"name" json:"name" validate:"required"`
	Icon string `yaml:"icon,omitempty" json:"icon,omitempty"`
}

type Link struct {
	Text string `yaml:"text" json:"text"`
	Href string `yaml:"href" json:"href"`
}

type Hero struct {
	Greeting    string   `yaml:"greeting" json:"greeting"`
	Name        string   `yaml:"name" json:"name" validate:"required"`
	Tagline     string   `yaml:"tagline" json:"tagline"`
	Highlights  []string `yaml:"highlights" json:"highlights"`
	Description string   `yaml:"description" json:"description"`
	Primary     Link     `yaml:"primary" json:"primary"`
	Secondary   Link     `yaml:"secondary" json:"secondary"`
}

type Metadata struct {
	Title       string   `yaml:"title" json:"title" validate:"required"`
	Description string   `yaml:"description" json:"description"`
	Keywords    []string `yaml:"keywords" json:"keywords"`
	Author      string   `yaml:"author" json:"author"`
	SiteURL     string   `yaml:"site_url" json:"siteUrl" validate:"omitempty,url"`
	OGImage     string   `yaml:"og_image" json:"ogImage"`
}

// Site is everything the pages render. A Site is never mutated once loaded;
// reloads build a new one.
type Site struct {
	Contact          ContactInfo       `yaml:"contact" json:"contact"`
	Skills           []Skill           `yaml:"skills" json:"skills" validate:"dive"`
	Projects         []Project         `yaml:"projects" json:"projects" validate:"dive"`
	Experience       []Experience      `yaml:"experience" json:"experience" validate:"dive"`
	Education        []Education       `yaml:"education" json:"education" validate:"dive"`
	Extracurriculars []Extracurricular `yaml:"extracurriculars" json:"extracurriculars" validate:"dive"`
	Hero             Hero              `yaml:"hero" json:"hero"`
	Metadata         Metadata          `yaml:"metadata" json:"metadata"`
	About            string            `yaml:"about" json:"about"`
}

// Project returns the project with the given id.
func (s *Site) Project(id string) (Project, bool) {
	for _, p := range s.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// TechPreview flattens the skill groups and keeps the first n items.
func (s *Site) TechPreview(n int) []string {
	var out []string
	for _, group := range s.Skills {
		for _, item := range group.Items {
			if len(out) == n {
				return out
			}
			out = append(out, item)
		}
	}
	return out
}
