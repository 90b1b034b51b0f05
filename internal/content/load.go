package content

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned by Load when the content file does not exist.
var ErrNotFound = errors.New("content file not found")

// Load reads a Site from a YAML file. An empty path yields the built-in content.
func Load(path string) (site *Site, err error) {
	if path == "" {
		site = Default()
		return site, err
	}

	var data []byte
	data, err = os.ReadFile(path)
	if os.IsNotExist(err) {
		err = errors.Wrap(ErrNotFound, path)
		return nil, err
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to read content file: %s", path)
		return nil, err
	}

	site = &Site{}
	err = yaml.Unmarshal(data, site)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse content file: %s", path)
		return nil, err
	}

	return site, err
}

// ValidationError lists every consistency problem found in a Site.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("content has %d problem(s): %s", len(e.Problems), strings.Join(e.Problems, "; "))
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return IsCategory(fl.Field().String())
	})
	return v
}

// Validate checks the invariants the pages rely on: unique project ids, tags
// drawn from the category table, known activity icons and required fields.
func (s *Site) Validate() error {
	var problems []string

	if err := newValidator().Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return errors.Wrap(err, "content validation failed")
		}
		for _, fe := range verrs {
			problems = append(problems, describe(fe))
		}
	}

	seen := make(map[string]bool, len(s.Projects))
	for _, p := range s.Projects {
		if p.ID == "" {
			continue
		}
		if seen[p.ID] {
			problems = append(problems, fmt.Sprintf("duplicate project id %q", p.ID))
		}
		seen[p.ID] = true
	}

	for _, a := range s.Extracurriculars {
		if a.Icon != "" && !activityIcons[a.Icon] {
			problems = append(problems, fmt.Sprintf("extracurricular %q uses unknown icon %q", a.Name, a.Icon))
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.ActualTag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Namespace())
	case "category":
		return fmt.Sprintf("%s has unknown category %q", fe.Namespace(), fe.Value())
	case "url", "email":
		return fmt.Sprintf("%s must be a valid %s", fe.Namespace(), fe.ActualTag())
	default:
		return fmt.Sprintf("%s failed %s", fe.Namespace(), fe.ActualTag())
	}
}
