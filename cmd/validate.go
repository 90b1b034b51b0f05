package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/shival-gupta/portfolio/internal/content"
)

var validateContent string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the content file for consistency problems",
	Long: `Load the content and report every problem found: duplicate project ids,
category tags outside the filter table, unknown activity icons and missing
required fields.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateContent, "content", "", "content file to check (default content.path)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := validateContent
	if path == "" {
		path = cfg.Content.Path
	}

	site, err := content.Load(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	name := path
	if name == "" {
		name = "built-in content"
	}

	err = site.Validate()
	var verr *content.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintf(out, "%s has %d problem(s):\n", name, len(verr.Problems))
		for _, p := range verr.Problems {
			fmt.Fprintf(out, "  - %s\n", p)
		}
		return errors.New("content is invalid")
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s is valid: %d projects, %d experience entries\n", name, len(site.Projects), len(site.Experience))
	return nil
}
