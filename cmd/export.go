package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/shival-gupta/portfolio/internal/content"
	"github.com/shival-gupta/portfolio/internal/export"
	"github.com/shival-gupta/portfolio/internal/server"
	"github.com/shival-gupta/portfolio/web"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the site into a directory of static files",
	Long: `Render every page, robots.txt, sitemap.xml, the scene data and the static
assets into a directory that any static host can serve.

The exported site has no server behind it: the category filter falls back to
the full project list and the contact form needs the running server.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "dist", "output directory")
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := content.NewStore(cfg.Content.Path, log)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Options{
		Config:  cfg,
		Content: store,
		Sender:  newSender(cfg),
		Logger:  log,
	})
	if err != nil {
		return err
	}
	engine, err := srv.Engine()
	if err != nil {
		return err
	}

	res, err := export.New(engine, web.Static(), exportOut, log).Run(store.Current())
	if err != nil {
		return errors.Wrap(err, "export failed")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d pages and %d assets to %s\n", res.Pages, res.Assets, exportOut)
	return nil
}
