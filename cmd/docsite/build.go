package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/unlibra/docsite"
)

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the site into the output directory",
		Long: `build renders the homepage, every doc, 404.html, the sitemap and the social
card, copies static files, checks internal links and writes the result.
Files unchanged since the last build are not rewritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			opts := []docsite.BuilderOption{
				docsite.WithStorePath(underRoot(settings.GetString("store"))),
			}
			if settings.GetBool("clean") {
				opts = append(opts, docsite.WithClean())
			}
			b, err := newBuilder(logger, opts...)
			if err != nil {
				return err
			}

			out := underRoot(settings.GetString("out"))
			report, err := b.Build(cmd.Context(), out)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Built %s into %s (%d written, %d unchanged, %d removed)\n",
				b.Config().Title, out, report.Written, report.Skipped, report.Removed)
			if n := len(report.Warnings); n > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%d warning(s)\n", n)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.String("out", "build", "output directory, relative to the site root")
	f.Bool("clean", false, "remove the output directory and build store before building")
	f.String("store", ".docsite/build.db", "build store for incremental builds, relative to the site root")
	_ = settings.BindPFlags(f)
	return cmd
}

// underRoot resolves p against the site root unless it is absolute.
func underRoot(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(settings.GetString("root"), p)
}
