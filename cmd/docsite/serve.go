package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/unlibra/docsite"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site from memory and re-render on changes",
		Long: `serve renders the site in memory and serves it under baseUrl. Edits to the
docs and static directories are picked up on the next request. Changes to
docsite.yaml need a restart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			b, err := newBuilder(logger)
			if err != nil {
				return err
			}
			app := docsite.New(b, docsite.WithAddr(settings.GetString("addr")))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			root := settings.GetString("root")
			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return app.Watch(ctx, filepath.Join(root, b.Config().Docs.Path), filepath.Join(root, "static"))
			})
			g.Go(func() error {
				defer stop()
				return app.Start(ctx)
			})
			return g.Wait()
		},
	}
	cmd.Flags().String("addr", ":"+docsite.EnvOr("PORT", "3000"), "listen address (default port from $PORT)")
	_ = settings.BindPFlags(cmd.Flags())
	return cmd
}
