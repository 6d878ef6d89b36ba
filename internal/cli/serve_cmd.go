package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/iamonit/internal/config"
	"github.com/alexanderramin/iamonit/internal/httpapi"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log := app.logger()
			server := httpapi.New(httpapi.Services{
				Programs: app.Programs,
				Courses:  app.Courses,
				Tasks:    app.Tasks,
				Stats:    app.Stats,
			}, httpapi.Options{
				CORSOrigins: app.Config.CORSOrigins,
				Logger:      log,
				AccessLog:   cmd.ErrOrStderr(),
				Today:       app.today,
			})
			return httpapi.Serve(ctx, server, addr, log)
		},
	}

	defaultAddr := app.Config.Addr
	if defaultAddr == "" {
		defaultAddr = config.DefaultConfig().Addr
	}
	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "Listen address")

	return cmd
}
