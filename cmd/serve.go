package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/uselessgoddess/suns/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "HTTP API: GET /api/schedule?spec=<код>&year=<курс>",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		if listen, _ := cmd.Flags().GetString("listen"); listen != "" {
			a.cfg.Listen = listen
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return server.NewServer(a.plugin).ListenAndServe(ctx, a.cfg.Listen)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("listen", "l", "", "Адрес HTTP (перекрывает конфиг)")
}
