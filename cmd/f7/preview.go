package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lamarque/go-f7/internal/preview"
)

var previewAddr string

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Serve the component preview pages",
	Long: `Starts an HTTP server with one demo page per layout:

  /        single layout
  /tabs    tab layout
  /split   split layout
  /inputs  form input catalogue`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return preview.NewServer(previewAddr, cfg, logger).Run(ctx)
	},
}

func init() {
	previewCmd.Flags().StringVar(&previewAddr, "addr", ":8080", "listen address")
}
