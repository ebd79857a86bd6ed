package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/propmap-cli/internal/api"
)

var (
	serveAddr   string
	serveCenter int64
)

var serveCmd = &cobra.Command{
	Use:   "serve [source]",
	Short: "Serve the roll over HTTP (JSON API, health and Prometheus metrics)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, _, err := sourceArgs(args, 0)
		if err != nil {
			return err
		}
		ds, err := openSource(source)
		if err != nil {
			return err
		}

		conf := api.Config{
			Addr:        cfg.ListenAddr,
			CORSOrigins: cfg.CORSOrigins,
			Options: api.Options{
				Center:      cfg.Center,
				MaxListRows: cfg.MaxListRows,
			},
		}
		if cmd.Flags().Changed("addr") {
			conf.Addr = serveAddr
		}
		if cmd.Flags().Changed("center") {
			if serveCenter <= 0 {
				return fmt.Errorf("invalid --center: %d (must be positive)", serveCenter)
			}
			conf.Center = serveCenter
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Serving %d properties from %s on http://%s\n", ds.Count(), ds.Source(), conf.Addr)
		return api.NewServer(ds, conf, logger).Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, 127.0.0.1:8080)")
	serveCmd.Flags().Int64Var(&serveCenter, "center", 0, "default banding center (default: config, then roll median)")
}
