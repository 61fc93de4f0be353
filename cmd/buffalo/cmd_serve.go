package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ConAcademy/BuffaloBuffalo/web"
)

func newServeCmd() *cobra.Command {
	var tables tableFlags
	var addr string
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the JSON API server for the tree visualizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, l, err := tables.load()
			if err != nil {
				return err
			}

			cfg := web.DefaultConfig()
			if configPath != "" {
				if cfg, err = web.LoadConfig(configPath); err != nil {
					return fmt.Errorf("load config: %w", err)
				}
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}

			displayAddr := cfg.Addr
			if strings.HasPrefix(displayAddr, ":") {
				displayAddr = "localhost" + displayAddr
			}
			fmt.Printf("Starting server at http://%s\n", displayAddr)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			server := web.NewServer(g, l, cfg)
			if err := server.Run(ctx); err != nil && err != http.ErrServerClosed {
				return fmt.Errorf("serve: %w", err)
			}
			return nil
		},
	}

	tables.register(cmd)
	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "address to listen on")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")

	return cmd
}
