package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "error: %v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configFile string
	cmd := &cobra.Command{
		Use:           "companion-server",
		Short:         "Serve the English companion API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional
			_ = godotenv.Load()
			if configFile == "" {
				configFile = os.Getenv("COMPANION_CONFIG")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, configFile)
		},
	}
	cmd.Flags().StringVar(&configFile, "config", "", "config file path")
	return cmd
}

func run(ctx context.Context, configFile string) error {
	app, err := newApp(ctx, configFile)
	if err != nil {
		return fmt.Errorf("newApp() > %w", err)
	}
	defer app.Close()

	return app.Run(ctx)
}
