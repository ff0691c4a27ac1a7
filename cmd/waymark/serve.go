package main

import (
	"github.com/spf13/cobra"
	"github.com/xy-planning-network/waymark/example"
	"github.com/xy-planning-network/waymark/ranger"
)

func serveCmd() *cobra.Command {
	var env string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the example shop",
		Long: `Serve the example shop until interrupted.

Environment variables:
  BASE_PATH, CORS_ORIGIN, ENVIRONMENT, HOST, LOG_LEVEL,
  NAVIGATION_BURST, NAVIGATION_RATE, PORT, SENTRY_DSN,
  SERVER_IDLE_TIMEOUT, SERVER_READ_TIMEOUT, SERVER_WRITE_TIMEOUT

Examples:
  waymark serve
  PORT=8080 BASE_PATH=/shop waymark serve --env=DEVELOPMENT`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := example.NewApp(ranger.BasePath()...)
			if err != nil {
				return err
			}

			opts := []ranger.RangerOption{ranger.WithContext(cmd.Context())}
			if env != "" {
				opts = append(opts, ranger.WithEnv(env))
			}

			rng, err := ranger.New(app, opts...)
			if err != nil {
				return err
			}

			return rng.Guide()
		},
	}

	cmd.Flags().StringVarP(&env, "env", "e", "", "Environment to run in (default from ENVIRONMENT)")

	return cmd
}
