package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/example"
	"github.com/xy-planning-network/waymark/ranger"
	"github.com/xy-planning-network/waymark/serve"
)

func resolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <url>...",
		Short: "Print the action each URL dispatches",
		Long: `Resolve each URL through the routes of the example shop
and print the action it dispatches, following redirects.

Examples:
  waymark resolve /products/kite/1?page=2
  waymark resolve / /admin/home /nowhere`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newServer()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, raw := range args {
				u, err := waymark.ParseURL(raw)
				if err != nil {
					return err
				}

				res, err := s.Resolve(cmd.Context(), u)
				if err != nil {
					return err
				}

				printResolution(out, u, res)
			}

			return nil
		},
	}

	return cmd
}

// printResolution writes the Action u resolved to, and where it was redirected to if it was.
// A route may dispatch nothing at all.
func printResolution(out io.Writer, u waymark.URL, res serve.Resolution) {
	mark := color.GreenString("✓")
	if !res.Found() {
		mark = color.YellowString("✗")
	}

	if res.Action == nil {
		fmt.Fprintf(out, "%s %s => nothing dispatched\n", mark, u)
		return
	}

	fmt.Fprintf(out, "%s %s => %s %+v\n", mark, u, res.Action.Kind(), res.Action)
	if res.Redirected {
		fmt.Fprintf(out, "  redirected to %s\n", res.URL)
	}
}

// newServer constructs a *serve.Server for the example shop declared under BASE_PATH.
func newServer() (*serve.Server, error) {
	app, err := example.NewApp(ranger.BasePath()...)
	if err != nil {
		return nil, err
	}

	return serve.New(app)
}
