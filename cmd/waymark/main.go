// Command waymark serves, and inspects the routes of, the example shop.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("Error:"), err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "waymark",
		Short: "Route URLs of a single-page application to actions",
		Long: `waymark hosts the example shop, resolving every requested URL
through its declared routes the same way the browser does.

Configuration is read from the environment, or a .env file;
run "waymark serve --help" for the variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		serveCmd(),
		resolveCmd(),
		routesCmd(),
		versionCmd(),
	)

	return cmd
}
