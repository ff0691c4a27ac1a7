package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the route patterns of the example shop",
		Long:  `List the route patterns of the example shop in the order they are matched.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newServer()
			if err != nil {
				return err
			}

			patterns, err := s.Routes()
			if err != nil {
				return err
			}

			for i, p := range patterns {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", i+1, p)
			}

			return nil
		},
	}
}
