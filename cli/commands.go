// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/campuspath/campus"
)

func (a *app) newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show building, walkway and walking-time totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireData(); err != nil {
				return err
			}
			st, err := a.svc.Stats()
			if err != nil {
				return err
			}
			renderStats(cmd.OutOrStdout(), st)

			return nil
		},
	}
}

func (a *app) newRouteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "route FROM TO",
		Short:   "Find the quickest walk between two buildings",
		Example: `  campuspath -d campus.dot route "Memorial Union" "Science Hall"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireData(); err != nil {
				return err
			}
			r, err := a.svc.ShortestPath(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			renderRoute(cmd.OutOrStdout(), r)

			return nil
		},
	}
}

func (a *app) newReachableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reachable FROM",
		Short: "List the buildings reachable from one building",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireData(); err != nil {
				return err
			}
			order, err := a.svc.Reachable(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderReachable(cmd.OutOrStdout(), campus.CleanName(args[0]), order)

			return nil
		},
	}
}

func (a *app) newMenuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu (default)",
		Args:  cobra.NoArgs,
		RunE:  a.runMenu,
	}
}
