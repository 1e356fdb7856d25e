package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/systmms/officemru/internal/config"
	"github.com/systmms/officemru/internal/containers"
)

func NewPrimaryCommand(cfg *config.Config) *cobra.Command {
	var appName string

	cmd := &cobra.Command{
		Use:   "primary",
		Short: "Show the primary authentication container",
		Long: `Show the first authentication container found during a full scan.

The primary is the first container of either kind encountered while walking
version roots newest first, matching the behavior of the tooling this command
replaces. Finding nothing is not an error.

Examples:
  officemru primary
  officemru primary --app word`,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := containerFilter(appName)
			if err != nil {
				return err
			}

			st := platformStore()
			id, path, ok := containers.FindPrimaryAdal(st, filter)
			if !ok {
				cfg.Logger.Info("No authentication containers found")
				return nil
			}
			fmt.Printf("%s\t%s\n", id, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&appName, "app", "", "Restrict the scan to one application")

	return cmd
}
