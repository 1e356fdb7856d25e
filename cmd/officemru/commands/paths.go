package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/systmms/officemru/internal/config"
	"github.com/systmms/officemru/internal/containers"
)

func NewPathsCommand(cfg *config.Config) *cobra.Command {
	var appName string

	cmd := &cobra.Command{
		Use:   "paths",
		Short: "List unique container paths for shell consumption",
		Long: `Print every unique authentication-container path in discovery order,
one per line, each wrapped in double quotes so the output can be consumed
directly by shell scripts.

Examples:
  officemru paths
  officemru paths --app excel`,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := containerFilter(appName)
			if err != nil {
				return err
			}

			st := platformStore()
			paths := containers.CollectPaths(st, filter)
			if len(paths) == 0 {
				cfg.Logger.Info("No authentication containers found")
				return nil
			}
			for _, path := range paths {
				fmt.Println(path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&appName, "app", "", "Restrict the scan to one application")

	return cmd
}
