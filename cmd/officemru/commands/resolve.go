package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/systmms/officemru/internal/config"
	"github.com/systmms/officemru/internal/mru"
)

func NewResolveCommand(cfg *config.Config) *cobra.Command {
	var (
		appName  string
		alias    string
		authMode string
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the MRU storage path for an application",
		Long: `Resolve the "File MRU" storage path for one application and sign-in kind.

Resolution prefers the authentication container matching the requested mode,
falls back to the first existing generic File MRU key (newest version root
first), and finally reports the deterministic default location. The command
always prints a path; it may point at a location that does not exist yet.

Examples:
  # MRU location for Word under an enterprise-directory sign-in
  officemru resolve --app word --auth adal

  # MRU location for PowerPoint under a consumer sign-in
  officemru resolve --app powerpoint --auth liveid`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := resolveAppFlag(appName, alias)
			if err != nil {
				return err
			}
			mode, err := resolveAuthFlag(authMode)
			if err != nil {
				return err
			}

			st := platformStore()
			path := mru.Resolve(st, app, mode)
			cfg.Logger.Debug("Resolved %s MRU path for %s: %s", mode, app, path)
			fmt.Println(path)
			return nil
		},
	}

	cmd.Flags().StringVar(&appName, "app", "", "Application name (required): word, powerpoint or excel")
	cmd.Flags().StringVar(&alias, "alias", "", "Alternative application name; wins when both match")
	cmd.Flags().StringVar(&authMode, "auth", "adal", "Authentication mode: adal or liveid")

	_ = cmd.MarkFlagRequired("app")

	return cmd
}
