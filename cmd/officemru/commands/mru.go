package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/systmms/officemru/internal/config"
	"github.com/systmms/officemru/internal/mru"
)

func NewMRUCommand(cfg *config.Config) *cobra.Command {
	var (
		appName  string
		alias    string
		authMode string
	)

	cmd := &cobra.Command{
		Use:   "mru",
		Short: "List the MRU entries for an application",
		Long: `Resolve the MRU storage path for one application and sign-in kind, then
parse and list the template paths stored there, most recent first.

Examples:
  officemru mru --app word --auth adal
  officemru mru --app excel --auth liveid`,
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
			cfg.Logger.Debug("Reading MRU entries from %s", path)

			items := mru.Items(st, path)
			if len(items) == 0 {
				cfg.Logger.Info("No MRU entries at %s", path)
				return nil
			}
			for _, item := range items {
				fmt.Printf("%d\t%s\n", item.Index, item.Path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&appName, "app", "", "Application name (required): word, powerpoint or excel")
	cmd.Flags().StringVar(&alias, "alias", "", "Alternative application name; wins when both match")
	cmd.Flags().StringVar(&authMode, "auth", "adal", "Authentication mode: adal or liveid")

	_ = cmd.MarkFlagRequired("app")

	return cmd
}
