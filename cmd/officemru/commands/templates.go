package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/systmms/officemru/internal/config"
	"github.com/systmms/officemru/internal/templates"
)

func NewTemplatesCommand(cfg *config.Config) *cobra.Command {
	var (
		appName string
		alias   string
	)

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Show the custom template directory for an application",
		Long: `Resolve the directory an application saves custom templates into.

The per-application "PersonalTemplates" setting wins, then the shared
"UserTemplates" setting, then the conventional directory under Documents.

Examples:
  officemru templates --app word`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := resolveAppFlag(appName, alias)
			if err != nil {
				return err
			}

			st := platformStore()
			dir := templates.ResolveDir(st, app, templates.DefaultFallbackDir())
			fmt.Println(dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&appName, "app", "", "Application name (required): word, powerpoint or excel")
	cmd.Flags().StringVar(&alias, "alias", "", "Alternative application name; wins when both match")

	_ = cmd.MarkFlagRequired("app")

	return cmd
}
