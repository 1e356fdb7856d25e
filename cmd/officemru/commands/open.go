package commands

import (
	"github.com/spf13/cobra"
	"github.com/systmms/officemru/internal/config"
	"github.com/systmms/officemru/internal/launcher"
	"github.com/systmms/officemru/internal/office"
	"github.com/systmms/officemru/internal/templates"
)

func NewOpenCommand(cfg *config.Config) *cobra.Command {
	var appName string

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open template folders in the file browser",
		Long: `Resolve the custom template directory for one application (or all of
them) and open it in the platform file browser, together with any extra
folders from the configuration file. Each folder is opened at most once even
when several applications resolve to the same directory.

Examples:
  officemru open --app word
  officemru open`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Load(); err != nil {
				return err
			}

			apps, err := cfg.ScanOrder()
			if err != nil {
				return err
			}
			if appName != "" {
				app, err := resolveAppFlag(appName, "")
				if err != nil {
					return err
				}
				apps = []office.App{app}
			}

			st := platformStore()
			l := launcher.New(cfg.Logger)

			targets := make([]string, 0, len(apps))
			for _, app := range apps {
				targets = append(targets, templates.ResolveDir(st, app, templates.DefaultFallbackDir()))
			}
			targets = append(targets, cfg.ExtraFolders()...)

			for _, target := range targets {
				if target == "" {
					continue
				}
				opened, err := l.Open(target)
				if err != nil {
					cfg.Logger.Warn("Could not open %s: %v", target, err)
					continue
				}
				if opened {
					cfg.Logger.Info("Opened %s", target)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&appName, "app", "", "Open the folder for one application only")

	return cmd
}
