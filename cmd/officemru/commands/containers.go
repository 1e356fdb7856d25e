package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/systmms/officemru/internal/config"
	"github.com/systmms/officemru/internal/containers"
)

func NewContainersCommand(cfg *config.Config) *cobra.Command {
	var (
		appName    string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "containers",
		Short: "List discovered authentication containers",
		Long: `Scan every version root and list the authentication containers found,
in discovery order. Containers are deduplicated on (id, path).

Examples:
  # All containers for all applications
  officemru containers

  # Containers for Excel only, as JSON
  officemru containers --app excel --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := containerFilter(appName)
			if err != nil {
				return err
			}

			st := platformStore()
			cache := containers.Build(st, filter)
			entries := cache.Entries()

			if jsonOutput {
				type entryOut struct {
					Application string `json:"application"`
					Kind        string `json:"kind"`
					ID          string `json:"id"`
					Path        string `json:"path"`
					Primary     bool   `json:"primary"`
				}
				primary, hasPrimary := cache.Primary()
				out := make([]entryOut, 0, len(entries))
				for _, e := range entries {
					out = append(out, entryOut{
						Application: e.App.String(),
						Kind:        e.Kind.String(),
						ID:          e.ID,
						Path:        e.Path,
						Primary:     hasPrimary && e == primary,
					})
				}
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(out)
			}

			if len(entries) == 0 {
				cfg.Logger.Info("No authentication containers found")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintf(w, "APP\tKIND\tID\tPATH\n")
			_, _ = fmt.Fprintf(w, "---\t----\t--\t----\n")
			for _, e := range entries {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.App, e.Kind, e.ID, e.Path)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&appName, "app", "", "Restrict the scan to one application")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
