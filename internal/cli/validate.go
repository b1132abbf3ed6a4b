package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/domain/catalog/loader"
)

func validateCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load and validate the catalog definition without serving",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := loader.Load(cmd.Context(), loader.Options{
				Glob:       g.cfg.Catalog.Glob,
				ImageHosts: g.cfg.Catalog.ImageHosts,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, f := range res.Files {
				fmt.Fprintf(out, "- %s\n", f)
			}
			fmt.Fprintf(out, "OK: %d packages\n", res.Store.Len())
			return nil
		},
	}
}
