package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/domain/catalog"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/domain/catalog/loader"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/domain/itinerary"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/shared/types"
)

func listCmd(g *globals) *cobra.Command {
	var retreatType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog packages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := types.None[catalog.RetreatType]()
			if retreatType != "" {
				t, err := catalog.ParseRetreatType(retreatType)
				if err != nil {
					return err
				}
				filter = types.Some(t)
			}

			res, err := loader.Load(cmd.Context(), loader.Options{
				Glob:       g.cfg.Catalog.Glob,
				ImageHosts: g.cfg.Catalog.ImageHosts,
			})
			if err != nil {
				return err
			}

			pkgs := res.Store.Select(filter)
			if len(pkgs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "(no packages found)")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SLUG\tTYPE\tDAYS\tFROM\tDEPARTURES")
			for _, p := range pkgs {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%d\n", p.Slug, p.Type, p.DurationDays, itinerary.FormatPrice(p.PriceFrom), len(p.Departures))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&retreatType, "type", "t", "", "only list packages of this retreat type")
	return cmd
}
