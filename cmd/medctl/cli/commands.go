package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"horse-medical-records/internal/app"
	"horse-medical-records/internal/domain/bloodtests"
	"horse-medical-records/internal/domain/records"

	"github.com/spf13/cobra"
)

func seedCommand(factory Factory) *cobra.Command {
	var horsesN int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Siembra historial sintético en los dominios vacíos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, factory, func(a *app.App) error {
				seeder := a.Seeder
				if horsesN > 0 {
					seeder = seeder.WithHorses(horsesN)
				}

				rep, err := seeder.Run(cmd.Context())
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "horses: %d\n", rep.Horses)
				for _, d := range records.Domains {
					fmt.Fprintf(out, "%-11s seeded=%d skipped=%d\n", d, rep.Records[d], rep.Skipped[d])
				}
				return err
			})
		},
	}
	cmd.Flags().IntVar(&horsesN, "horses", 0, "Cantidad de caballos a sembrar (default SEED_HORSES)")
	return cmd
}

func resetCommand(factory Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "reset <horseID>",
		Short: "Borra todo el historial de un caballo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, factory, func(a *app.App) error {
				h, err := a.Horses.GetByID(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("%s: %w", args[0], err)
				}
				if err := records.ResetHorse(cmd.Context(), a.Deps, h.ID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "reset %s (%s)\n", h.ID, h.Name)
				return nil
			})
		},
	}
}

func listCommand(factory Factory) *cobra.Command {
	return &cobra.Command{
		Use:       "list <horseID> <weights|visits|bloodtests|care>",
		Short:     "Muestra el historial de un dominio como JSON (fecha desc)",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"weights", "visits", "bloodtests", "care"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, factory, func(a *app.App) error {
				ctx := cmd.Context()
				h, err := a.Horses.GetByID(ctx, args[0])
				if err != nil {
					return fmt.Errorf("%s: %w", args[0], err)
				}

				var v any
				switch records.Domain(args[1]) {
				case records.DomainWeights:
					v = a.Weights.History(ctx, h.ID)
				case records.DomainVisits:
					v = a.Visits.History(ctx, h.ID)
				case records.DomainBloodTests:
					v = a.BloodTests.History(ctx, h.ID)
				case records.DomainCare:
					v = a.Care.History(ctx, h.ID)
				default:
					return fmt.Errorf("unknown domain %q", args[1])
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(v)
			})
		},
	}
}

func flagCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "flag <param> <value>",
		Short: "Clasifica un valor de laboratorio contra la tabla de referencia",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := bloodtests.Flag(args[0], args[1])
			out := cmd.OutOrStdout()
			if r, ok := bloodtests.Reference(args[0]); ok {
				fmt.Fprintf(out, "%s %s %s: %s (%g-%g)\n", r.Key, args[1], r.Unit, c, r.Min, r.Max)
				return nil
			}
			fmt.Fprintf(out, "%s %s: %s\n", args[0], args[1], c)
			return nil
		},
	}
}

func rangesCommand() *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "ranges",
		Short: "Lista la tabla de rangos de referencia",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tLABEL\tUNIT\tMIN\tMAX\tGROUP")
			for _, r := range bloodtests.References() {
				if group != "" && string(r.Group) != group {
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%g\t%g\t%s\n", r.Key, r.Label, r.Unit, r.Min, r.Max, r.Group)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&group, "group", "", "Filtrar por grupo ("+groupList()+")")
	return cmd
}

func groupList() string {
	seen := map[string]bool{}
	for _, r := range bloodtests.References() {
		seen[string(r.Group)] = true
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, "|")
}
