package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pixil98/go-realm/internal/game"
)

func validateCmd(sf *storeFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load every record and report failures and absent references",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := sf.open()
			if err != nil {
				return err
			}
			defer st.Close()

			out := cmd.OutOrStdout()
			realm := game.NewRealm()
			batch := realm.Load(st)
			resolved, dangling := batch.Resolve()

			for _, t := range game.EntityTypes() {
				count := 0
				realm.Entities(t, func(game.Entity) { count++ })
				fmt.Fprintf(out, "%-10s %d\n", t, count)
			}
			fmt.Fprintf(out, "references resolved: %d\n", resolved)

			if len(dangling) > 0 {
				fmt.Fprintf(out, "\nAbsent references (%d):\n", len(dangling))
				for _, d := range dangling {
					fmt.Fprintf(out, "  - %s %s -> %s\n", d.Owner, d.Field, d.Ref)
				}
			}

			if batch.Failed() > 0 {
				fmt.Fprintf(out, "\nFailed records (%d):\n", batch.Failed())
				for _, err := range batch.Failures() {
					fmt.Fprintf(out, "  - %v\n", err)
				}
				return fmt.Errorf("%d records failed to load", batch.Failed())
			}
			return nil
		},
	}
}
