package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func importCmd(sf *storeFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "import <world.yaml>",
		Short: "Write the records of a YAML world file to the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			st, err := sf.open()
			if err != nil {
				return err
			}
			defer st.Close()

			n, err := importWorld(f, st)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d records\n", n)
			return nil
		},
	}
}
