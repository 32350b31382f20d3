package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pixil98/go-realm/internal/storage"
)

func backupCmd(sf *storeFlags) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write every record to a compressed snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := sf.open()
			if err != nil {
				return err
			}
			defer st.Close()

			f, err := os.Create(out)
			if err != nil {
				return err
			}

			n, err := storage.WriteSnapshot(f, st)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "backed up %d records to %s\n", n, out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "snapshot file to write")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func restoreCmd(sf *storeFlags) *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Write every record of a snapshot to the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(in)
			if err != nil {
				return err
			}
			defer f.Close()

			st, err := sf.open()
			if err != nil {
				return err
			}
			defer st.Close()

			n, err := storage.ReadSnapshot(f, st)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "restored %d records from %s\n", n, in)
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "snapshot file to read")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
