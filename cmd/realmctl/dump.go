package main

import (
	"github.com/spf13/cobra"

	"github.com/pixil98/go-realm/internal/storage"
)

func dumpCmd(sf *storeFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <type:id>",
		Short: "Print a stored record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := storage.ParseKey(args[0])
			if err != nil {
				return err
			}

			st, err := sf.open()
			if err != nil {
				return err
			}
			defer st.Close()

			data, err := st.Read(key.RecordName())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
