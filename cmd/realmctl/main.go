package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pixil98/go-realm/internal/storage"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// storeFlags selects the record store a command works on.
type storeFlags struct {
	backend string
	path    string
}

func (f *storeFlags) open() (storage.Storer, error) {
	return storage.Open(f.backend, f.path)
}

func newRootCmd() *cobra.Command {
	var sf storeFlags

	root := &cobra.Command{
		Use:          "realmctl",
		Short:        "Offline administration of realm record stores",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&sf.path, "store", "", "record store path (directory or bolt file)")
	root.PersistentFlags().StringVar(&sf.backend, "backend", storage.BackendFile, "record store backend (file or bolt)")
	_ = root.MarkPersistentFlagRequired("store")

	root.AddCommand(validateCmd(&sf))
	root.AddCommand(importCmd(&sf))
	root.AddCommand(backupCmd(&sf))
	root.AddCommand(restoreCmd(&sf))
	root.AddCommand(dumpCmd(&sf))
	return root
}
