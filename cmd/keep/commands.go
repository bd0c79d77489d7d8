package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/veslov/keep"
	"github.com/veslov/keep/kv"
)

// newStore builds the resolution record from the persistent flags. The
// returned cleanup closes the SQLite store when --kv is in play.
func newStore(cmd *cobra.Command) (*keep.Store, func() error, error) {
	st := keep.New()
	for flag, with := range map[string]func(string) *keep.Store{
		"linux":   st.WithLinux,
		"macos":   st.WithMacOS,
		"unix":    st.WithUnix,
		"windows": st.WithWindows,
		"generic": st.WithGeneric,
		"browser": st.WithBrowser,
	} {
		if v, _ := cmd.Flags().GetString(flag); v != "" {
			with(v)
		}
	}

	cleanup := func() error { return nil }
	if path, _ := cmd.Flags().GetString("kv"); path != "" {
		store, err := kv.OpenSQLite(path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening kv store: %w", err)
		}
		st.WithBackend(keep.KVBackend{Store: store})
		cleanup = store.Close
	}
	return st, cleanup, nil
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the resolved storage location",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cleanup, err := newStore(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		name, err := st.Filename()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), name)
		return nil
	},
}

var existsCmd = &cobra.Command{
	Use:   "exists",
	Short: "Check whether the resolved location holds a value",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cleanup, err := newStore(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		name, err := st.Filename()
		if err != nil {
			return err
		}
		ok, err := st.Exists(cmd.Context())
		if err != nil {
			return err
		}
		if !ok {
			printWarning("%s does not exist", name)
			return fmt.Errorf("%s: %w", name, keep.ErrNotFound)
		}
		printSuccess("%s exists", name)
		return nil
	},
}

var catCmd = &cobra.Command{
	Use:   "cat",
	Short: "Write the stored blob to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cleanup, err := newStore(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		data, err := st.Read(cmd.Context())
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var putCmd = &cobra.Command{
	Use:   "put [file]",
	Short: "Store the contents of a file (or stdin) at the resolved location",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cleanup, err := newStore(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		var data []byte
		if len(args) == 0 || args[0] == "-" {
			data, err = io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
		} else {
			data, err = os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
		}

		if err := st.Write(cmd.Context(), data); err != nil {
			return err
		}

		name, err := st.Filename()
		if err != nil {
			return err
		}
		printSuccess("Wrote %d bytes to %s", len(data), name)
		return nil
	},
}
