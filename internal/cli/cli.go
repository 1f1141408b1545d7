// Copyright The ConfigVars Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package cli wires the configvars commands: the interactive store
// session, and the list/show/delete maintenance commands.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/configvars/configvars"
)

var (
	flagDir    string
	flagFormat string
)

// NewRootCmd creates the root command.
// Running it without a subcommand starts an interactive entry session:
// it prompts for a storage name, then for KEY = "value" lines until an
// empty one, and persists the collected variables under that name.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configvars",
		Short: "Store and inspect named sets of configuration variables",
		Long: `Store and inspect named sets of configuration variables.
Without a subcommand, an interactive session prompts for a storage name and
KEY = "value" lines, and persists the entered variables under that name,
replacing any prior record.`,
		RunE:          runStore,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flagDir, "dir", "", "Storage directory (default: <user config dir>/configvars)")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "json", "Storage format: json, yaml, toml, env, ini or properties")

	cmd.AddCommand(newListCmd(), newShowCmd(), newDeleteCmd())

	return cmd
}

// newStore builds the store the commands operate on, from the
// persistent flags.
func newStore() (*configvars.Store, error) {
	format, err := configvars.FormatForExt("." + strings.ToLower(flagFormat))
	if err != nil {
		return nil, fmt.Errorf("invalid --format %q: %w", flagFormat, err)
	}

	opts := []configvars.StoreOption{configvars.StoreWithFormat(format)}
	if flagDir != "" {
		opts = append(opts, configvars.StoreWithDir(flagDir))
	}

	return configvars.NewStore(opts...)
}

// runStore is the interactive write path.
func runStore(cmd *cobra.Command, _ []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}

	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	fmt.Fprint(out, "storage name: ")
	name, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading storage name: %w", err)
	}
	name = strings.TrimSpace(name)
	if err := configvars.ValidateName(name); err != nil {
		return err
	}

	fmt.Fprintln(out, "Enter the variables you want to store. An empty line will save the variables and exit.")
	session := configvars.NewSession(in, out)
	vars, err := session.Run()
	if err != nil {
		return err
	}
	if len(vars) == 0 {
		fmt.Fprintln(out, "no variables entered, nothing stored")

		return nil
	}

	if err := store.Save(name, vars); err != nil {
		return err
	}
	fmt.Fprintf(out, "stored %d variable(s) for %q in %s\n", len(vars), name, store.Path(name))

	return nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the stored storage names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := newStore()
			if err != nil {
				return err
			}
			names, err := store.List()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print the variables stored under a storage name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore()
			if err != nil {
				return err
			}
			vars, err := store.Read(args[0])
			if err != nil {
				return err
			}
			for _, varName := range vars.Names() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", varName, vars.MustGet(varName))
			}

			return nil
		},
	}
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete the record stored under a storage name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore()
			if err != nil {
				return err
			}
			if err := store.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %q\n", args[0])

			return nil
		},
	}
}
