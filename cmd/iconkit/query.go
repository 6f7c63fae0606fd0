package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newLibrariesCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "libraries",
		Short: "List catalog libraries with their variants and icon counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, load, func(a *app) error {
				t := &table{headers: []string{"KEY", "NAME", "VARIANTS", "ICONS"}}
				for _, e := range a.catalog.Entries() {
					names, err := a.catalog.Names(cmd.Context(), e.Key, "")
					if err != nil {
						return err
					}
					variants := "-"
					if e.Suffixed() {
						variants = strings.Join(e.Suffixes, ",")
					}
					t.add(e.Key, e.DisplayName, variants, fmt.Sprint(len(names)))
				}
				t.render(cmd.OutOrStdout())
				return nil
			})
		},
	}
}

func newNamesCmd(load configLoader) *cobra.Command {
	var variant string
	cmd := &cobra.Command{
		Use:   "names <library>",
		Short: "Print the icon names of a library variant, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, load, func(a *app) error {
				names, err := a.catalog.Names(cmd.Context(), args[0], variant)
				if err != nil {
					return err
				}
				for _, n := range names {
					fmt.Fprintln(cmd.OutOrStdout(), n)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&variant, "variant", "", "variant (suffix); default variant when empty")
	return cmd
}

func newSVGCmd(load configLoader) *cobra.Command {
	var (
		variant string
		size    int
	)
	cmd := &cobra.Command{
		Use:   "svg <library> <name>",
		Short: "Print the SVG markup of an icon",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < 0 {
				return fmt.Errorf("--size must not be negative")
			}
			return withApp(cmd, load, func(a *app) error {
				def, err := a.catalog.Variant(cmd.Context(), args[0], variant, args[1])
				if err != nil {
					return err
				}
				out := def.WithSize(size)
				if !strings.HasSuffix(out, "\n") {
					out += "\n"
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), out)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&variant, "variant", "", "variant (suffix); default variant when empty")
	cmd.Flags().IntVar(&size, "size", 0, "stamp width and height; 0 keeps the markup unchanged")
	return cmd
}
