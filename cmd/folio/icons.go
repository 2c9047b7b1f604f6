package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/icons"
	"github.com/alexisbeaulieu97/folio/internal/styles"
)

type iconsOptions struct {
	jsonOutput bool
	types      bool
}

func newIconsCmd() *cobra.Command {
	opts := &iconsOptions{}

	cmd := &cobra.Command{
		Use:   "icons",
		Short: "List the icon names sections may use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.types {
				return renderTypeDefaults(cmd)
			}
			return renderIcons(cmd, opts.jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&opts.types, "types", false, "Show each section type's default icon instead")

	return cmd
}

type iconEntry struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Glyph string `json:"glyph"`
}

func renderIcons(cmd *cobra.Command, asJSON bool) error {
	var entries []iconEntry
	for _, name := range icons.Names() {
		icon := icons.Lookup(name)
		entries = append(entries, iconEntry{Name: string(icon.Name), Slug: icon.Slug, Glyph: icon.Glyph})
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tSLUG\tGLYPH")
	for _, e := range entries {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", e.Name, e.Slug, e.Glyph)
	}
	return writer.Flush()
}

func renderTypeDefaults(cmd *cobra.Command) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "TYPE\tDEFAULT ICON")
	for _, typ := range content.KnownTypes() {
		icon := styles.Icon(typ, "")
		name := "-"
		if !icon.IsNone() {
			name = string(icon.Name)
		}
		fmt.Fprintf(writer, "%s\t%s\n", typ, name)
	}
	return writer.Flush()
}
