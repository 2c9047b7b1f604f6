package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/source"
)

type listOptions struct {
	sqlite     string
	jsonOutput bool
}

func newListCmd(app *AppContext) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List documents stored in a SQLite database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _ := app.CommandContext(cmd, "list")
			db, err := source.OpenSQLite(ctx, opts.sqlite)
			if err != nil {
				return newCommandError("list", opts.sqlite, err, "Check the --sqlite path.")
			}
			defer db.Close()

			docs, err := db.List(ctx)
			if err != nil {
				return newCommandError("list", "reading documents", err, "Check that the database was created by 'folio import'.")
			}
			return renderList(cmd, docs, opts.jsonOutput)
		},
	}

	cmd.Flags().StringVar(&opts.sqlite, "sqlite", "", "Database to list")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.MarkFlagRequired("sqlite") //nolint:errcheck

	return cmd
}

type listEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Kind  string `json:"kind,omitempty"`
}

func renderList(cmd *cobra.Command, docs []source.Summary, asJSON bool) error {
	if asJSON {
		entries := make([]listEntry, 0, len(docs))
		for _, d := range docs {
			entries = append(entries, listEntry{ID: d.ID, Title: d.Title, Kind: string(d.Kind)})
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(docs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No documents stored yet.")
		fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'folio import --sqlite <db> <document>' to add one.")
		return nil
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tKIND\tTITLE")
	for _, d := range docs {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", d.ID, valueOrFallback(string(d.Kind), "-"), valueOrFallback(d.Title, "(untitled)"))
	}
	return writer.Flush()
}

func valueOrFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
