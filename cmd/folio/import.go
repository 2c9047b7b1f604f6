package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/source"
)

type importOptions struct {
	sqlite  string
	gitRepo string
	gitRef  string
}

func newImportCmd(app *AppContext) *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import <document>...",
		Short: "Store documents in a SQLite database",
		Long: `Validate documents and store them in a SQLite database, replacing any stored
document with the same id. Documents are read from files, or from --git-repo.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, log := app.CommandContext(cmd, "import")
			err := runImport(ctx, cmd, log, opts, args)
			if err != nil {
				log.Error(err, "import command failed")
			}
			return err
		},
	}

	cmd.Flags().StringVar(&opts.sqlite, "sqlite", "", "Database to import into")
	cmd.Flags().StringVar(&opts.gitRepo, "git-repo", "", "Read documents from a git repository (local path or clone URL)")
	cmd.Flags().StringVar(&opts.gitRef, "git-ref", source.DefaultRef, "Revision to read from --git-repo")
	cmd.MarkFlagRequired("sqlite") //nolint:errcheck

	return cmd
}

func runImport(ctx context.Context, cmd *cobra.Command, log *logger.Logger, opts *importOptions, args []string) error {
	from := sourceFlags{gitRepo: opts.gitRepo, gitRef: opts.gitRef}
	src, err := from.open(ctx)
	if err != nil {
		return newCommandError("import", "opening document source", err, "Check the --git-repo location.")
	}
	defer src.Close()

	db, err := source.OpenSQLite(ctx, opts.sqlite)
	if err != nil {
		return newCommandError("import", opts.sqlite, err, "Check that the database path is writable.")
	}
	defer db.Close()

	for _, name := range args {
		doc, err := src.Load(ctx, name)
		if err != nil {
			return newCommandError("import", name, err, "Run 'folio validate' on the document for details.")
		}
		if err := db.Save(ctx, doc); err != nil {
			return newCommandError("import", name, err, "Check that the database is not locked by another process.")
		}
		log.WithFields(map[string]any{"document": doc.ID, "sections": len(doc.Sections)}).Debug("document imported")
		fmt.Fprintf(cmd.OutOrStdout(), "imported %s (%d sections)\n", doc.ID, len(doc.Sections))
	}
	return nil
}
