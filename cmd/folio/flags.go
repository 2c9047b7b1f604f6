package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/source"
)

// sourceFlags select where documents are read from. Without --git-repo or
// --sqlite, arguments are file paths.
type sourceFlags struct {
	gitRepo string
	gitRef  string
	sqlite  string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.gitRepo, "git-repo", "", "Read documents from a git repository (local path or clone URL)")
	cmd.Flags().StringVar(&f.gitRef, "git-ref", source.DefaultRef, "Revision to read from --git-repo")
	cmd.Flags().StringVar(&f.sqlite, "sqlite", "", "Read documents by id from a SQLite database")
	cmd.MarkFlagsMutuallyExclusive("git-repo", "sqlite")
}

// documentSource loads documents by argument name.
type documentSource interface {
	Load(ctx context.Context, name string) (content.Document, error)
	// Names lists every document when no argument names one.
	Names(ctx context.Context) ([]string, error)
	Close() error
}

func (f *sourceFlags) open(ctx context.Context) (documentSource, error) {
	switch {
	case f.gitRepo != "":
		repo, err := source.OpenGit(ctx, f.gitRepo)
		if err != nil {
			return nil, err
		}
		return &gitDocuments{repo: repo, ref: f.gitRef}, nil
	case f.sqlite != "":
		db, err := source.OpenSQLite(ctx, f.sqlite)
		if err != nil {
			return nil, err
		}
		return &sqlDocuments{db: db}, nil
	default:
		return fileDocuments{}, nil
	}
}

// resolveNames returns args, or every document of src when args is empty.
func resolveNames(ctx context.Context, src documentSource, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	names, err := src.Names(ctx)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no documents found")
	}
	return names, nil
}

type fileDocuments struct{}

func (fileDocuments) Load(_ context.Context, name string) (content.Document, error) {
	return source.LoadFile(name)
}

func (fileDocuments) Names(context.Context) ([]string, error) {
	return nil, fmt.Errorf("at least one document path is required")
}

func (fileDocuments) Close() error { return nil }

type gitDocuments struct {
	repo *source.GitSource
	ref  string
}

func (g *gitDocuments) Load(ctx context.Context, name string) (content.Document, error) {
	return g.repo.Load(ctx, g.ref, filepath.ToSlash(name))
}

func (g *gitDocuments) Names(context.Context) ([]string, error) {
	return g.repo.Files(g.ref)
}

func (g *gitDocuments) Close() error { return nil }

type sqlDocuments struct {
	db *source.SQLSource
}

func (s *sqlDocuments) Load(ctx context.Context, name string) (content.Document, error) {
	return s.db.Load(ctx, name)
}

func (s *sqlDocuments) Names(ctx context.Context) ([]string, error) {
	summaries, err := s.db.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(summaries))
	for _, sum := range summaries {
		names = append(names, sum.ID)
	}
	return names, nil
}

func (s *sqlDocuments) Close() error {
	return s.db.Close()
}
