package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"

	"github.com/alexisbeaulieu97/folio/internal/content"
	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

// DefaultRef is read when no revision is given.
const DefaultRef = "HEAD"

// GitSource reads documents as they were committed at a revision.
type GitSource struct {
	repo     *git.Repository
	location string
}

// NewGitSource wraps an already opened repository.
func NewGitSource(repo *git.Repository, location string) *GitSource {
	return &GitSource{repo: repo, location: location}
}

// OpenGit opens a local repository, or clones a remote one into memory
// when location is not a directory.
func OpenGit(ctx context.Context, location string) (*GitSource, error) {
	if info, err := os.Stat(location); err == nil && info.IsDir() {
		repo, err := git.PlainOpenWithOptions(location, &git.PlainOpenOptions{DetectDotGit: true})
		if err != nil {
			return nil, folioerrors.NewSourceError(location, "", fmt.Errorf("open repository: %w", err))
		}
		return NewGitSource(repo, location), nil
	}

	repo, err := git.CloneContext(ctx, memory.NewStorage(), nil, &git.CloneOptions{
		URL:  location,
		Tags: git.AllTags,
	})
	if err != nil {
		return nil, folioerrors.NewSourceError(location, "", fmt.Errorf("clone repository: %w", err))
	}
	return NewGitSource(repo, location), nil
}

// Load reads the document at file as of ref ("HEAD" when empty).
func (s *GitSource) Load(ctx context.Context, ref, file string) (content.Document, error) {
	if ref == "" {
		ref = DefaultRef
	}
	if err := ctx.Err(); err != nil {
		return content.Document{}, err
	}

	commit, err := s.commit(ref)
	if err != nil {
		return content.Document{}, folioerrors.NewSourceError(s.location, ref, err)
	}

	f, err := commit.File(cleanPath(file))
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return content.Document{}, folioerrors.NewSourceError(s.location, ref, fmt.Errorf("%s: %w", file, err))
		}
		return content.Document{}, folioerrors.NewSourceError(s.location, ref, err)
	}

	reader, err := f.Reader()
	if err != nil {
		return content.Document{}, folioerrors.NewSourceError(s.location, ref, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return content.Document{}, folioerrors.NewSourceError(s.location, ref, err)
	}

	doc, err := Parse(file+"@"+ref, data, FormatFor(file))
	if err != nil {
		return content.Document{}, err
	}
	if doc.ID == "" {
		base := path.Base(file)
		doc.ID = strings.TrimSuffix(base, path.Ext(base))
	}
	return doc, nil
}

// Files lists the document files in the tree at ref.
func (s *GitSource) Files(ref string) ([]string, error) {
	if ref == "" {
		ref = DefaultRef
	}
	commit, err := s.commit(ref)
	if err != nil {
		return nil, folioerrors.NewSourceError(s.location, ref, err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, folioerrors.NewSourceError(s.location, ref, err)
	}

	var files []string
	err = tree.Files().ForEach(func(f *object.File) error {
		switch strings.ToLower(path.Ext(f.Name)) {
		case ".yaml", ".yml", ".json", ".jsonc":
			files = append(files, f.Name)
		}
		return nil
	})
	if err != nil {
		return nil, folioerrors.NewSourceError(s.location, ref, err)
	}
	return files, nil
}

func (s *GitSource) commit(ref string) (*object.Commit, error) {
	hash, err := s.repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", ref, err)
	}
	commit, err := s.repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("read commit %s: %w", hash, err)
	}
	return commit, nil
}

func cleanPath(file string) string {
	return strings.TrimPrefix(path.Clean("/"+strings.ReplaceAll(file, "\\", "/")), "/")
}
