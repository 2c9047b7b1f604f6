package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"github.com/alexisbeaulieu97/folio/internal/content"
	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

// ErrNotFound is returned when a document id does not exist.
var ErrNotFound = errors.New("document not found")

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	id      TEXT PRIMARY KEY,
	title   TEXT NOT NULL DEFAULT '',
	slug    TEXT NOT NULL DEFAULT '',
	excerpt TEXT NOT NULL DEFAULT '',
	kind    TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS sections (
	document_id TEXT NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
	position    INTEGER NOT NULL,
	type        TEXT NOT NULL,
	content     TEXT NOT NULL DEFAULT '',
	title       TEXT NOT NULL DEFAULT '',
	icon        TEXT NOT NULL DEFAULT '',
	quote       TEXT NOT NULL DEFAULT '',
	step_number INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (document_id, position)
);`

// Summary identifies a stored document.
type Summary struct {
	ID    string
	Title string
	Kind  content.Kind
}

// SQLSource stores documents in a SQL database. Section order is the
// position column, which Save assigns from the document's slice order.
type SQLSource struct {
	db      *sql.DB
	builder sq.StatementBuilderType
	name    string
}

// OpenSQLite opens (and creates if needed) the SQLite database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLSource, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, folioerrors.NewSourceError("sqlite:"+path, "", err)
	}
	src := NewSQLSource(db, "sqlite:"+path)
	if err := src.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return src, nil
}

// NewSQLSource uses db, which must speak SQLite-compatible SQL.
func NewSQLSource(db *sql.DB, name string) *SQLSource {
	return &SQLSource{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		name:    name,
	}
}

// Close releases the database.
func (s *SQLSource) Close() error {
	return s.db.Close()
}

// EnsureSchema creates the tables when they do not exist.
func (s *SQLSource) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return folioerrors.NewSourceError(s.name, "", fmt.Errorf("create schema: %w", err))
	}
	return nil
}

// Load reads a document and its sections in author order.
func (s *SQLSource) Load(ctx context.Context, id string) (content.Document, error) {
	query, args, err := s.builder.
		Select("id", "title", "slug", "excerpt", "kind").
		From("documents").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return content.Document{}, folioerrors.NewSourceError(s.name, id, err)
	}

	var doc content.Document
	var kind string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&doc.ID, &doc.Title, &doc.Slug, &doc.Excerpt, &kind)
	if errors.Is(err, sql.ErrNoRows) {
		return content.Document{}, folioerrors.NewSourceError(s.name, id, ErrNotFound)
	}
	if err != nil {
		return content.Document{}, folioerrors.NewSourceError(s.name, id, err)
	}
	doc.Kind = content.Kind(kind)

	sections, err := s.sections(ctx, id)
	if err != nil {
		return content.Document{}, folioerrors.NewSourceError(s.name, id, err)
	}
	doc.Sections = sections
	return doc, nil
}

func (s *SQLSource) sections(ctx context.Context, id string) ([]content.Section, error) {
	query, args, err := s.builder.
		Select("type", "content", "title", "icon", "quote", "step_number").
		From("sections").
		Where(sq.Eq{"document_id": id}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sections: %w", err)
	}
	defer rows.Close()

	sections := []content.Section{}
	for rows.Next() {
		var sec content.Section
		var typ string
		if err := rows.Scan(&typ, &sec.Content, &sec.Title, &sec.Icon, &sec.Quote, &sec.StepNumber); err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		sec.Type = content.SectionType(typ)
		sections = append(sections, sec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read sections: %w", err)
	}
	return sections, nil
}

// List returns every stored document ordered by id.
func (s *SQLSource) List(ctx context.Context) ([]Summary, error) {
	query, args, err := s.builder.Select("id", "title", "kind").From("documents").OrderBy("id").ToSql()
	if err != nil {
		return nil, folioerrors.NewSourceError(s.name, "", err)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, folioerrors.NewSourceError(s.name, "", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		var kind string
		if err := rows.Scan(&sum.ID, &sum.Title, &kind); err != nil {
			return nil, folioerrors.NewSourceError(s.name, "", err)
		}
		sum.Kind = content.Kind(kind)
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, folioerrors.NewSourceError(s.name, "", err)
	}
	return out, nil
}

// Save replaces the stored copy of doc. The document must have an id.
func (s *SQLSource) Save(ctx context.Context, doc content.Document) (err error) {
	if doc.ID == "" {
		return folioerrors.NewValidationError("id", "document id is required to save", nil)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return folioerrors.NewSourceError(s.name, doc.ID, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	exec := func(builder interface {
		ToSql() (string, []any, error)
	}) error {
		query, args, buildErr := builder.ToSql()
		if buildErr != nil {
			return buildErr
		}
		_, execErr := tx.ExecContext(ctx, query, args...)
		return execErr
	}

	if err = exec(s.builder.Delete("sections").Where(sq.Eq{"document_id": doc.ID})); err != nil {
		return folioerrors.NewSourceError(s.name, doc.ID, err)
	}
	if err = exec(s.builder.Delete("documents").Where(sq.Eq{"id": doc.ID})); err != nil {
		return folioerrors.NewSourceError(s.name, doc.ID, err)
	}
	if err = exec(s.builder.Insert("documents").
		Columns("id", "title", "slug", "excerpt", "kind").
		Values(doc.ID, doc.Title, doc.Slug, doc.Excerpt, string(doc.Kind))); err != nil {
		return folioerrors.NewSourceError(s.name, doc.ID, err)
	}

	if len(doc.Sections) > 0 {
		insert := s.builder.Insert("sections").
			Columns("document_id", "position", "type", "content", "title", "icon", "quote", "step_number")
		for i, sec := range doc.Sections {
			insert = insert.Values(doc.ID, i, string(sec.Type), sec.Content, sec.Title, sec.Icon, sec.Quote, sec.StepNumber)
		}
		if err = exec(insert); err != nil {
			return folioerrors.NewSourceError(s.name, doc.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return folioerrors.NewSourceError(s.name, doc.ID, err)
	}
	return nil
}
