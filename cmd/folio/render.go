package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/folio/internal/compose"
	"github.com/alexisbeaulieu97/folio/internal/config"
	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/logger"
	htmlout "github.com/alexisbeaulieu97/folio/internal/output/html"
	"github.com/alexisbeaulieu97/folio/internal/output/jsontree"
	"github.com/alexisbeaulieu97/folio/internal/output/terminal"
	"github.com/alexisbeaulieu97/folio/pkg/diff"
	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

type renderOptions struct {
	source sourceFlags
	render renderFlags
	out    string
	jobs   int
	check  bool
}

func newRenderCmd(app *AppContext) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [document...]",
		Short: "Render documents as ANSI text, HTML or a JSON tree",
		Long: `Render one or more documents. Arguments are file paths, paths inside
--git-repo, or document ids in --sqlite. With a repository or database and no
arguments, every document is rendered.

A single document is written to stdout unless --out names a file. Several
documents need --out to name a directory; each is written to <id>.<format>.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, log := app.CommandContext(cmd, "render")
			err := runRender(ctx, cmd, app, log, opts, args)
			if err != nil {
				log.Error(err, "render command failed")
			}
			return err
		},
	}

	opts.source.register(cmd)
	opts.render.register(cmd, true)
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file, or directory when rendering several documents")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", runtime.NumCPU(), "Documents rendered concurrently")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Compare with the files under --out instead of writing them")

	return cmd
}

type rendered struct {
	doc  content.Document
	data []byte
}

func runRender(ctx context.Context, cmd *cobra.Command, app *AppContext, log *logger.Logger, opts *renderOptions, args []string) error {
	rc, err := opts.render.apply(cmd, *app.Config)
	if err != nil {
		return newCommandError("render", "reading render options", err, "Run 'folio render --help' for accepted values.")
	}

	src, err := opts.source.open(ctx)
	if err != nil {
		return newCommandError("render", "opening document source", err, "Check the --git-repo or --sqlite location.")
	}
	defer src.Close()

	names, err := resolveNames(ctx, src, args)
	if err != nil {
		return newCommandError("render", "selecting documents", err, "Pass a document path or id.")
	}

	// Enumerated sources and several arguments always write one file per document.
	toDir := opts.out != "" && (len(args) != 1 || isDir(opts.out))
	if len(names) > 1 && opts.out == "" {
		return newCommandError("render", fmt.Sprintf("%d documents", len(names)),
			fmt.Errorf("several documents need an output directory"), "Pass --out with a directory.")
	}

	var termOpts []terminal.Option
	if rc.Format == config.FormatANSI {
		target := cmd.OutOrStdout()
		if opts.out != "" {
			target = io.Discard
		}
		if termOpts, err = terminalOptions(rc, target); err != nil {
			return newCommandError("render", "building terminal renderer", err, "Use --theme dark or --theme light.")
		}
	}

	composer := newComposer(rc, log)
	results := make([]rendered, len(names))

	g, gctx := errgroup.WithContext(ctx)
	if opts.jobs > 0 {
		g.SetLimit(opts.jobs)
	}
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			doc, err := src.Load(gctx, name)
			if err != nil {
				return err
			}
			data, err := renderDocument(composer, doc, rc.Format, termOpts)
			if err != nil {
				return folioerrors.NewRenderError(doc.ID, rc.Format, err)
			}
			log.WithFields(map[string]any{"document": doc.ID, "format": rc.Format, "bytes": len(data)}).Debug("document rendered")
			results[i] = rendered{doc: doc, data: data}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return newCommandError("render", strings.Join(names, ", "), err, "Run 'folio validate' on the document for details.")
	}

	if toDir {
		if err := uniqueOutputs(opts.out, rc.Format, names, results); err != nil {
			return newCommandError("render", opts.out, err, "Give the documents distinct ids, or render them to separate directories.")
		}
	}

	if opts.check {
		if opts.out == "" {
			return newCommandError("check rendered output", "no --out", fmt.Errorf("--check compares against --out"), "Pass the --out used to write the output.")
		}
		return checkOutput(cmd, log, opts.out, toDir, rc.Format, results)
	}

	switch {
	case opts.out == "":
		_, err = cmd.OutOrStdout().Write(results[0].data)
	case toDir:
		err = writeAll(opts.out, rc.Format, results)
	default:
		err = os.WriteFile(opts.out, results[0].data, 0o644)
	}
	if err != nil {
		return newCommandError("render", "writing output", err, "Check that the output location is writable.")
	}
	log.WithFields(map[string]any{"documents": len(results)}).Info("render complete")
	return nil
}

func renderDocument(c *compose.Composer, doc content.Document, format string, termOpts []terminal.Option) ([]byte, error) {
	tree := c.Render(doc.Sections)
	var buf bytes.Buffer

	switch format {
	case config.FormatHTML:
		if err := htmlout.RenderPage(&buf, pageTitle(doc), tree); err != nil {
			return nil, err
		}
	case config.FormatJSON:
		if err := jsontree.Encode(&buf, jsontree.Envelope{ID: doc.ID, Title: doc.Title, Tree: tree}, true); err != nil {
			return nil, err
		}
	default:
		buf.WriteString(terminal.New(io.Discard, termOpts...).Render(tree))
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func pageTitle(doc content.Document) string {
	if doc.Title != "" {
		return doc.Title
	}
	return doc.ID
}

// checkOutput prints how each destination differs from the fresh render.
func checkOutput(cmd *cobra.Command, log *logger.Logger, out string, toDir bool, format string, results []rendered) error {
	stale := 0
	for _, res := range results {
		path := out
		if toDir {
			path = outputPath(out, format, res.doc)
		}
		existing, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return newCommandError("check rendered output", path, err, "Check that the output location is readable.")
		}
		if d := diff.Lines(existing, res.data, path, "rendered "+res.doc.ID, 3); d != "" {
			stale++
			log.WithFields(map[string]any{"document": res.doc.ID, "path": path}).Debug("rendered output differs")
			fmt.Fprint(cmd.OutOrStdout(), d)
		}
	}
	if stale > 0 {
		return newCommandError("check rendered output", fmt.Sprintf("%d of %d documents", stale, len(results)),
			fmt.Errorf("rendered output is out of date"), "Run the same command without --check to update it.")
	}
	return nil
}

func outputPath(dir, format string, doc content.Document) string {
	return filepath.Join(dir, doc.ID+"."+extension(format))
}

// uniqueOutputs refuses to let two documents share a destination file,
// which happens when ids default to the same file base name.
func uniqueOutputs(dir, format string, names []string, results []rendered) error {
	owners := make(map[string]string, len(results))
	for i, res := range results {
		path := outputPath(dir, format, res.doc)
		if prev, dup := owners[path]; dup {
			return fmt.Errorf("documents %s and %s both write %s", prev, names[i], path)
		}
		owners[path] = names[i]
	}
	return nil
}

func writeAll(dir, format string, results []rendered) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, res := range results {
		path := outputPath(dir, format, res.doc)
		if err := os.WriteFile(path, res.data, 0o644); err != nil {
			return err
		}
	}
	return nil
}

func extension(format string) string {
	switch format {
	case config.FormatHTML:
		return "html"
	case config.FormatJSON:
		return "json"
	default:
		return "txt"
	}
}

func isDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
