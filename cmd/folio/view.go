package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/clipboard"
	"github.com/alexisbeaulieu97/folio/internal/compose"
	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/output/terminal"
	"github.com/alexisbeaulieu97/folio/internal/source"
	"github.com/alexisbeaulieu97/folio/internal/tui/reader"
)

type viewOptions struct {
	source sourceFlags
	render renderFlags
	watch  bool
}

func newViewCmd(app *AppContext) *cobra.Command {
	opts := &viewOptions{}

	cmd := &cobra.Command{
		Use:   "view <document>",
		Short: "Read a document interactively",
		Long: `Open a document in the terminal reader. Tab moves between tutorial steps
and copy blocks, space marks a step done and c copies a block to the clipboard.

With --watch the reader reloads the file whenever it is saved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, log := app.CommandContext(cmd, "view")
			log.Info("launching reader")
			err := runView(ctx, cmd, app, log, opts, args[0])
			if err != nil {
				log.Error(err, "view command failed")
			}
			return err
		},
	}

	opts.source.register(cmd)
	opts.render.register(cmd, false)
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Reload the document when the file changes")

	return cmd
}

func runView(ctx context.Context, cmd *cobra.Command, app *AppContext, log *logger.Logger, opts *viewOptions, name string) error {
	if opts.watch && (opts.source.gitRepo != "" || opts.source.sqlite != "") {
		return newCommandError("view", name, fmt.Errorf("--watch only works with files"), "Drop --watch or pass a file path.")
	}

	rc, err := opts.render.apply(cmd, *app.Config)
	if err != nil {
		return newCommandError("view", "reading render options", err, "Run 'folio view --help' for accepted values.")
	}

	src, err := opts.source.open(ctx)
	if err != nil {
		return newCommandError("view", "opening document source", err, "Check the --git-repo or --sqlite location.")
	}
	defer src.Close()

	doc, err := src.Load(ctx, name)
	if err != nil {
		return newCommandError("view", name, err, "Run 'folio validate' on the document for details.")
	}

	out := cmd.OutOrStdout()
	termOpts, err := terminalOptions(rc, out)
	if err != nil {
		return newCommandError("view", "building terminal renderer", err, "Use --theme dark or --theme light.")
	}

	readerOpts := []reader.Option{
		reader.WithComposer(newComposer(rc, log)),
		reader.WithLogger(log),
		reader.WithRenderer(func(width int) *terminal.Renderer {
			sized := append(append([]terminal.Option{}, termOpts...), terminal.WithWidth(width))
			return terminal.New(out, sized...)
		}),
	}
	if delay := app.Config.Copy.ResetAfter.Std(); delay > 0 {
		readerOpts = append(readerOpts, reader.WithMountOptions(compose.WithCopyDelay(delay)))
	}

	if opts.watch {
		watcher, err := source.Watch(name)
		if err != nil {
			return newCommandError("view", "watching "+name, err, "Check that the file's directory is readable.")
		}
		defer watcher.Close()

		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go logWatchErrors(watchCtx, watcher, log)

		readerOpts = append(readerOpts, reader.WithReload(watcher.Changes(), func(ctx context.Context) (content.Document, error) {
			return src.Load(ctx, name)
		}))
	}

	model := reader.New(doc, clipboard.NewSystem(), readerOpts...)
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(out),
	)
	final, err := program.Run()
	if m, ok := final.(reader.Model); ok {
		m.Close()
	}
	if err != nil {
		return newCommandError("view", name, err, "Run the reader in an interactive terminal.")
	}
	return nil
}

func logWatchErrors(ctx context.Context, w *source.Watcher, log *logger.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case err := <-w.Errors():
			log.Warn(fmt.Sprintf("watcher: %v", err))
		}
	}
}
