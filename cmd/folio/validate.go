package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/source"
)

type validateOptions struct {
	source sourceFlags
	strict bool
}

func newValidateCmd(app *AppContext) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate [document...]",
		Short: "Check documents for errors and authoring mistakes",
		Long: `Parse and validate documents, then report authoring warnings such as unknown
icons, out-of-order tutorial steps or hashtag sections without tags.

Warnings do not fail the command unless --strict is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, log := app.CommandContext(cmd, "validate")
			return runValidate(ctx, cmd, log, opts, args)
		},
	}

	opts.source.register(cmd)
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Treat warnings as errors")

	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, log *logger.Logger, opts *validateOptions, args []string) error {
	src, err := opts.source.open(ctx)
	if err != nil {
		return newCommandError("validate", "opening document source", err, "Check the --git-repo or --sqlite location.")
	}
	defer src.Close()

	names, err := resolveNames(ctx, src, args)
	if err != nil {
		return newCommandError("validate", "selecting documents", err, "Pass a document path or id.")
	}

	out := cmd.OutOrStdout()
	var failed, warned int
	for _, name := range names {
		doc, err := src.Load(ctx, name)
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s\n     %v\n", name, err)
			log.WithFields(map[string]any{"document": name}).DebugErr(err, "document invalid")
			continue
		}

		warnings := source.Lint(doc)
		if len(warnings) == 0 {
			fmt.Fprintf(out, "ok   %s (%d sections)\n", name, len(doc.Sections))
			continue
		}
		warned++
		fmt.Fprintf(out, "WARN %s (%d sections)\n", name, len(doc.Sections))
		for _, w := range warnings {
			fmt.Fprintf(out, "     %s\n", w)
		}
	}

	switch {
	case failed > 0:
		return newCommandError("validate", fmt.Sprintf("%d of %d documents", failed, len(names)),
			fmt.Errorf("documents are invalid"), "Fix the reported errors and run validate again.")
	case warned > 0 && opts.strict:
		return newCommandError("validate", fmt.Sprintf("%d of %d documents", warned, len(names)),
			fmt.Errorf("documents have warnings"), "Fix the warnings or drop --strict.")
	}
	return nil
}
