package main

import (
	"context"
	"fmt"
	"os"

	certgen "github.com/alnah/go-certgen"
)

// defaultPreviewOut is used when --out is not given.
const defaultPreviewOut = "preview.jpg"

// runPreviewCommand parses flags and executes the preview command.
func runPreviewCommand(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parsePreviewFlags(args)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	if err := runPreview(ctx, positional, flags, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runPreview renders a single certificate so placement and sizing can be
// checked before a full batch run.
func runPreview(ctx context.Context, positional []string, flags *previewFlags, env *Environment) error {
	cfg, err := resolveConfig(flags.common.config)
	if err != nil {
		return err
	}

	if flags.template != "" {
		cfg.Template.Path = flags.template
	}
	mergeBoxFlags(&flags.box, cfg)
	mergeFontFlags(&flags.font, cfg)
	mergeRenderFlags(&flags.render, cfg)

	// The name may be given as a flag or a positional argument.
	name := flags.name
	if name == "" && len(positional) > 0 {
		name = positional[0]
	}
	if name == "" {
		return ErrMissingName
	}

	out := flags.out
	if out == "" {
		out = defaultPreviewOut
	}

	templateBytes, err := os.ReadFile(cfg.Template.Path) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadTemplate, err)
	}

	engineCfg, err := buildEngineConfig(cfg, templateBytes)
	if err != nil {
		return err
	}
	engineCfg.Workers = 1
	engineCfg.BatchSize = 1

	engine, err := certgen.NewEngine(engineCfg, certgen.WithSink(certgen.NewDirSink(".")))
	if err != nil {
		return err
	}

	report, err := engine.Run(ctx, []certgen.Job{{Text: name, Dest: out}})
	if err != nil {
		return err
	}
	if r := report.Results[0]; r.Err != nil {
		return r.Err
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", out)
	}
	return nil
}
