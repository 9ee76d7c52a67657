package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	certgen "github.com/alnah/go-certgen"
	"github.com/alnah/go-certgen/internal/config"
	"github.com/alnah/go-certgen/internal/fileutil"
	"github.com/alnah/go-certgen/internal/records"
)

// Sentinel errors for CLI operations.
var (
	ErrReadTemplate  = errors.New("failed to read template image")
	ErrReadRecords   = errors.New("failed to read record source")
	ErrNoRecords     = errors.New("no records with a non-empty name")
	ErrCreateArchive = errors.New("failed to create output archive")
	ErrMissingName   = errors.New("preview requires a name")
)

// progressPrintEvery throttles verbose progress lines.
const progressPrintEvery = 1000

// runGenerateCommand parses flags and executes the generate command.
func runGenerateCommand(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseGenerateFlags(args)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	setupMaxprocs(flags.common.verbose, env)

	if err := runGenerate(ctx, positional, flags, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runGenerate orchestrates the batch generation process.
func runGenerate(ctx context.Context, positional []string, flags *generateFlags, env *Environment) error {
	cfg, err := resolveConfig(flags.common.config)
	if err != nil {
		return err
	}
	mergeGenerateFlags(flags, cfg)

	// The record source may also be given as a positional argument.
	if len(positional) > 0 {
		cfg.Data.Path = positional[0]
	}

	templateBytes, err := os.ReadFile(cfg.Template.Path) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadTemplate, err)
	}

	texts, err := readTexts(cfg)
	if err != nil {
		return err
	}

	jobs := buildJobs(texts)

	sink, cleanup, err := buildSink(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	engineCfg, err := buildEngineConfig(cfg, templateBytes)
	if err != nil {
		return err
	}

	opts := []certgen.EngineOption{certgen.WithSink(sink)}
	if flags.common.verbose {
		opts = append(opts, certgen.WithProgress(progressPrinter(env)))
	}

	engine, err := certgen.NewEngine(engineCfg, opts...)
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Generating %d certificates (workers: %d)\n",
			len(jobs), certgen.ResolveWorkers(engineCfg.Workers))
	}

	report, err := engine.Run(ctx, jobs)
	if err != nil {
		return err
	}

	return printSummary(report, flags.common.quiet, env)
}

// resolveConfig loads a config file when one is named, otherwise defaults.
func resolveConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(nameOrPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeGenerateFlags merges CLI flags into config. CLI values win.
func mergeGenerateFlags(flags *generateFlags, cfg *config.Config) {
	if flags.template != "" {
		cfg.Template.Path = flags.template
	}
	if flags.data != "" {
		cfg.Data.Path = flags.data
	}
	if flags.field != "" {
		cfg.Data.Field = flags.field
	}
	if flags.limit > 0 {
		cfg.Data.Limit = flags.limit
	}
	if flags.outputDir != "" {
		cfg.Output.Dir = flags.outputDir
	}
	if flags.zipPath != "" {
		cfg.Output.Zip = flags.zipPath
	}
	if flags.workers > 0 {
		cfg.Engine.Workers = flags.workers
	}
	if flags.batchSize > 0 {
		cfg.Engine.BatchSize = flags.batchSize
	}

	mergeBoxFlags(&flags.box, cfg)
	mergeFontFlags(&flags.font, cfg)
	mergeRenderFlags(&flags.render, cfg)
}

// mergeBoxFlags merges explicitly-set box coordinates into config.
func mergeBoxFlags(box *boxFlags, cfg *config.Config) {
	if box.x != boxCoordSentinel {
		cfg.Box.X = box.x
	}
	if box.y != boxCoordSentinel {
		cfg.Box.Y = box.y
	}
	if box.w != boxCoordSentinel {
		cfg.Box.W = box.w
	}
	if box.h != boxCoordSentinel {
		cfg.Box.H = box.h
	}
}

// mergeFontFlags merges font flags into config.
func mergeFontFlags(font *fontFlags, cfg *config.Config) {
	if font.path != "" {
		cfg.Font.Path = font.path
	}
	if font.maxSize > 0 {
		cfg.Font.MaxSize = font.maxSize
	}
	if font.color != "" {
		cfg.Font.Color = font.color
	}
}

// mergeRenderFlags merges output appearance flags into config.
func mergeRenderFlags(render *renderFlags, cfg *config.Config) {
	if render.anchor != "" {
		cfg.Output.Anchor = render.anchor
	}
	if render.quality > 0 {
		cfg.Output.Quality = render.quality
	}
}

// readTexts loads the record source and extracts the designated field.
func readTexts(cfg *config.Config) ([]string, error) {
	f, err := os.Open(cfg.Data.Path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadRecords, err)
	}
	defer f.Close()

	table, err := records.Read(f)
	if err != nil {
		return nil, err
	}

	texts, err := table.Texts(cfg.Data.Field)
	if err != nil {
		return nil, err
	}
	if cfg.Data.Limit > 0 && len(texts) > cfg.Data.Limit {
		texts = texts[:cfg.Data.Limit]
	}
	if len(texts) == 0 {
		return nil, ErrNoRecords
	}
	return texts, nil
}

// buildJobs names each output NNNNN_<sanitized>.jpg by record order.
func buildJobs(texts []string) []certgen.Job {
	jobs := make([]certgen.Job, len(texts))
	for i, text := range texts {
		jobs[i] = certgen.Job{
			Text: text,
			Dest: fmt.Sprintf("%05d_%s.jpg", i+1, fileutil.SanitizeFilename(text)),
		}
	}
	return jobs
}

// buildSink chooses the output sink: ZIP archive when configured,
// otherwise one file per certificate under the output directory.
func buildSink(cfg *config.Config) (certgen.Sink, func(), error) {
	if cfg.Output.Zip != "" {
		f, err := os.Create(cfg.Output.Zip) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrCreateArchive, err)
		}
		zs := certgen.NewZipSink(f)
		cleanup := func() {
			_ = zs.Close()
			_ = f.Close()
		}
		return zs, cleanup, nil
	}

	return certgen.NewDirSink(cfg.Output.Dir), func() {}, nil
}

// buildEngineConfig translates file config into the engine's config.
func buildEngineConfig(cfg *config.Config, templateBytes []byte) (certgen.Config, error) {
	col, err := certgen.ParseHexColor(cfg.Font.Color)
	if err != nil {
		return certgen.Config{}, err
	}

	return certgen.Config{
		Template:    templateBytes,
		Box:         certgen.Box{X: cfg.Box.X, Y: cfg.Box.Y, W: cfg.Box.W, H: cfg.Box.H},
		FontPath:    cfg.Font.Path,
		MaxFontSize: cfg.Font.MaxSize,
		Color:       col,
		Anchor:      cfg.Output.Anchor,
		Workers:     cfg.Engine.Workers,
		BatchSize:   cfg.Engine.BatchSize,
		Quality:     cfg.Output.Quality,
	}, nil
}

// progressPrinter returns a throttled progress callback.
func progressPrinter(env *Environment) certgen.ProgressFunc {
	lastPrinted := 0
	return func(p certgen.Progress) {
		if p.Completed < p.Total && p.Completed-lastPrinted < progressPrintEvery {
			return
		}
		lastPrinted = p.Completed
		fmt.Fprintf(env.Stderr, "  progress: %d/%d (%.0f certs/sec)\n",
			p.Completed, p.Total, p.Rate)
	}
}

// printSummary reports the run outcome and returns an error when jobs
// failed or were cancelled.
func printSummary(report *certgen.Report, quiet bool, env *Environment) error {
	s := report.Summary

	for _, sample := range s.ErrorSamples {
		fmt.Fprintf(env.Stderr, "FAILED %s\n", sample)
	}

	if !quiet {
		fmt.Fprintf(env.Stdout, "\nCompleted %d certificates in %s (%.1f certs/sec)\n",
			s.Succeeded, s.Elapsed.Round(10*time.Millisecond), s.Rate)
		if s.Failed > 0 || s.Cancelled > 0 {
			fmt.Fprintf(env.Stdout, "Failed: %d, cancelled: %d\n", s.Failed, s.Cancelled)
		}
	}

	switch {
	case s.Cancelled > 0:
		return fmt.Errorf("run cancelled: %d certificate(s) not rendered", s.Cancelled)
	case s.Failed > 0:
		return fmt.Errorf("%d certificate(s) failed", s.Failed)
	}
	return nil
}
