package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/hints"
	"github.com/alnah/go-mdsite/internal/site"
)

// runBuild implements the build command.
func runBuild(args []string) error {
	flags, _, err := parseBuildFlags(args)
	if err != nil {
		return err
	}

	_, err = buildOnce(context.Background(), flags)
	return err
}

// buildOnce loads config, assembles the site and renderer pool, and runs a
// single build. Returns the site for callers that keep serving it.
func buildOnce(ctx context.Context, flags *buildFlags) (*site.Site, error) {
	start := time.Now()

	cfg, err := LoadConfig(flags.common.config, flags.common.root)
	if err != nil {
		return nil, err
	}

	pool := mdsite.NewRendererPool(mdsite.ResolvePoolSize(flags.workers), rendererOptions(cfg)...)
	defer pool.Close()

	s := site.New(site.Options{
		RootDir:     flags.common.root,
		OutputDir:   flags.output,
		BaseURL:     cfg.Site.URL,
		Title:       cfg.Site.Title,
		Description: cfg.Site.Description,
		Drafts:      flags.drafts,
		Warnf:       warnf(flags.common),
		Infof:       infof(flags.common),
	})

	if err := s.Build(ctx, pool); err != nil {
		return nil, withHint(err)
	}

	if !flags.common.quiet {
		fmt.Fprintf(os.Stderr, "Built %d pages in %d ms\n",
			len(s.Pages()), time.Since(start).Milliseconds())
	}
	return s, nil
}

// withHint appends an actionable hint to renderer initialization errors.
func withHint(err error) error {
	switch {
	case errors.Is(err, mdsite.ErrThemeNotFound):
		return fmt.Errorf("%w%s", err, hints.ForUnknownTheme())
	case errors.Is(err, mdsite.ErrGrammarLoad), errors.Is(err, mdsite.ErrInvalidAssetPath):
		return fmt.Errorf("%w%s", err, hints.ForGrammarDir())
	default:
		return err
	}
}

// warnf returns the per-page warning sink honoring --quiet.
func warnf(common commonFlags) func(string, ...any) {
	if common.quiet {
		return nil
	}
	return func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
	}
}

// infof returns the per-page progress sink, active only with --verbose.
func infof(common commonFlags) func(string, ...any) {
	if !common.verbose || common.quiet {
		return nil
	}
	return func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
