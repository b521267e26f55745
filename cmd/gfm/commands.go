package main

import (
	"context"
	"fmt"
	"io"

	"github.com/alnah/go-gfm/internal/config"
	"github.com/alnah/go-gfm/internal/logging"
)

// runPreprocess writes the dialect-rewritten Markdown of each input. Without
// -o the results go to stdout in argument order.
func runPreprocess(ctx context.Context, args []string, env *Environment) error {
	f := &preprocessFlags{}
	fs := newPreprocessFlagSet(f)
	paths, err := parseFlags(fs, args, env.Stdout, printPreprocessUsage)
	if err != nil {
		return err
	}
	if err := validateWorkers(f.workers); err != nil {
		return err
	}

	s, err := newSession(&f.common, env)
	if err != nil {
		return err
	}
	if fs.Changed("workers") {
		s.cfg.Workers = f.workers
	}

	r, err := s.newRenderer()
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	transform := func(ctx context.Context, source string, _ FileToConvert) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return r.Preprocess(ctx, source), nil
	}

	if len(paths) == 0 {
		return transformStdin(ctx, env, f.output, transform)
	}

	files, err := discoverAll(paths, f.output, markdownExt)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	toStdout := f.output == ""
	s.logger.Debug("preprocessing", logging.FieldFiles, len(files), logging.FieldOutput, f.output)
	results := processBatch(ctx, s.cfg.Workers, files, transform, toStdout)

	if failed := printResultsWithWriter(results, f.common.quiet, f.common.verbose, env); failed > 0 {
		return fmt.Errorf("%w: %d of %d file(s)", ErrBatchFailed, failed, len(results))
	}
	return nil
}

// runCSS prints the highlight stylesheet, optionally preceded by the page
// style.
func runCSS(args []string, env *Environment) error {
	f := &cssFlags{}
	fs := newCSSFlagSet(f)
	if _, err := parseFlags(fs, args, env.Stdout, printCSSUsage); err != nil {
		return err
	}

	s, err := newSession(&f.common, env)
	if err != nil {
		return err
	}
	if f.highlightStyle != "" {
		s.cfg.Renderer.HighlightStyle = f.highlightStyle
	}
	mergeStyleFlags(&f.style, s.cfg)
	if err := s.cfg.Validate(); err != nil {
		return err
	}

	r, err := s.newRenderer()
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	var css string
	if f.page {
		s.cfg.Output.Stylesheet = true
		css, err = s.documentCSS(r)
	} else {
		css, err = r.Stylesheet()
	}
	if err != nil {
		return err
	}

	_, err = io.WriteString(env.Stdout, css)
	return err
}

// runConfig prints the effective settings as YAML.
func runConfig(args []string, env *Environment) error {
	f := &commonFlags{}
	fs := newConfigFlagSet(f)
	if _, err := parseFlags(fs, args, env.Stdout, printConfigUsage); err != nil {
		return err
	}

	s, err := newSession(f, env)
	if err != nil {
		return err
	}

	data, err := config.Marshal(s.cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if overlay, ok := config.OverlayFile(firstNonEmpty(f.env, env.Getenv("GFM_ENV"))); ok {
		fmt.Fprintf(env.Stdout, "# overlay: %s\n", overlay)
	}
	_, err = env.Stdout.Write(data)
	return err
}

// runVersion prints version information.
func runVersion(env *Environment) {
	fmt.Fprintf(env.Stdout, "gfm %s\n", Version)
}
