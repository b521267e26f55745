package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"

	gfm "github.com/alnah/go-gfm"
	"github.com/alnah/go-gfm/internal/config"
	"github.com/alnah/go-gfm/internal/fileutil"
	"github.com/alnah/go-gfm/internal/logging"
	"github.com/alnah/go-gfm/internal/pipeline"
)

// renderJob holds what every file of a render batch shares.
type renderJob struct {
	renderer   *gfm.Renderer
	standalone bool
	css        string
	relocate   bool // rewrite relative links when output lands elsewhere
}

// transform renders one source and, when needed, relocates its relative
// links and wraps it in a document.
func (j *renderJob) transform(ctx context.Context, source string, f FileToConvert) (string, error) {
	out, err := j.renderer.RenderString(ctx, source)
	if err != nil {
		return "", err
	}

	if j.relocate && f.InputPath != "" && f.OutputPath != "" {
		out, err = pipeline.RewriteRelativePaths(out, filepath.Dir(f.InputPath), filepath.Dir(f.OutputPath))
		if err != nil {
			return "", fmt.Errorf("rewriting relative paths: %w", err)
		}
	}

	if j.standalone {
		return j.renderer.Document(ctx, out, j.css)
	}
	return out, nil
}

// mergeRenderFlags merges CLI flags into config. Only flags set on the
// command line override config values.
func mergeRenderFlags(fs *flag.FlagSet, f *renderFlags, cfg *config.Config) {
	if fs.Changed("escape-html") {
		cfg.Renderer.EscapeHTML = f.renderer.escapeHTML
	}
	if fs.Changed("xhtml") {
		cfg.Renderer.XHTML = f.renderer.xhtml
	}
	if f.renderer.highlightClass != "" {
		cfg.Renderer.HighlightClass = f.renderer.highlightClass
	}
	if f.renderer.highlightStyle != "" {
		cfg.Renderer.HighlightStyle = f.renderer.highlightStyle
	}
	if fs.Changed("tables") {
		cfg.Renderer.Tables = f.renderer.tables
	}
	if fs.Changed("strikethrough") {
		cfg.Renderer.Strikethrough = f.renderer.strikethrough
	}
	if fs.Changed("standalone") {
		cfg.Output.Standalone = f.standalone
	}
	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}
	mergeStyleFlags(&f.style, cfg)
}

// runRender orchestrates the render command.
func runRender(ctx context.Context, args []string, env *Environment) error {
	f := &renderFlags{}
	fs := newRenderFlagSet(f)
	paths, err := parseFlags(fs, args, env.Stdout, printRenderUsage)
	if err != nil {
		return err
	}
	// Validate worker count early
	if err := validateWorkers(f.workers); err != nil {
		return err
	}

	s, err := newSession(&f.common, env)
	if err != nil {
		return err
	}
	mergeRenderFlags(fs, f, s.cfg)
	if err := s.cfg.Validate(); err != nil {
		return err
	}

	r, err := s.newRenderer()
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	job := &renderJob{renderer: r, standalone: s.cfg.Output.Standalone}
	if job.standalone {
		if job.css, err = s.documentCSS(r); err != nil {
			return fmt.Errorf("resolving stylesheet: %w", err)
		}
	}

	if len(paths) == 0 {
		return transformStdin(ctx, env, f.output, job.transform)
	}

	outputDir := resolveOutputDir(f.output, s.cfg)
	files, err := discoverAll(paths, outputDir, htmlExt)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	job.relocate = !f.stdout

	s.logger.Debug("rendering", logging.FieldFiles, len(files), logging.FieldWorkers, resolveWorkers(s.cfg.Workers))
	results := processBatch(ctx, s.cfg.Workers, files, job.transform, f.stdout)

	if failed := printResultsWithWriter(results, f.common.quiet, f.common.verbose, env); failed > 0 {
		return fmt.Errorf("%w: %d of %d file(s)", ErrBatchFailed, failed, len(results))
	}
	return nil
}

// transformStdin applies transform to standard input. The result goes to
// outputPath when set, to stdout otherwise.
func transformStdin(ctx context.Context, env *Environment, outputPath string, transform transformFunc) error {
	content, err := io.ReadAll(env.Stdin)
	if err != nil {
		return fmt.Errorf("%w: stdin: %w", ErrReadMarkdown, err)
	}

	out, err := transform(ctx, string(content), FileToConvert{})
	if err != nil {
		return err
	}

	if outputPath == "" {
		_, err = io.WriteString(env.Stdout, out)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), dirPermissions); err != nil {
		return fmt.Errorf("%w: creating output directory: %w", ErrWriteOutput, err)
	}
	if err := fileutil.WriteAtomic(outputPath, []byte(out), filePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}
