package main

import (
	"errors"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	configDir string
	env       string
	logLevel  string
	quiet     bool
	verbose   bool
}

// rendererFlags holds flags mapped onto the renderer configuration.
type rendererFlags struct {
	escapeHTML     bool
	xhtml          bool
	highlightClass string
	highlightStyle string
	tables         bool
	strikethrough  bool
}

// styleFlags selects the page stylesheet of standalone documents.
type styleFlags struct {
	style    string
	styleDir string
	noStyle  bool
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common     commonFlags
	renderer   rendererFlags
	style      styleFlags
	output     string
	workers    int
	standalone bool
	stdout     bool
}

// preprocessFlags holds all flags for the preprocess command.
type preprocessFlags struct {
	common  commonFlags
	output  string
	workers int
}

// cssFlags holds all flags for the css command.
type cssFlags struct {
	common         commonFlags
	style          styleFlags
	highlightStyle string
	page           bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVar(&f.configDir, "config-dir", "", "directory holding settings.yaml and overlays")
	fs.StringVarP(&f.env, "env", "e", "", "settings overlay: development, testing, production")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addRendererFlags adds renderer option flags to a FlagSet.
func addRendererFlags(fs *flag.FlagSet, f *rendererFlags) {
	fs.BoolVar(&f.escapeHTML, "escape-html", true, "escape raw HTML in the input")
	fs.BoolVar(&f.xhtml, "xhtml", false, "emit XHTML instead of HTML5")
	fs.StringVar(&f.highlightClass, "highlight-class", "", "CSS class of highlighted code blocks")
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "chroma style for the highlight stylesheet")
	fs.BoolVar(&f.tables, "tables", false, "enable GFM tables")
	fs.BoolVar(&f.strikethrough, "strikethrough", false, "enable GFM strikethrough")
}

// addStyleFlags adds page stylesheet flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVar(&f.style, "style", "", "page style name")
	fs.StringVar(&f.styleDir, "style-dir", "", "directory holding styles/<name>.css")
	fs.BoolVar(&f.noStyle, "no-style", false, "do not embed a page style")
}

// newRenderFlagSet builds the render FlagSet bound to f.
func newRenderFlagSet(f *renderFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVarP(&f.standalone, "standalone", "s", false, "wrap output in a full HTML document")
	fs.BoolVar(&f.stdout, "stdout", false, "write results to stdout instead of files")

	addCommonFlags(fs, &f.common)
	addRendererFlags(fs, &f.renderer)
	addStyleFlags(fs, &f.style)
	return fs
}

// newPreprocessFlagSet builds the preprocess FlagSet bound to f.
func newPreprocessFlagSet(f *preprocessFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("preprocess", flag.ContinueOnError)

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory (default stdout)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	return fs
}

// newCSSFlagSet builds the css FlagSet bound to f.
func newCSSFlagSet(f *cssFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("css", flag.ContinueOnError)

	fs.StringVar(&f.highlightStyle, "highlight-style", "", "chroma style for the highlight stylesheet")
	fs.BoolVar(&f.page, "page", false, "prepend the page style")

	addCommonFlags(fs, &f.common)
	addStyleFlags(fs, &f.style)
	return fs
}

// newConfigFlagSet builds the config FlagSet bound to f.
func newConfigFlagSet(f *commonFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	addCommonFlags(fs, f)
	return fs
}

// parseFlags parses args with fs, routing usage output to w. Parse errors
// are wrapped with ErrUsage.
func parseFlags(fs *flag.FlagSet, args []string, w io.Writer, usage func(io.Writer)) ([]string, error) {
	fs.SetOutput(io.Discard)
	fs.Usage = func() { usage(w) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, wrapUsage(err)
	}
	return fs.Args(), nil
}
