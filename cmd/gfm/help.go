package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: gfm <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render      Render markdown files to HTML")
	fmt.Fprintln(w, "  preprocess  Print markdown after the dialect rewrites")
	fmt.Fprintln(w, "  css         Print the highlight stylesheet")
	fmt.Fprintln(w, "  config      Print the effective settings")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'gfm help <command>' for details on a specific command.")
}

// printCommonUsage prints the flags shared by every command.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Settings:")
	fmt.Fprintln(w, "      --config-dir <dir>    Directory holding settings.yaml and overlays")
	fmt.Fprintln(w, "  -e, --env <name>          Overlay: dev[elopment], test[ing], prod[uction]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "      --log-level <s>       Log level: debug, info, warn, error")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  GFM_ENV, GFM_CONFIG_DIR, GFM_LOG_LEVEL, GFM_WORKERS,")
	fmt.Fprintln(w, "  GFM_OUTPUT_DIR, GFM_STYLE, GFM_STYLE_DIR")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: gfm render [flags] [input...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render markdown files or directories to HTML. Reads stdin when no input")
	fmt.Fprintln(w, "is given.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -s, --standalone          Wrap output in a full HTML document")
	fmt.Fprintln(w, "      --stdout              Write results to stdout instead of files")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --escape-html         Escape raw HTML (default true)")
	fmt.Fprintln(w, "      --xhtml               Emit XHTML instead of HTML5")
	fmt.Fprintln(w, "      --highlight-class <s> CSS class of highlighted code blocks")
	fmt.Fprintln(w, "      --highlight-style <s> Chroma style for the stylesheet")
	fmt.Fprintln(w, "      --tables              Enable GFM tables")
	fmt.Fprintln(w, "      --strikethrough       Enable GFM strikethrough")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <name>        Page style of standalone documents")
	fmt.Fprintln(w, "      --style-dir <dir>     Directory holding styles/<name>.css")
	fmt.Fprintln(w, "      --no-style            Do not embed a page style")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printPreprocessUsage prints usage for the preprocess command.
func printPreprocessUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: gfm preprocess [flags] [input...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print markdown after the dialect rewrites. Reads stdin when no input is")
	fmt.Fprintln(w, "given and writes to stdout unless -o is set.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printCSSUsage prints usage for the css command.
func printCSSUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: gfm css [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the CSS for highlighted code blocks.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --highlight-style <s> Chroma style for the stylesheet")
	fmt.Fprintln(w, "      --page                Prepend the page style")
	fmt.Fprintln(w, "      --style <name>        Page style name")
	fmt.Fprintln(w, "      --style-dir <dir>     Directory holding styles/<name>.css")
	fmt.Fprintln(w, "      --no-style            Omit the page style")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: gfm config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the effective settings as YAML after files and environment")
	fmt.Fprintln(w, "variables are applied.")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// runHelp prints help for a specific command and returns the exit code.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "preprocess":
		printPreprocessUsage(env.Stdout)
	case "css":
		printCSSUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: gfm version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: gfm help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
