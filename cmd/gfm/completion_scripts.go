package main

import (
	"fmt"
	"strings"
)

func commandNames(cmds []commandDef) string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return strings.Join(names, " ")
}

func flagWords(flags []flagDef) string {
	words := make([]string, 0, len(flags)*2)
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return strings.Join(words, " ")
}

// flagPattern returns the bash case pattern matching a flag's spellings.
func flagPattern(f flagDef) string {
	if f.Short == "" {
		return "--" + f.Long
	}
	return "--" + f.Long + "|-" + f.Short
}

func writeBash(b *strings.Builder, cmds []commandDef) {
	b.WriteString("# bash completion for gfm\n")
	b.WriteString("_gfm_completions() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(b, "        COMPREPLY=( $(compgen -W %q -- \"${cur}\") )\n", commandNames(cmds))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${cmd}\" in\n")

	for _, c := range cmds {
		fmt.Fprintf(b, "    %s)\n", c.Name)
		if len(c.Flags) > 0 {
			b.WriteString("        case \"${prev}\" in\n")
			for _, f := range c.Flags {
				switch f.Type {
				case flagEnum:
					fmt.Fprintf(b, "        %s) COMPREPLY=( $(compgen -W %q -- \"${cur}\") ); return ;;\n",
						flagPattern(f), strings.Join(f.Values, " "))
				case flagDir:
					fmt.Fprintf(b, "        %s) COMPREPLY=( $(compgen -d -- \"${cur}\") ); return ;;\n", flagPattern(f))
				case flagFile:
					fmt.Fprintf(b, "        %s) COMPREPLY=( $(compgen -f -- \"${cur}\") ); return ;;\n", flagPattern(f))
				case flagString, flagInt:
					fmt.Fprintf(b, "        %s) return ;;\n", flagPattern(f))
				}
			}
			b.WriteString("        esac\n")
			b.WriteString("        if [[ \"${cur}\" == -* ]]; then\n")
			fmt.Fprintf(b, "            COMPREPLY=( $(compgen -W %q -- \"${cur}\") )\n", flagWords(c.Flags))
			b.WriteString("            return\n")
			b.WriteString("        fi\n")
		}
		switch {
		case c.TakesFiles:
			b.WriteString("        COMPREPLY=( $(compgen -f -X '!*.md' -- \"${cur}\") $(compgen -f -X '!*.markdown' -- \"${cur}\") $(compgen -d -- \"${cur}\") )\n")
		case len(c.Args) > 0:
			fmt.Fprintf(b, "        COMPREPLY=( $(compgen -W %q -- \"${cur}\") )\n", strings.Join(c.Args, " "))
		}
		b.WriteString("        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n")
	b.WriteString("complete -F _gfm_completions gfm\n")
}

// zshEscape escapes characters with a meaning inside _arguments entries.
func zshEscape(s string) string {
	r := strings.NewReplacer("'", `'\''`, "[", `\[`, "]", `\]`, ":", `\:`)
	return r.Replace(s)
}

func writeZsh(b *strings.Builder, cmds []commandDef) {
	b.WriteString("#compdef gfm\n\n")
	b.WriteString("_gfm() {\n")
	b.WriteString("  local -a commands\n")
	b.WriteString("  commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(b, "    '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("  )\n\n")
	b.WriteString("  if (( CURRENT == 2 )); then\n")
	b.WriteString("    _describe 'command' commands\n")
	b.WriteString("    return\n")
	b.WriteString("  fi\n\n")
	b.WriteString("  case \"${words[2]}\" in\n")

	for _, c := range cmds {
		fmt.Fprintf(b, "    %s)\n", c.Name)
		if len(c.Flags) == 0 && len(c.Args) == 0 && !c.TakesFiles {
			b.WriteString("      ;;\n")
			continue
		}
		b.WriteString("      _arguments \\\n")
		for _, f := range c.Flags {
			b.WriteString("        ")
			if f.Short != "" {
				fmt.Fprintf(b, "'(-%s --%s)'{-%s,--%s}", f.Short, f.Long, f.Short, f.Long)
			} else {
				fmt.Fprintf(b, "'--%s", f.Long)
			}
			action := "[" + zshEscape(f.Desc) + "]"
			switch f.Type {
			case flagEnum:
				action += ":" + f.Long + ":(" + strings.Join(f.Values, " ") + ")"
			case flagDir:
				action += ":" + f.Long + ":_files -/"
			case flagFile:
				action += ":" + f.Long + ":_files"
			case flagString, flagInt:
				action += ":" + f.Long + ":"
			}
			if f.Short != "" {
				fmt.Fprintf(b, "'%s' \\\n", action)
			} else {
				fmt.Fprintf(b, "%s' \\\n", action)
			}
		}
		switch {
		case c.TakesFiles:
			b.WriteString("        '*:file:_files -g \"*.(md|markdown)\"'\n")
		case len(c.Args) > 0:
			fmt.Fprintf(b, "        '1:%s:(%s)'\n", c.Name, strings.Join(c.Args, " "))
		default:
			b.WriteString("        && return\n")
		}
		b.WriteString("      ;;\n")
	}

	b.WriteString("  esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _gfm gfm\n")
}

// fishEscape quotes s for a single-quoted fish string.
func fishEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, "'", `\'`).Replace(s)
}

func writeFish(b *strings.Builder, cmds []commandDef) {
	b.WriteString("# fish completion for gfm\n")
	b.WriteString("function __fish_gfm_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_gfm_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c gfm -f\n")

	for _, c := range cmds {
		fmt.Fprintf(b, "complete -c gfm -n __fish_gfm_needs_command -a %s -d '%s'\n", c.Name, fishEscape(c.Desc))
	}

	for _, c := range cmds {
		cond := fmt.Sprintf("-n '__fish_gfm_using_command %s'", c.Name)
		for _, f := range c.Flags {
			fmt.Fprintf(b, "complete -c gfm %s", cond)
			if f.Short != "" {
				fmt.Fprintf(b, " -s %s", f.Short)
			}
			fmt.Fprintf(b, " -l %s -d '%s'", f.Long, fishEscape(f.Desc))
			switch f.Type {
			case flagEnum:
				fmt.Fprintf(b, " -x -a '%s'", strings.Join(f.Values, " "))
			case flagDir:
				b.WriteString(" -r -a '(__fish_complete_directories)'")
			case flagFile:
				b.WriteString(" -r -F")
			case flagString, flagInt:
				b.WriteString(" -x")
			}
			b.WriteString("\n")
		}
		switch {
		case c.TakesFiles:
			fmt.Fprintf(b, "complete -c gfm %s -k -a '(__fish_complete_suffix .md; __fish_complete_suffix .markdown)'\n", cond)
		case len(c.Args) > 0:
			fmt.Fprintf(b, "complete -c gfm %s -x -a '%s'\n", cond, strings.Join(c.Args, " "))
		}
	}
}
