package cmd

import (
	"fmt"
	"strings"
)

type CompletionCmd struct {
	Bash CompletionBashCmd `cmd:"" help:"Generate bash completions"`
	Zsh  CompletionZshCmd  `cmd:"" help:"Generate zsh completions"`
	Fish CompletionFishCmd `cmd:"" help:"Generate fish completions"`
}

// completionCommands lists top-level commands with their descriptions.
var completionCommands = [][2]string{
	{"version", "Print version"},
	{"config", "Show configuration"},
	{"brands", "List brands"},
	{"best-time", "Show the best time to post on a platform"},
	{"scheduled", "List scheduled posts"},
	{"schedule", "Schedule a post from a JSON config"},
	{"completion", "Generate shell completions"},
}

func completionNames() string {
	names := make([]string, 0, len(completionCommands))
	for _, entry := range completionCommands {
		names = append(names, entry[0])
	}

	return strings.Join(names, " ")
}

type CompletionBashCmd struct{}

func (c *CompletionBashCmd) Run() error {
	fmt.Fprintf(stdout, `_metricoolcli_completions() {
    local cur="${COMP_WORDS[COMP_CWORD]}"
    local commands="%s"

    if [ $COMP_CWORD -eq 1 ]; then
        COMPREPLY=($(compgen -W "$commands" -- "$cur"))
    fi
}

complete -F _metricoolcli_completions metricoolcli
`, completionNames())

	return nil
}

type CompletionZshCmd struct{}

func (c *CompletionZshCmd) Run() error {
	fmt.Fprint(stdout, "#compdef metricoolcli\n\n_metricoolcli() {\n    local -a commands\n    commands=(\n")

	for _, entry := range completionCommands {
		fmt.Fprintf(stdout, "        '%s:%s'\n", entry[0], entry[1])
	}

	fmt.Fprint(stdout, `    )

    _arguments \
        '1: :->command' \
        '*::arg:->args'

    case $state in
        command)
            _describe 'command' commands
            ;;
    esac
}

compdef _metricoolcli metricoolcli
`)

	return nil
}

type CompletionFishCmd struct{}

func (c *CompletionFishCmd) Run() error {
	fmt.Fprintln(stdout, "complete -c metricoolcli -f")
	fmt.Fprintln(stdout)

	for _, entry := range completionCommands {
		fmt.Fprintf(stdout, "complete -c metricoolcli -n '__fish_use_subcommand' -a '%s' -d '%s'\n", entry[0], entry[1])
	}

	return nil
}
