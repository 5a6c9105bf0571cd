package cmd

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const colorEnvVar = "METRICOOL_COLOR"

var helpExamples = map[string][]string{
	"": {
		"metricoolcli brands",
		"metricoolcli best-time linkedin",
		"metricoolcli scheduled --start 2026-01-30 --end 2026-02-05",
	},
	"best-time": {
		"metricoolcli best-time linkedin",
		"metricoolcli best-time x --blog 12345 --top 3",
	},
	"scheduled": {
		"metricoolcli scheduled",
		"metricoolcli scheduled --start 2026-01-30 --end 2026-02-05 --json",
	},
	"schedule": {
		`metricoolcli schedule '{"platforms":["linkedin","x"],"text":"Hello!","datetime":"2026-01-30T10:00:00"}'`,
		`metricoolcli schedule '{"platforms":["linkedin","x"],"text":{"linkedin":"Long version...","x":"Short"},"datetime":"2026-01-30T10:00:00"}'`,
		`metricoolcli schedule --dry-run '{"platforms":["bluesky"],"text":"Hi","datetime":"2026-01-30T10:00:00","blogId":"12345"}'`,
	},
}

func helpOptions() kong.HelpOptions {
	return kong.HelpOptions{NoExpandSubcommands: true}
}

// helpPrinter renders kong's help into a buffer, appends examples for the
// selected command and colours section headings when the terminal allows.
func helpPrinter(options kong.HelpOptions, ctx *kong.Context) error {
	out := ctx.Stdout

	var buf bytes.Buffer

	ctx.Stdout = &buf
	defer func() { ctx.Stdout = out }()

	// kong sizes help from COLUMNS when it cannot see a terminal.
	restore := setColumns(terminalWidth(out))
	defer restore()

	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}

	text := appendExamples(buf.String(), selectedCommand(ctx))
	_, err := io.WriteString(out, styleHelp(text, helpProfile(out, helpColorMode(ctx.Args))))

	return err
}

func selectedCommand(ctx *kong.Context) string {
	if node := ctx.Selected(); node != nil {
		return node.Name
	}

	return ""
}

func appendExamples(text, command string) string {
	examples, ok := helpExamples[command]
	if !ok {
		return text
	}

	var sb strings.Builder

	sb.WriteString(strings.TrimRight(text, "\n"))
	sb.WriteString("\n\nExamples:\n")

	for _, ex := range examples {
		sb.WriteString("  " + ex + "\n")
	}

	return sb.String()
}

// helpColorMode reads METRICOOL_COLOR (auto, always, never). Machine output
// flags turn colour off.
func helpColorMode(args []string) string {
	if v := strings.TrimSpace(os.Getenv(colorEnvVar)); v != "" {
		return strings.ToLower(v)
	}

	for _, a := range args {
		if a == "--json" || a == "--plain" {
			return "never"
		}
	}

	return "auto"
}

func helpProfile(w io.Writer, mode string) termenv.Profile {
	switch {
	case termenv.EnvNoColor(), mode == "never":
		return termenv.Ascii
	case mode == "always":
		return termenv.TrueColor
	default:
		return termenv.NewOutput(w, termenv.WithProfile(termenv.EnvColorProfile())).Profile
	}
}

var helpSections = map[string]bool{
	"Arguments:": true,
	"Commands:":  true,
	"Examples:":  true,
	"Flags:":     true,
}

func styleHelp(text string, profile termenv.Profile) string {
	if profile == termenv.Ascii {
		return text
	}

	section := func(s string) string {
		return termenv.String(s).Foreground(profile.Color("#a78bfa")).Bold().String()
	}
	command := func(s string) string {
		return termenv.String(s).Foreground(profile.Color("#38bdf8")).Bold().String()
	}
	example := func(s string) string {
		return termenv.String(s).Foreground(profile.Color("#9ca3af")).String()
	}

	current := ""
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "Usage:"):
			lines[i] = section("Usage:") + strings.TrimPrefix(line, "Usage:")
		case helpSections[line]:
			current = line
			lines[i] = section(line)
		case current == "Commands:" && strings.HasPrefix(line, "  ") && !strings.HasPrefix(line, "   "):
			name, rest, found := strings.Cut(strings.TrimPrefix(line, "  "), " ")
			lines[i] = "  " + command(name)

			if found {
				lines[i] += " " + rest
			}
		case current == "Examples:" && strings.HasPrefix(line, "  "):
			lines[i] = "  " + example(strings.TrimPrefix(line, "  "))
		}
	}

	return strings.Join(lines, "\n")
}

func terminalWidth(w io.Writer) int {
	if n, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && n > 0 {
		return n
	}

	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}

	return 80
}

// setColumns sets COLUMNS to width and returns a func restoring the old value.
func setColumns(width int) func() {
	old, had := os.LookupEnv("COLUMNS")
	_ = os.Setenv("COLUMNS", strconv.Itoa(width))

	return func() {
		if had {
			_ = os.Setenv("COLUMNS", old)
		} else {
			_ = os.Unsetenv("COLUMNS")
		}
	}
}
