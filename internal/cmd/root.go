package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/dedene/metricool-cli/internal/errfmt"
)

// Writers used by every command; tests replace them.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

type RootFlags struct {
	JSON    bool `help:"Output JSON to stdout (best for scripting)"`
	Plain   bool `help:"Output TSV (stable for scripts)"`
	Verbose bool `help:"Enable verbose logging"`
}

type CLI struct {
	RootFlags `embed:""`

	Version    kong.VersionFlag `help:"Print version and exit"`
	VersionCmd VersionCmd       `cmd:"" name:"version" help:"Print version"`
	Config     ConfigCmd        `cmd:"" help:"Show configuration"`
	Brands     BrandsCmd        `cmd:"" help:"List brands (blogs) on the account"`
	BestTime   BestTimeCmd      `cmd:"" name:"best-time" help:"Show the best time to post on a platform"`
	Scheduled  ScheduledCmd     `cmd:"" help:"List scheduled posts"`
	Schedule   ScheduleCmd      `cmd:"" help:"Schedule a post from a JSON config"`
	Completion CompletionCmd    `cmd:"" help:"Generate shell completions"`
}

type exitPanic struct{ code int }

// Execute parses args and runs the selected command. Every failure is
// printed once to stderr and maps to exit status 1.
func Execute(args []string) (err error) {
	cli := &CLI{}

	parser, err := newParser(cli)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			if ep, ok := r.(exitPanic); ok {
				if ep.code == 0 {
					err = nil

					return
				}

				err = &ExitError{Code: ep.code, Err: errors.New("exited")}

				return
			}

			panic(r)
		}
	}()

	kctx, err := parser.Parse(args)
	if err != nil {
		parsedErr := wrapParseError(err)
		_, _ = fmt.Fprintln(stderr, parsedErr)

		return parsedErr
	}

	setupLogging(cli.Verbose)

	if err := kctx.Run(); err != nil {
		_, _ = fmt.Fprint(stderr, errfmt.Format(err))

		return &ExitError{Code: 1, Err: err}
	}

	return nil
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
}

func wrapParseError(err error) error {
	if err == nil {
		return nil
	}

	var parseErr *kong.ParseError
	if errors.As(err, &parseErr) {
		return &ExitError{Code: 1, Err: parseErr}
	}

	return err
}

func newParser(cli *CLI) (*kong.Kong, error) {
	vars := kong.Vars{
		"version": VersionString(),
	}

	parser, err := kong.New(
		cli,
		kong.Name("metricoolcli"),
		kong.Description("Metricool CLI - brands, best times and scheduled posts from the command line"),
		kong.Vars(vars),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { panic(exitPanic{code: code}) }),
		kong.Bind(&cli.RootFlags),
		kong.Help(helpPrinter),
		kong.ConfigureHelp(helpOptions()),
	)
	if err != nil {
		return nil, err
	}

	return parser, nil
}
