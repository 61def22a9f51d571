package main

import (
	"errors"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/imaddar/poker-arena/services/tablecore/internal/domain"
)

type CLI struct {
	Debug  bool   `help:"Enable debug logging" env:"ENGINE_DEBUG"`
	Format string `short:"f" enum:"json,dump,text" default:"json" help:"Output format (json, dump, text)" env:"ENGINE_FORMAT"`

	Deck   DeckCmd   `cmd:"" help:"Print the standard 52-card deck"`
	Config ConfigCmd `cmd:"" help:"Validate an HCL table file and print its tables"`
	Action ActionCmd `cmd:"" help:"Validate a player action such as 'bet 200'"`
	Hand   HandCmd   `cmd:"" help:"Build a validated hand snapshot"`
}

func main() {
	envErr := dotenvError(godotenv.Load())

	if err := run(os.Args[1:], os.Stdout, os.Stderr, envErr); err != nil {
		os.Exit(1)
	}
}

// dotenvError drops the error for an absent .env file, which is optional.
func dotenvError(err error) error {
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func run(args []string, stdout, stderr io.Writer, envErr error) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("engine"),
		kong.Description("Build and validate poker table values"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, false)
	ctx, err := parser.Parse(args)
	if err != nil {
		logger.Error("invalid arguments", "error", err)
		return err
	}

	logger = newLogger(stderr, cli.Debug)
	if envErr != nil {
		logger.Debug("skipped .env file", "error", envErr)
	}
	logger.Debug("running command", "command", ctx.Command(), "format", cli.Format)

	if err := ctx.Run(&app{logger: logger, out: stdout, format: cli.Format}); err != nil {
		logFailure(logger, err)
		return err
	}
	return nil
}

func newLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "engine",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func logFailure(logger *log.Logger, err error) {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		logger.Error("validation failed", "kind", domainErr.Kind, "error", err)
		return
	}
	logger.Error("command failed", "error", err)
}
