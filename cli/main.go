package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/trigg3rX/algo-cli/cli/cmd"
	"github.com/trigg3rX/algo-cli/cli/core/config"
	"github.com/trigg3rX/algo-cli/pkg/algo/dispatch"
	"github.com/trigg3rX/algo-cli/pkg/client/algorithmia"
	apperrors "github.com/trigg3rX/algo-cli/pkg/errors"
	fs "github.com/trigg3rX/algo-cli/pkg/filesystem"
	"github.com/trigg3rX/algo-cli/pkg/logging"
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdin, os.Stdout, os.Stderr, &cmd.Deps{FS: &fs.OSFileSystem{}}))
}

// run executes one invocation and returns the exit status. It is the only
// place where failures are printed.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, deps *cmd.Deps) int {
	app := newApp(deps, stdin, stdout, stderr)

	err := app.RunContext(ctx, args)
	if deps.Logger != nil {
		_ = deps.Logger.Sync()
	}
	if err != nil {
		fmt.Fprintln(stderr, apperrors.Render(err))
	}
	return apperrors.ExitCode(err)
}

func newApp(deps *cmd.Deps, stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "algo",
		Usage:     "Algorithmia command-line interface",
		Version:   cmd.Version,
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "profile",
				Usage: "Name of the profile in the config file (default: $ALGO_PROFILE or \"default\")",
			},
		},
		Before: func(c *cli.Context) error {
			return setup(c, deps, stderr)
		},
		Commands: []*cli.Command{
			cmd.RunCommand(deps),
			cmd.VersionCommand(),
		},
		OnUsageError: func(c *cli.Context, err error, isSubcommand bool) error {
			return apperrors.NewUsageError(err.Error(), "")
		},
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

// setup loads configuration and fills in the collaborators the tests have not
// already provided.
func setup(c *cli.Context, deps *cmd.Deps, stderr io.Writer) error {
	if err := config.Init(c.String("profile")); err != nil {
		return err
	}

	if deps.Logger == nil {
		logger, err := logging.NewZapLogger(logging.LoggerConfig{
			ProcessName:   logging.CLIProcess,
			Level:         config.GetLogLevel(),
			IsDevelopment: config.IsLogDevelopment(),
			UseColors:     isTerminal(stderr),
			Output:        stderr,
		})
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		deps.Logger = logger
	}
	deps.Logger.Debug("Configuration loaded", "profile", config.GetProfile(), "config_file", config.GetConfigFile(), "api_server", config.GetAPIServer())

	if deps.NewExecutor == nil {
		deps.NewExecutor = func(logger logging.Logger) (dispatch.Executor, error) {
			client, err := algorithmia.NewClient(logger, algorithmia.Config{
				APIServer:       config.GetAPIServer(),
				APIKey:          config.GetAPIKey(),
				UserAgent:       cmd.UserAgent(),
				IdleConnTimeout: config.GetIdleConnTimeout(),
			})
			if err != nil {
				return nil, err
			}
			return client, nil
		}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
