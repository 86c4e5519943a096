package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/trigg3rX/algo-cli/pkg/algo/dispatch"
	"github.com/trigg3rX/algo-cli/pkg/algo/input"
	"github.com/trigg3rX/algo-cli/pkg/algo/render"
	"github.com/trigg3rX/algo-cli/pkg/client/algorithmia"
	apperrors "github.com/trigg3rX/algo-cli/pkg/errors"
	fs "github.com/trigg3rX/algo-cli/pkg/filesystem"
	"github.com/trigg3rX/algo-cli/pkg/logging"
)

// Deps are the collaborators of the run command. Logger and NewExecutor are
// read when the command runs, so they may be filled in by the app's Before
// hook.
type Deps struct {
	FS          fs.FileSystemAPI
	Logger      logging.Logger
	NewExecutor func(logger logging.Logger) (dispatch.Executor, error)
}

// runFlags are parsed after the input flags have been extracted.
func runFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "debug", Usage: "Print algorithm's STDOUT (author-only)"},
		&cli.BoolFlag{Name: "response-body", Usage: "Print HTTP response body (replaces result)"},
		&cli.BoolFlag{Name: "response", Usage: "Print full HTTP response including headers (replaces result)"},
		&cli.BoolFlag{Name: "silence", Aliases: []string{"s"}, Usage: "Suppress any output not explicitly requested (except result)"},
		&cli.BoolFlag{Name: "meta", Aliases: []string{"m"}, Usage: "Print human-readable selection of metadata (e.g. duration)"},
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Print result to a file, implies --meta"},
		&cli.Uint64Flag{Name: "timeout", Usage: "Sets algorithm timeout"},
	}
}

func RunCommand(deps *Deps) *cli.Command {
	return &cli.Command{
		Name:               "run",
		Usage:              "Run an algorithm",
		ArgsUsage:          "[options] <algorithm>",
		SkipFlagParsing:    true,
		HideHelp:           true,
		CustomHelpTemplate: runUsage,
		Action: func(c *cli.Context) error {
			return apperrors.WithUsage(runAlgorithm(c, deps), runUsage)
		},
	}
}

func runAlgorithm(c *cli.Context, deps *Deps) (err error) {
	logger := deps.Logger
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}

	scan, err := input.NewInputFlagGroup().Scan(c.Args().Slice())
	if err != nil {
		return err
	}

	set, positional, err := parseRunFlags(scan.Rest)
	if errors.Is(err, flag.ErrHelp) {
		_, err = io.WriteString(c.App.Writer, runUsage)
		return err
	}
	if err != nil {
		return apperrors.NewUsageError(err.Error(), "")
	}
	rc := cli.NewContext(c.App, set, c)

	selection, err := scan.One()
	if err != nil {
		return err
	}
	switch {
	case len(positional) == 0:
		return apperrors.NewUsageError(apperrors.ErrMissingAlgorithm, "")
	case len(positional) > 1:
		return apperrors.NewUsageError(fmt.Sprintf(apperrors.ErrUnexpectedArguments, strings.Join(positional[1:], " ")), "")
	}
	ref, err := algorithmia.ParseAlgoRef(positional[0])
	if err != nil {
		return apperrors.NewUsageError(fmt.Sprintf(apperrors.ErrInvalidAlgorithm, positional[0])+": "+err.Error(), "")
	}

	timeout := rc.Uint64("timeout")
	if timeout > math.MaxUint32 {
		return apperrors.NewUsageError(fmt.Sprintf("invalid value %d for flag -timeout: out of range", timeout), "")
	}
	opts := algorithmia.Options{EnableStdout: rc.Bool("debug")}
	if rc.IsSet("timeout") {
		opts = opts.WithTimeout(uint32(timeout))
	}

	payload, err := input.Resolve(selection, input.NewReader(deps.FS, c.App.Reader))
	if err != nil {
		return err
	}
	logger.Debugf("Resolved %s from %s as %s", selection.Flag, selection.Source(), payload.ContentType())

	sink, err := render.OpenSink(deps.FS, rc.String("output"), c.App.Writer)
	if err != nil {
		return err
	}
	if sink.IsFile() {
		logger.Debugf("Writing result to %s", sink.Path())
	}
	defer func() {
		if cerr := sink.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if deps.NewExecutor == nil {
		return fmt.Errorf("no algorithm executor configured")
	}
	executor, err := deps.NewExecutor(logger)
	if err != nil {
		return err
	}

	resp, err := dispatch.NewDispatcher(executor, logger).Dispatch(c.Context, ref, payload, opts)
	if err != nil {
		return err
	}

	renderer := render.NewRenderer(sink, c.App.Writer, c.App.ErrWriter, logger)
	return renderer.Render(resp, render.Options{
		Mode:       render.SelectMode(rc.Bool("response"), rc.Bool("response-body")),
		Silence:    rc.Bool("silence"),
		Meta:       rc.Bool("meta"),
		ShowStdout: rc.Bool("debug"),
	})
}

// parseRunFlags parses args with the run flags, allowing flags before and
// after positional arguments. Everything after a "--" that is not the value
// of a flag is positional.
func parseRunFlags(args []string) (*flag.FlagSet, []string, error) {
	set := flag.NewFlagSet("run", flag.ContinueOnError)
	set.SetOutput(io.Discard)
	for _, f := range runFlags() {
		if err := f.Apply(set); err != nil {
			return nil, nil, err
		}
	}

	var trailing []string
	if i := terminatorIndex(set, args); i >= 0 {
		args, trailing = args[:i], args[i+1:]
	}

	var positional []string
	for {
		if err := set.Parse(args); err != nil {
			return nil, nil, err
		}
		remaining := set.Args()
		if len(remaining) == 0 {
			break
		}
		positional = append(positional, remaining[0])
		args = remaining[1:]
	}
	if err := syncAliases(set); err != nil {
		return nil, nil, err
	}
	return set, append(positional, trailing...), nil
}

// syncAliases copies a flag given under one of its names to its other names,
// so "-o file" is visible as "output".
func syncAliases(set *flag.FlagSet) error {
	visited := make(map[string]bool)
	set.Visit(func(f *flag.Flag) {
		visited[f.Name] = true
	})

	for _, f := range runFlags() {
		names := f.Names()
		var given *flag.Flag
		for _, name := range names {
			if visited[name] {
				given = set.Lookup(name)
				break
			}
		}
		if given == nil {
			continue
		}
		for _, name := range names {
			if visited[name] {
				continue
			}
			if err := set.Set(name, given.Value.String()); err != nil {
				return err
			}
		}
	}
	return nil
}

// terminatorIndex returns the index of the "--" that ends flag parsing, or -1.
// A non-boolean flag written without "=" consumes the following token.
func terminatorIndex(set *flag.FlagSet, args []string) int {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return i
		}
		if len(arg) < 2 || arg[0] != '-' {
			continue
		}
		name := strings.TrimPrefix(arg[1:], "-")
		if strings.Contains(name, "=") {
			continue
		}
		f := set.Lookup(name)
		if f == nil {
			continue
		}
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			continue
		}
		i++
	}
	return -1
}
