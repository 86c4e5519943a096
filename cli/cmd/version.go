package cmd

import (
	"fmt"
	"runtime"

	"github.com/urfave/cli/v2"
)

// Set at build time with -ldflags "-X github.com/trigg3rX/algo-cli/cli/cmd.Version=...".
var (
	Version   = "v0.1.0"
	BuildDate = "unknown"
)

// UserAgent is sent with every algorithm call.
func UserAgent() string {
	return "algo-cli/" + Version
}

func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "Display version information",
		Action: displayVersion,
	}
}

func displayVersion(c *cli.Context) error {
	w := c.App.Writer
	fmt.Fprintln(w, "Algorithmia CLI")
	fmt.Fprintf(w, "Version:      %s\n", Version)
	fmt.Fprintf(w, "Build Date:   %s\n", BuildDate)
	fmt.Fprintf(w, "Go Version:   %s\n", runtime.Version())
	return nil
}
