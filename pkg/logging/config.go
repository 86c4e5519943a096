package logging

import "io"

const TimeFormat = "2006-01-02 15:04:05"

type ProcessName string

const CLIProcess ProcessName = "algo"

type LoggerConfig struct {
	ProcessName ProcessName
	// Level is one of debug, info, warn, error. Empty means warn.
	Level         string
	IsDevelopment bool
	UseColors     bool
	// Output receives encoded log lines; nil means os.Stderr.
	Output io.Writer
}
