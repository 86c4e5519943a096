// Package errors holds the failure taxonomy shared by every stage of an
// invocation. All of these failures are terminal: stages return them and the
// entrypoint renders them once.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

type Kind int

const (
	KindUsage Kind = iota + 1
	KindIO
	KindTransport
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindIO:
		return "io"
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Error is a classified invocation failure.
type Error struct {
	Kind    Kind
	Message string
	Err     error
	// Usage is the command help printed after a usage error.
	Usage string
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewUsageError(message, usage string) *Error {
	return &Error{Kind: KindUsage, Message: message, Usage: usage}
}

func NewIOError(message string, err error) *Error {
	return &Error{Kind: KindIO, Message: message, Err: err}
}

func NewTransportError(err error) *Error {
	return &Error{Kind: KindTransport, Message: ErrCallingAlgorithm, Err: err}
}

func NewDecodeError(err error) *Error {
	return &Error{Kind: KindDecode, Message: ErrResponse, Err: err}
}

// WithUsage attaches usage to a usage error that has none. Other errors are
// returned unchanged.
func WithUsage(err error, usage string) error {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindUsage && e.Usage == "" {
		e.Usage = usage
	}
	return err
}

// KindOf reports the kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if KindOf(err) == KindUsage {
		return ExitUsage
	}
	return ExitFailure
}

// Render formats err for the diagnostics stream. Usage errors are followed by
// a blank line and the command help.
func Render(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) && e.Kind == KindUsage && strings.TrimSpace(e.Usage) != "" {
		return fmt.Sprintf("%s\n\n%s", err.Error(), strings.TrimRight(e.Usage, "\n"))
	}
	return err.Error()
}
