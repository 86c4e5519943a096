// Package render writes an algorithm response in the mode chosen on the
// command line.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/trigg3rX/algo-cli/pkg/client/algorithmia"
	apperrors "github.com/trigg3rX/algo-cli/pkg/errors"
	"github.com/trigg3rX/algo-cli/pkg/logging"
)

type Mode int

const (
	// ModeDecoded parses the envelope and writes the result.
	ModeDecoded Mode = iota
	// ModeBody writes the raw body.
	ModeBody
	// ModeFull writes the status line, headers and raw body.
	ModeFull
)

func (m Mode) String() string {
	switch m {
	case ModeDecoded:
		return "decoded"
	case ModeBody:
		return "body"
	case ModeFull:
		return "full"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// SelectMode applies the precedence full response > body only > decoded.
func SelectMode(response, responseBody bool) Mode {
	switch {
	case response:
		return ModeFull
	case responseBody:
		return ModeBody
	default:
		return ModeDecoded
	}
}

type Options struct {
	Mode Mode
	// Silence suppresses alerts and the implicit duration line.
	Silence bool
	// Meta prints the duration line.
	Meta bool
	// ShowStdout prints the algorithm's captured stdout.
	ShowStdout bool
}

// Renderer drives the sink. Alerts go to stderr; captured stdout and the
// duration line go to stdout.
type Renderer struct {
	sink   *Sink
	stdout io.Writer
	stderr io.Writer
	logger logging.Logger
}

func NewRenderer(sink *Sink, stdout, stderr io.Writer, logger logging.Logger) *Renderer {
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	return &Renderer{sink: sink, stdout: stdout, stderr: stderr, logger: logger}
}

// Render writes resp according to opts. The body is only parsed in
// ModeDecoded.
func (r *Renderer) Render(resp *algorithmia.Response, opts Options) error {
	switch opts.Mode {
	case ModeFull:
		preamble := fmt.Sprintf("%s %s\n%s", resp.Proto, resp.Status, resp.HeaderBlock())
		if err := r.sink.Writeln([]byte(preamble)); err != nil {
			return err
		}
		return r.sink.Writeln(resp.Body)
	case ModeBody:
		return r.sink.Writeln(resp.Body)
	case ModeDecoded:
		return r.renderDecoded(resp, opts)
	default:
		return fmt.Errorf("unknown render mode %v", opts.Mode)
	}
}

func (r *Renderer) renderDecoded(resp *algorithmia.Response, opts Options) error {
	decoded, err := Decode(resp.Body)
	if err != nil {
		var apiErr *algorithmia.APIError
		if errors.As(err, &apiErr) && apiErr.Stacktrace != "" {
			r.logger.Debugf("Algorithm stacktrace:\n%s", apiErr.Stacktrace)
		}
		r.logger.Debugf("Undecodable response with status %s", resp.Status)
		return err
	}
	meta := decoded.Metadata

	if !opts.Silence {
		for _, alert := range meta.Alerts {
			if err := writeString(r.stderr, alert+"\n"); err != nil {
				return err
			}
		}
	}

	if opts.ShowStdout && meta.Stdout != nil {
		if err := writeString(r.stdout, *meta.Stdout); err != nil {
			return err
		}
	}

	if opts.Meta || (r.sink.IsFile() && !opts.Silence) {
		if err := writeString(r.stdout, fmt.Sprintf("Completed in %.1f seconds\n", meta.Duration)); err != nil {
			return err
		}
	}

	switch result := decoded.Result.(type) {
	case JSONResult:
		return r.sink.Writeln([]byte(result))
	case TextResult:
		return r.sink.Writeln([]byte(result))
	case BinaryResult:
		return r.sink.Write(result)
	default:
		return fmt.Errorf("unsupported result type %T", decoded.Result)
	}
}

func writeString(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return apperrors.NewIOError(apperrors.ErrWritingOutput, err)
	}
	return nil
}
