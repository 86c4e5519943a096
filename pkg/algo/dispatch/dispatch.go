// Package dispatch submits a classified payload to the remote executor.
package dispatch

import (
	"context"
	"fmt"

	"github.com/trigg3rX/algo-cli/pkg/algo/input"
	"github.com/trigg3rX/algo-cli/pkg/client/algorithmia"
	apperrors "github.com/trigg3rX/algo-cli/pkg/errors"
	"github.com/trigg3rX/algo-cli/pkg/logging"
)

// Executor performs one remote algorithm call.
type Executor interface {
	Pipe(ctx context.Context, ref algorithmia.AlgoRef, body []byte, contentType string, opts algorithmia.Options) (*algorithmia.Response, error)
}

// Dispatcher maps payloads onto a single executor call
type Dispatcher struct {
	executor Executor
	logger   logging.Logger
}

func NewDispatcher(executor Executor, logger logging.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	return &Dispatcher{executor: executor, logger: logger}
}

// Dispatch makes exactly one call. A failed call is returned as a transport
// error and never repeated.
func (d *Dispatcher) Dispatch(ctx context.Context, ref algorithmia.AlgoRef, payload input.Payload, opts algorithmia.Options) (*algorithmia.Response, error) {
	body, contentType, err := encode(payload)
	if err != nil {
		return nil, err
	}

	d.logger.Debugf("Dispatching %d bytes of %s to %s", len(body), contentType, ref)
	resp, err := d.executor.Pipe(ctx, ref, body, contentType, opts)
	if err != nil {
		return nil, apperrors.NewTransportError(err)
	}
	return resp, nil
}

func encode(payload input.Payload) ([]byte, string, error) {
	switch p := payload.(type) {
	case input.Text:
		return []byte(p), input.ContentTypeText, nil
	case input.JSON:
		return []byte(p), input.ContentTypeJSON, nil
	case input.Binary:
		return []byte(p), input.ContentTypeBinary, nil
	default:
		return nil, "", fmt.Errorf("unsupported payload type %T", payload)
	}
}
