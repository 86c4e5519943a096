package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/trigg3rX/algo-cli/pkg/algo/input"
	"github.com/trigg3rX/algo-cli/pkg/client/algorithmia"
	apperrors "github.com/trigg3rX/algo-cli/pkg/errors"
	"github.com/trigg3rX/algo-cli/pkg/logging"
)

type MockExecutor struct {
	mock.Mock
}

func (m *MockExecutor) Pipe(ctx context.Context, ref algorithmia.AlgoRef, body []byte, contentType string, opts algorithmia.Options) (*algorithmia.Response, error) {
	args := m.Called(ctx, ref, body, contentType, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*algorithmia.Response), args.Error(1)
}

var helloRef = algorithmia.AlgoRef{Owner: "demo", Name: "Hello"}

func TestDispatcher_Dispatch_MapsPayloadToContentType(t *testing.T) {
	tests := []struct {
		name        string
		payload     input.Payload
		body        []byte
		contentType string
	}{
		{"text", input.Text("hello"), []byte("hello"), "text/plain"},
		{"json", input.JSON(`{"a":1}`), []byte(`{"a":1}`), "application/json"},
		{"binary", input.Binary{0xFF, 0x00}, []byte{0xFF, 0x00}, "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			executor := &MockExecutor{}
			opts := algorithmia.Options{EnableStdout: true}.WithTimeout(10)
			expected := &algorithmia.Response{StatusCode: 200, Body: []byte("{}")}
			executor.On("Pipe", mock.Anything, helloRef, tt.body, tt.contentType, opts).Return(expected, nil).Once()

			resp, err := NewDispatcher(executor, logging.NewNoOpLogger()).Dispatch(context.Background(), helloRef, tt.payload, opts)

			require.NoError(t, err)
			assert.Same(t, expected, resp)
			executor.AssertExpectations(t)
		})
	}
}

func TestDispatcher_Dispatch_Failure_ReturnsTransportErrorWithoutRetry(t *testing.T) {
	executor := &MockExecutor{}
	executor.On("Pipe", mock.Anything, helloRef, []byte("x"), "text/plain", algorithmia.Options{}).
		Return(nil, errors.New("dial tcp: connection refused"))

	resp, err := NewDispatcher(executor, nil).Dispatch(context.Background(), helloRef, input.Text("x"), algorithmia.Options{})

	assert.Nil(t, resp)
	assert.True(t, apperrors.IsKind(err, apperrors.KindTransport))
	assert.Equal(t, "Error calling algorithm: dial tcp: connection refused", err.Error())
	executor.AssertNumberOfCalls(t, "Pipe", 1)
}

func TestDispatcher_Dispatch_NilPayload_ReturnsErrorWithoutCall(t *testing.T) {
	executor := &MockExecutor{}

	_, err := NewDispatcher(executor, nil).Dispatch(context.Background(), helloRef, nil, algorithmia.Options{})

	assert.EqualError(t, err, "unsupported payload type <nil>")
	executor.AssertNotCalled(t, "Pipe", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
