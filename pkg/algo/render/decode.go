package render

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/trigg3rX/algo-cli/pkg/client/algorithmia"
	apperrors "github.com/trigg3rX/algo-cli/pkg/errors"
)

const (
	contentTypeJSON   = "json"
	contentTypeText   = "text"
	contentTypeBinary = "binary"
)

// Result is the decoded algorithm output: JSONResult, TextResult or
// BinaryResult.
type Result interface {
	result()
}

// JSONResult holds a JSON value in compact form.
type JSONResult string

type TextResult string

type BinaryResult []byte

func (JSONResult) result()   {}
func (TextResult) result()   {}
func (BinaryResult) result() {}

// Metadata is the metadata block of a successful response.
type Metadata struct {
	ContentType string   `json:"content_type"`
	Duration    float64  `json:"duration"`
	Stdout      *string  `json:"stdout,omitempty"`
	Alerts      []string `json:"alerts,omitempty"`
}

// DecodedResult is a parsed response envelope.
type DecodedResult struct {
	Metadata Metadata
	Result   Result
}

type envelope struct {
	Result   json.RawMessage       `json:"result"`
	Metadata *Metadata             `json:"metadata"`
	Error    *algorithmia.APIError `json:"error"`
}

var (
	errMissingMetadata = errors.New("response is missing metadata")
	errMissingResult   = errors.New("response is missing result")
	errNullResult      = errors.New("result is null")
)

// Decode parses body as a response envelope. Every failure, including an
// API error envelope, is a decode error.
func Decode(body []byte) (*DecodedResult, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, apperrors.NewDecodeError(err)
	}
	if env.Error != nil {
		return nil, apperrors.NewDecodeError(env.Error)
	}
	if env.Metadata == nil {
		return nil, apperrors.NewDecodeError(errMissingMetadata)
	}
	if len(env.Result) == 0 {
		return nil, apperrors.NewDecodeError(errMissingResult)
	}

	result, err := decodeResult(env.Metadata.ContentType, env.Result)
	if err != nil {
		return nil, apperrors.NewDecodeError(err)
	}
	return &DecodedResult{Metadata: *env.Metadata, Result: result}, nil
}

func decodeResult(contentType string, raw json.RawMessage) (Result, error) {
	switch contentType {
	case "", contentTypeJSON:
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return nil, err
		}
		return JSONResult(buf.String()), nil
	case contentTypeText:
		text, err := decodeString(raw)
		if err != nil {
			return nil, fmt.Errorf("text result is not a string: %w", err)
		}
		return TextResult(text), nil
	case contentTypeBinary:
		encoded, err := decodeString(raw)
		if err != nil {
			return nil, fmt.Errorf("binary result is not a string: %w", err)
		}
		data, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("binary result is not base64: %w", err)
		}
		return BinaryResult(data), nil
	default:
		return nil, fmt.Errorf("unknown content_type %q", contentType)
	}
}

// decodeString unmarshals a JSON string. A null result is rejected.
func decodeString(raw json.RawMessage) (string, error) {
	var value *string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", err
	}
	if value == nil {
		return "", errNullResult
	}
	return *value, nil
}
