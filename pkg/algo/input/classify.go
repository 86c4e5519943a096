package input

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	apperrors "github.com/trigg3rX/algo-cli/pkg/errors"
)

// DataType is the classification requested by an input flag.
type DataType int

const (
	DataAuto DataType = iota
	DataText
	DataJSON
	DataBinary
)

func (t DataType) String() string {
	switch t {
	case DataAuto:
		return "auto"
	case DataText:
		return "text"
	case DataJSON:
		return "json"
	case DataBinary:
		return "binary"
	default:
		return fmt.Sprintf("DataType(%d)", int(t))
	}
}

var errInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// Classify wraps data in the payload for t. Text and JSON require UTF-8;
// JSON is not checked for syntax.
func Classify(t DataType, data []byte) (Payload, error) {
	switch t {
	case DataText:
		if !utf8.Valid(data) {
			return nil, apperrors.NewIOError(apperrors.ErrReadingInput, errInvalidUTF8)
		}
		return Text(data), nil
	case DataJSON:
		if !utf8.Valid(data) {
			return nil, apperrors.NewIOError(apperrors.ErrReadingInput, errInvalidUTF8)
		}
		return JSON(data), nil
	case DataBinary:
		return Binary(data), nil
	case DataAuto:
		return Detect(data), nil
	default:
		return nil, fmt.Errorf("unknown data type %v", t)
	}
}

// Detect picks JSON for UTF-8 that parses as JSON, Text for any other UTF-8
// and Binary for everything else. JSON must be tried first since every JSON
// document is also valid text.
func Detect(data []byte) Payload {
	if utf8.Valid(data) {
		if json.Valid(data) {
			return JSON(data)
		}
		return Text(data)
	}
	return Binary(data)
}
