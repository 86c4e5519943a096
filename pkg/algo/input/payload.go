// Package input turns command-line input selections into a typed payload.
package input

const (
	ContentTypeText   = "text/plain"
	ContentTypeJSON   = "application/json"
	ContentTypeBinary = "application/octet-stream"
)

// Payload is the classified input of one invocation. The set of
// implementations is closed: Text, JSON and Binary.
type Payload interface {
	ContentType() string
	Bytes() []byte
	payload()
}

// Text is UTF-8 text submitted as text/plain.
type Text string

// JSON is raw JSON text. It is not validated locally.
type JSON string

// Binary is arbitrary bytes submitted as application/octet-stream.
type Binary []byte

func (Text) ContentType() string   { return ContentTypeText }
func (JSON) ContentType() string   { return ContentTypeJSON }
func (Binary) ContentType() string { return ContentTypeBinary }

func (p Text) Bytes() []byte   { return []byte(p) }
func (p JSON) Bytes() []byte   { return []byte(p) }
func (p Binary) Bytes() []byte { return []byte(p) }

func (Text) payload()   {}
func (JSON) payload()   {}
func (Binary) payload() {}
