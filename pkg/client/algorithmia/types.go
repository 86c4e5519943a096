package algorithmia

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Options are forwarded to the API as query parameters and never enforced
// locally.
type Options struct {
	EnableStdout bool
	// Timeout in seconds; nil leaves the server default in place.
	Timeout *uint32
}

// WithTimeout returns a copy of o that forwards seconds as the timeout.
func (o Options) WithTimeout(seconds uint32) Options {
	o.Timeout = &seconds
	return o
}

// Response is a fully read API response. Body has been read to completion
// and the connection released.
type Response struct {
	Proto      string
	Status     string
	StatusCode int
	Header     http.Header
	Body       []byte
}

// HeaderBlock renders the headers as "Key: value" lines in key order.
func (r *Response) HeaderBlock() string {
	keys := make([]string, 0, len(r.Header))
	for key := range r.Header {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		for _, value := range r.Header[key] {
			fmt.Fprintf(&b, "%s: %s\n", key, value)
		}
	}
	return b.String()
}

// APIError is the error object of an API error envelope.
type APIError struct {
	Message    string `json:"message"`
	Stacktrace string `json:"stacktrace,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}
