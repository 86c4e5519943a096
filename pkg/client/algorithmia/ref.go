package algorithmia

import (
	"fmt"
	"net/url"
	"strings"
)

const refScheme = "algo://"

// AlgoRef identifies a hosted algorithm as owner/name with an optional version.
type AlgoRef struct {
	Owner   string
	Name    string
	Version string
}

// ParseAlgoRef parses "owner/name" or "owner/name/version", optionally
// prefixed with "algo://".
func ParseAlgoRef(s string) (AlgoRef, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), refScheme)
	if trimmed == "" {
		return AlgoRef{}, fmt.Errorf("algorithm reference is empty")
	}

	parts := strings.Split(trimmed, "/")
	if len(parts) < 2 || len(parts) > 3 {
		return AlgoRef{}, fmt.Errorf("expected owner/name[/version], got %q", s)
	}
	for _, part := range parts {
		if part == "" {
			return AlgoRef{}, fmt.Errorf("empty segment in %q", s)
		}
	}

	ref := AlgoRef{Owner: parts[0], Name: parts[1]}
	if len(parts) == 3 {
		ref.Version = parts[2]
	}
	return ref, nil
}

func (r AlgoRef) String() string {
	if r.Version == "" {
		return r.Owner + "/" + r.Name
	}
	return r.Owner + "/" + r.Name + "/" + r.Version
}

// Path returns the escaped URL path of the algorithm below /v1/algo/.
func (r AlgoRef) Path() string {
	segments := []string{url.PathEscape(r.Owner), url.PathEscape(r.Name)}
	if r.Version != "" {
		segments = append(segments, url.PathEscape(r.Version))
	}
	return strings.Join(segments, "/")
}
