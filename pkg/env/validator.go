package env

import (
	"net/url"
	"strings"
)

func IsEmpty(value string) bool {
	return strings.TrimSpace(value) == ""
}

// IsValidURL accepts absolute http(s) URLs with a host, e.g. an API server
// address such as https://api.algorithmia.com or http://localhost:8080.
func IsValidURL(raw string) bool {
	if IsEmpty(raw) {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != "" && u.Hostname() != ""
}
