package og

import (
	"encoding/base64"
	"net/http"
	"strings"
)

// FullURL reconstructs the absolute URL the client requested. The scheme
// honours X-Forwarded-Proto so URLs match behind a TLS-terminating proxy.
func FullURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0]))
	}

	host := r.Host
	if host == "" {
		host = r.URL.Host
	}

	uri := r.RequestURI
	if uri == "" {
		uri = r.URL.RequestURI()
	}
	return scheme + "://" + host + uri
}

// ETag is the quoted standard base64 encoding of the full request URL.
// Identical URLs always produce identical images, so the URL is the version.
func ETag(fullURL string) string {
	return `"` + base64.StdEncoding.EncodeToString([]byte(fullURL)) + `"`
}
