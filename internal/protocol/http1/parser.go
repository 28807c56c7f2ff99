package http1

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/indigo-web/utils/uf"
	"github.com/indigo-web/webfolder/http"
	"github.com/indigo-web/webfolder/http/status"
	"github.com/indigo-web/webfolder/kv"
)

var (
	crlf     = []byte("\r\n")
	crlfcrlf = []byte("\r\n\r\n")
)

// HeadersTerminator marks the end of a header block.
var HeadersTerminator = crlfcrlf

// ParseHeaders parses a header block, i.e. the request line and header field lines up to
// and including the terminating empty line, into a fresh request. Header keys and values
// are stored as received.
//
// Strings of the returned request reference the block directly, so it must not be modified
// afterward.
func ParseHeaders(block []byte) (*http.Request, error) {
	if !bytes.HasSuffix(block, crlfcrlf) || !utf8.Valid(block) {
		return nil, status.ErrMalformedRequest
	}

	lines := strings.Split(uf.B2S(block[:len(block)-len(crlfcrlf)]), "\r\n")
	method, path, protocol, ok := parseRequestLine(lines[0])
	if !ok {
		return nil, status.ErrMalformedRequest
	}

	headers := kv.NewPrealloc(len(lines) - 1)

	for _, line := range lines[1:] {
		key, value, found := strings.Cut(line, ": ")
		if !found || len(key) == 0 || strings.ContainsAny(line, "\r\n") {
			return nil, status.ErrMalformedRequest
		}

		headers.Add(key, value)
	}

	return http.NewRequest(method, path, protocol, headers), nil
}

// parseRequestLine splits the line on single spaces, requiring exactly three non-empty
// tokens.
func parseRequestLine(line string) (method, path, protocol string, ok bool) {
	tokens := strings.Split(line, " ")
	if len(tokens) != 3 {
		return "", "", "", false
	}

	for _, token := range tokens {
		if len(token) == 0 || strings.ContainsAny(token, "\r\n") {
			return "", "", "", false
		}
	}

	return tokens[0], tokens[1], tokens[2], true
}
