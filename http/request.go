package http

import (
	"net"

	"github.com/indigo-web/webfolder/kv"
)

type (
	Headers = *kv.Storage
	Header  = kv.Pair
)

// Request represents a single HTTP/1.1 request as it was received. It's created fresh for
// every message on a connection and must be treated as read-only once handed to a router.
type Request struct {
	// Method is the request method exactly as received, e.g. GET.
	Method string
	// Path is the raw request target. It's neither decoded nor validated.
	Path string
	// Protocol is the protocol version token, e.g. HTTP/1.1.
	Protocol string
	// Headers hold the header pairs in order of their appearance. Keys keep their case and
	// exact lookups (Get, Value, Has) are case-sensitive.
	Headers Headers
	// RawBody holds the exact wire bytes of the body, including the chunk framing if the
	// body was chunked. Nil if the request had no body.
	RawBody []byte
	// Body is the decoded payload. Equal to RawBody for Content-Length bodies.
	Body []byte
	// Remote holds the remote address of the connection, if known.
	Remote net.Addr
}

func NewRequest(method, path, protocol string, headers Headers) *Request {
	return &Request{
		Method:   method,
		Path:     path,
		Protocol: protocol,
		Headers:  headers,
	}
}

// Close reports whether the client asked to close the connection after this request.
// The header name and the value are matched case-sensitively. If the header is repeated,
// the last one counts.
func (r *Request) Close() bool {
	value, found := r.Headers.Last("Connection")
	return found && value == "close"
}
