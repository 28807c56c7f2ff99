package http1

import (
	"errors"
	"strconv"

	"github.com/indigo-web/webfolder/http"
	"github.com/indigo-web/webfolder/http/status"
	"github.com/indigo-web/webfolder/internal/buffer"
)

// Framing is the strategy used to delimit the body of a request.
type Framing uint8

const (
	NoBody Framing = iota
	ContentLength
	Chunked
)

func (f Framing) String() string {
	switch f {
	case NoBody:
		return "none"
	case ContentLength:
		return "content-length"
	case Chunked:
		return "chunked"
	default:
		return "unknown"
	}
}

// FramingOf picks the body framing of the request. Header names and the chunked token are
// matched case-sensitively, the last Transfer-Encoding counts. Transfer-Encoding: chunked
// takes priority over Content-Length.
func FramingOf(request *http.Request) Framing {
	if value, found := request.Headers.Last("Transfer-Encoding"); found && value == "chunked" {
		return Chunked
	}

	if request.Headers.Has("Content-Length") {
		return ContentLength
	}

	return NoBody
}

// ReadBody extracts the body of the request, consuming exactly the bytes which belong to
// it. After it returns successfully, the buffer starts at the first byte of the next
// request, if any. Requests without a body are left with nil RawBody and Body.
//
// A peer close before the body is complete results in status.ErrUnexpectedConnectionClose.
func ReadBody(request *http.Request, buff *buffer.Buffer) (err error) {
	switch FramingOf(request) {
	case Chunked:
		request.RawBody, request.Body, err = readChunked(buff)
	case ContentLength:
		var length int
		length, err = contentLength(request.Headers)
		if err != nil {
			return err
		}

		request.RawBody, err = buff.Exact(length)
		request.Body = request.RawBody
	}

	if errors.Is(err, status.ErrPeerClosed) {
		err = status.ErrUnexpectedConnectionClose
	}

	return err
}

// contentLength parses the Content-Length header. Repeated values are tolerated only if
// they're all the same.
func contentLength(headers http.Headers) (int, error) {
	first := headers.Value("Content-Length")
	for value := range headers.Values("Content-Length") {
		if value != first {
			return 0, status.ErrMalformedRequest
		}
	}

	return parseContentLength(first)
}

func parseContentLength(value string) (int, error) {
	length, err := strconv.ParseUint(value, 10, strconv.IntSize-1)
	if err != nil {
		return 0, status.ErrMalformedRequest
	}

	return int(length), nil
}
