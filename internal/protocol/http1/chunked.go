package http1

import (
	"bytes"
	"math"

	"github.com/indigo-web/webfolder/http/status"
	"github.com/indigo-web/webfolder/internal/buffer"
	"github.com/indigo-web/webfolder/internal/hexconv"
)

// maxChunkLengthDigits limits a single chunk to 4GiB.
const maxChunkLengthDigits = 8

// maxChunkLength keeps the chunk together with its CRLF addressable by int, which on 32-bit
// platforms is narrower than 8 hex digits.
var maxChunkLength uint64 = math.MaxInt - uint64(len("\r\n"))

// readChunked decodes a chunked body. Each chunk is a hex length line, the data and a
// CRLF; the body ends with a zero-length chunk followed by an empty line. Chunk extensions
// and trailer fields aren't supported.
//
// The raw body spans from the first length line through the final CRLF, which is exactly
// what is consumed from the buffer.
func readChunked(buff *buffer.Buffer) (raw, body []byte, err error) {
	raw, body = []byte{}, []byte{}

	for {
		line, err := buff.Until(crlf)
		if err != nil {
			return nil, nil, err
		}

		raw = append(raw, line...)
		length, ok := hexconv.Parse(line[:len(line)-len(crlf)], maxChunkLengthDigits)
		if !ok || length > maxChunkLength {
			return nil, nil, status.ErrMalformedRequest
		}

		if length == 0 {
			terminator, err := buff.Exact(len(crlf))
			if err != nil {
				return nil, nil, err
			}

			if !bytes.Equal(terminator, crlf) {
				return nil, nil, status.ErrMalformedRequest
			}

			return append(raw, terminator...), body, nil
		}

		chunk, err := buff.Exact(int(length) + len(crlf))
		if err != nil {
			return nil, nil, err
		}

		if !bytes.HasSuffix(chunk, crlf) {
			return nil, nil, status.ErrMalformedRequest
		}

		raw = append(raw, chunk...)
		body = append(body, chunk[:length]...)
	}
}
