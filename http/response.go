package http

import (
	"strconv"

	"github.com/indigo-web/webfolder/http/mime"
	"github.com/indigo-web/webfolder/http/status"
	"github.com/indigo-web/webfolder/kv"
)

// why 4? Server, Content-Type, Content-Length and sometimes Connection or Allow.
const preallocRespHeaders = 4

const DefaultProtocol = "HTTP/1.1"

type Response struct {
	protocol string
	code     status.Code
	status   status.Status
	headers  *kv.Storage
	content  []byte
}

// NewResponse returns a new instance of the Response object with status code set to 200 OK
// and no headers.
func NewResponse() *Response {
	return &Response{
		protocol: DefaultProtocol,
		code:     status.OK,
		headers:  kv.NewPrealloc(preallocRespHeaders),
	}
}

// Respond is a shortcut for NewResponse().Code(code).
func Respond(code status.Code) *Response {
	return NewResponse().Code(code)
}

// Protocol overrides the protocol token of the status line.
func (r *Response) Protocol(protocol string) *Response {
	r.protocol = protocol
	return r
}

// Code sets a Response code and resets the status text, so the default one for the code
// is used, unless Status is called afterward.
func (r *Response) Code(code status.Code) *Response {
	r.code = code
	r.status = ""
	return r
}

// Status sets a custom status text.
func (r *Response) Status(status status.Status) *Response {
	r.status = status
	return r
}

// Header sets the header value, overriding the previous one with exactly the same key.
func (r *Response) Header(key, value string) *Response {
	r.headers.Set(key, value)
	return r
}

// ContentType is a shortcut for Header("Content-Type", value).
func (r *Response) ContentType(value mime.MIME) *Response {
	return r.Header("Content-Type", value)
}

// Bytes sets the response body. The Content-Length header is set accordingly.
func (r *Response) Bytes(body []byte) *Response {
	r.content = body
	return r.Header("Content-Length", strconv.Itoa(len(body)))
}

// String sets the response body. The Content-Length header is set accordingly.
func (r *Response) String(body string) *Response {
	return r.Bytes([]byte(body))
}

func (r *Response) GetCode() status.Code {
	return r.code
}

// GetStatus returns either a custom status text, or the default one for the code.
func (r *Response) GetStatus() status.Status {
	if len(r.status) > 0 {
		return r.status
	}

	return status.Text(r.code)
}

func (r *Response) Headers() Headers {
	return r.headers
}

func (r *Response) Content() []byte {
	return r.content
}

// Serialize renders the response into its wire form: the status line, header lines, the
// blank line and the body, appended to buff.
func (r *Response) Serialize(buff []byte) []byte {
	buff = append(buff, r.protocol...)
	buff = append(buff, ' ')
	buff = strconv.AppendUint(buff, uint64(r.code), 10)
	buff = append(buff, ' ')
	buff = append(buff, r.GetStatus()...)
	buff = append(buff, "\r\n"...)

	for key, value := range r.headers.Pairs() {
		buff = append(buff, key...)
		buff = append(buff, ": "...)
		buff = append(buff, value...)
		buff = append(buff, "\r\n"...)
	}

	buff = append(buff, "\r\n"...)

	return append(buff, r.content...)
}
