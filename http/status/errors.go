package status

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

// Connection-fatal errors. None of them is ever answered with a response: the session
// logs the event and closes the connection.
var (
	// ErrMalformedRequest is returned when the header block or the body framing violates
	// the required structure.
	ErrMalformedRequest = NewError(BadRequest, "malformed request")
	// ErrPeerClosed signals an orderly close (zero-length read) by the peer.
	ErrPeerClosed = NewError(CloseConnection, "connection closed by peer")
	// ErrUnexpectedConnectionClose is ErrPeerClosed observed while the body was still
	// expected to continue.
	ErrUnexpectedConnectionClose = NewError(CloseConnection, "connection closed while expecting more data")
	// ErrTimeout is returned when no data arrived within the idle window of a single read.
	ErrTimeout = NewError(RequestTimeout, "idle read timeout")
)

var (
	ErrShutdown         = NewError(CloseConnection, "shutdown")
	ErrGracefulShutdown = NewError(CloseConnection, "graceful shutdown")
)
