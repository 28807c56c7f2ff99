package status

type (
	Code   uint16
	Status string
)

// Status codes the server core and the inbuilt handlers may produce. Handlers are free
// to use any other code, in which case Text falls back to a generic reason phrase.
const (
	OK Code = 200 // RFC 9110, 15.3.1

	BadRequest       Code = 400 // RFC 9110, 15.5.1
	Forbidden        Code = 403 // RFC 9110, 15.5.4
	NotFound         Code = 404 // RFC 9110, 15.5.5
	MethodNotAllowed Code = 405 // RFC 9110, 15.5.6
	RequestTimeout   Code = 408 // RFC 9110, 15.5.9

	InternalServerError     Code = 500 // RFC 9110, 15.6.1
	NotImplemented          Code = 501 // RFC 9110, 15.6.2
	HTTPVersionNotSupported Code = 505 // RFC 9110, 15.6.6

	// CloseConnection is not a real status code. It marks errors after which the
	// connection must be closed without writing anything back.
	CloseConnection Code = 1
)

// Text returns a reason phrase for the HTTP status code.
func Text(code Code) Status {
	switch code {
	case OK:
		return "OK"
	case BadRequest:
		return "Bad Request"
	case Forbidden:
		return "Forbidden"
	case NotFound:
		return "Not Found"
	case MethodNotAllowed:
		return "Method Not Allowed"
	case RequestTimeout:
		return "Request Timeout"
	case InternalServerError:
		return "Internal Server Error"
	case NotImplemented:
		return "Not Implemented"
	case HTTPVersionNotSupported:
		return "HTTP Version Not Supported"
	default:
		return "Unknown Status Code"
	}
}
