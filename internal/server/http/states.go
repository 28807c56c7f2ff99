package http

// State is the position of a session within a single request-response cycle.
type State uint8

const (
	AwaitingHeaders State = iota
	HeadersParsed
	AwaitingBody
	Dispatching
	ResponseSent
	Looping
	Closing
)

func (s State) String() string {
	switch s {
	case AwaitingHeaders:
		return "awaiting headers"
	case HeadersParsed:
		return "headers parsed"
	case AwaitingBody:
		return "awaiting body"
	case Dispatching:
		return "dispatching"
	case ResponseSent:
		return "response sent"
	case Looping:
		return "looping"
	case Closing:
		return "closing"
	default:
		return "unknown"
	}
}
