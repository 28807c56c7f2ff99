package http

import (
	"errors"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/webfolder/http"
	"github.com/indigo-web/webfolder/http/status"
	"github.com/indigo-web/webfolder/internal/buffer"
	"github.com/indigo-web/webfolder/internal/protocol/http1"
	"github.com/indigo-web/webfolder/internal/tcp"
	"github.com/indigo-web/webfolder/router"
	"go.uber.org/zap"
)

const connIDLength = 8

// Session serves a single connection: it reads requests one by one, dispatches them to the
// router and writes the responses back, until either side decides to close the connection.
// A session must not be used from multiple goroutines.
type Session struct {
	client    tcp.Client
	buff      *buffer.Buffer
	router    router.Router
	log       *zap.Logger
	state     State
	writeBuff []byte
	closed    bool
}

func NewSession(client tcp.Client, r router.Router, initialBuffSize int, log *zap.Logger) *Session {
	return &Session{
		client: client,
		buff:   buffer.New(client, initialBuffSize),
		router: r,
		log: log.With(
			zap.String("conn", uniuri.NewLen(connIDLength)),
			zap.String("remote", remoteAddr(client)),
		),
	}
}

// Run serves requests until the connection must be closed. The connection is always closed
// by the time Run returns.
func (s *Session) Run() {
	defer s.close()

	for s.HandleRequest() {
	}
}

// HandleRequest runs a single request-response cycle. It returns whether the connection
// may be used for the next request. It doesn't close the connection by itself.
func (s *Session) HandleRequest() (ok bool) {
	s.state = AwaitingHeaders
	block, err := s.buff.Until(http1.HeadersTerminator)
	if err != nil {
		return s.fail(err)
	}

	request, err := http1.ParseHeaders(block)
	if err != nil {
		return s.fail(err)
	}

	request.Remote = s.client.Remote()
	s.state = HeadersParsed

	if http1.FramingOf(request) != http1.NoBody {
		s.state = AwaitingBody
		if err = http1.ReadBody(request, s.buff); err != nil {
			return s.fail(err)
		}
	}

	s.state = Dispatching
	response := notNil(s.router.OnRequest(request))
	closing := request.Close()
	if closing && !response.Headers().Has("Connection") {
		response.Header("Connection", "close")
	}

	s.writeBuff = response.Serialize(s.writeBuff[:0])
	if err = s.client.Write(s.writeBuff); err != nil {
		return s.fail(err)
	}

	s.state = ResponseSent
	s.log.Info("served",
		zap.String("method", request.Method),
		zap.String("path", request.Path),
		zap.Uint16("code", uint16(response.GetCode())),
		zap.String("status", string(response.GetStatus())),
	)

	if closing {
		s.state = Closing
		return false
	}

	s.state = Looping
	return true
}

// State returns the state the session is currently in. After HandleRequest failed, it holds
// the state in which the failure happened. After Run returned, it's always Closing.
func (s *Session) State() State {
	return s.state
}

func (s *Session) fail(err error) bool {
	fields := []zap.Field{zap.Stringer("state", s.state)}

	switch {
	case errors.Is(err, status.ErrPeerClosed):
		if s.buff.Len() == 0 {
			s.log.Debug("connection closed by peer", fields...)
		} else {
			s.log.Warn("connection closed in the middle of headers",
				append(fields, zap.Int("pending", s.buff.Len()))...)
		}
	case errors.Is(err, status.ErrTimeout):
		s.log.Info("connection timed out", fields...)
	case errors.Is(err, status.ErrMalformedRequest):
		s.log.Warn("client sent a malformed request", fields...)
	case errors.Is(err, status.ErrUnexpectedConnectionClose):
		s.log.Warn("connection was closed unexpectedly", fields...)
	default:
		s.log.Error("connection error", append(fields, zap.Error(err))...)
	}

	return false
}

func (s *Session) close() {
	if s.closed {
		return
	}

	s.closed = true
	s.state = Closing
	if err := s.client.Close(); err != nil {
		s.log.Debug("error while closing the connection", zap.Error(err))
	}

	s.log.Info("connection closed")
}

func notNil(response *http.Response) *http.Response {
	if response != nil {
		return response
	}

	return http.NewResponse()
}

func remoteAddr(client tcp.Client) string {
	if addr := client.Remote(); addr != nil {
		return addr.String()
	}

	return ""
}
