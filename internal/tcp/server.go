package tcp

import (
	"net"
	"sync"
	"sync/atomic"

	"github.com/indigo-web/webfolder/http/status"
	"golang.org/x/net/netutil"
)

type OnConn func(net.Conn)

// Listen opens a TCP listener. If maxConns is positive, no more than maxConns connections
// are accepted simultaneously: Accept blocks until one of them is closed.
func Listen(addr string, maxConns int) (net.Listener, error) {
	sock, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	if maxConns > 0 {
		sock = netutil.LimitListener(sock, maxConns)
	}

	return sock, nil
}

// Server accepts connections and serves each one in its own goroutine. Connections don't
// share anything, and their number isn't limited by the server itself (see Listen).
type Server struct {
	sock     net.Listener
	onConn   OnConn
	wg       sync.WaitGroup
	mu       sync.Mutex
	conns    map[net.Conn]struct{}
	shutdown atomic.Bool
	stopped  atomic.Bool
}

func NewServer(sock net.Listener, onConn OnConn) *Server {
	return &Server{
		sock:   sock,
		onConn: onConn,
		conns:  make(map[net.Conn]struct{}),
	}
}

// Start runs the accept loop. It returns after the listener was closed and all the
// connections are done. If it was closed via Stop or GracefulShutdown, status.ErrShutdown
// is returned.
func (s *Server) Start() error {
	for {
		conn, err := s.sock.Accept()
		if err != nil {
			s.wg.Wait()

			if s.shutdown.Load() {
				return status.ErrShutdown
			}

			return err
		}

		s.track(conn)
		if s.stopped.Load() {
			// Stop has already closed the tracked connections, but not this one
			s.untrack(conn)
			_ = conn.Close()
			continue
		}

		s.wg.Add(1)
		go s.connHandler(conn)
	}
}

// Addr returns the address the server listens on.
func (s *Server) Addr() net.Addr {
	return s.sock.Addr()
}

// Stop shuts listener and ALL the connections down
func (s *Server) Stop() error {
	s.stopped.Store(true)
	err := s.stopListener()

	s.mu.Lock()
	for conn := range s.conns {
		_ = conn.Close()
	}
	s.mu.Unlock()

	return err
}

// GracefulShutdown stops a listener, but leaving all the connections free to end their
// lives peacefully
func (s *Server) GracefulShutdown() error {
	return s.stopListener()
}

func (s *Server) stopListener() error {
	s.shutdown.Store(true)

	return s.sock.Close()
}

func (s *Server) connHandler(conn net.Conn) {
	defer s.wg.Done()
	defer s.untrack(conn)

	s.onConn(conn)
}

func (s *Server) track(conn net.Conn) {
	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.mu.Unlock()
}

func (s *Server) untrack(conn net.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
}
