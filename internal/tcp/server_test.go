package tcp

import (
	"io"
	"net"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/indigo-web/webfolder/http/status"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T, maxConns int, onConn OnConn) (*Server, <-chan error) {
	sock, err := Listen("127.0.0.1:0", maxConns)
	require.NoError(t, err)

	server := NewServer(sock, onConn)
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	return server, errCh
}

func echoConn(conn net.Conn) {
	_, _ = io.Copy(conn, conn)
	_ = conn.Close()
}

// scriptedListener hands out the queued connections, calling beforeAccept right before
// returning each of them.
type scriptedListener struct {
	conns        chan net.Conn
	closed       chan struct{}
	once         sync.Once
	beforeAccept func()
}

func newScriptedListener(conns ...net.Conn) *scriptedListener {
	queue := make(chan net.Conn, len(conns))
	for _, conn := range conns {
		queue <- conn
	}

	return &scriptedListener{
		conns:  queue,
		closed: make(chan struct{}),
	}
}

func (l *scriptedListener) Accept() (net.Conn, error) {
	select {
	case <-l.closed:
		return nil, net.ErrClosed
	case conn := <-l.conns:
		l.beforeAccept()
		return conn, nil
	}
}

func (l *scriptedListener) Close() error {
	l.once.Do(func() {
		close(l.closed)
	})

	return nil
}

func (l *scriptedListener) Addr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1)}
}

func TestServer(t *testing.T) {
	t.Run("serve and stop", func(t *testing.T) {
		server, errCh := startServer(t, 0, echoConn)

		conn, err := net.Dial("tcp", server.Addr().String())
		require.NoError(t, err)
		_, err = conn.Write([]byte("ping"))
		require.NoError(t, err)

		buff := make([]byte, 4)
		_, err = io.ReadFull(conn, buff)
		require.NoError(t, err)
		require.Equal(t, "ping", string(buff))

		// the connection is still open, Stop must close it
		require.NoError(t, server.Stop())
		require.ErrorIs(t, <-errCh, status.ErrShutdown)

		_, err = conn.Read(buff)
		require.Error(t, err)
	})

	t.Run("graceful shutdown", func(t *testing.T) {
		var finished atomic.Bool
		release := make(chan struct{})
		accepted := make(chan struct{})
		server, errCh := startServer(t, 0, func(conn net.Conn) {
			close(accepted)
			<-release
			finished.Store(true)
			_ = conn.Close()
		})

		conn, err := net.Dial("tcp", server.Addr().String())
		require.NoError(t, err)
		defer conn.Close()
		<-accepted

		require.NoError(t, server.GracefulShutdown())
		select {
		case <-errCh:
			require.Fail(t, "server returned before the connection was done")
		case <-time.After(50 * time.Millisecond):
		}

		close(release)
		require.ErrorIs(t, <-errCh, status.ErrShutdown)
		require.True(t, finished.Load())
	})

	t.Run("connection limit", func(t *testing.T) {
		var active, peak atomic.Int32
		release := make(chan struct{})
		server, errCh := startServer(t, 2, func(conn net.Conn) {
			n := active.Add(1)
			for {
				old := peak.Load()
				if n <= old || peak.CompareAndSwap(old, n) {
					break
				}
			}

			<-release
			active.Add(-1)
			_ = conn.Close()
		})

		var conns []net.Conn
		for i := 0; i < 4; i++ {
			conn, err := net.Dial("tcp", server.Addr().String())
			require.NoError(t, err)
			conns = append(conns, conn)
		}

		time.Sleep(50 * time.Millisecond)
		require.Equal(t, int32(2), active.Load())

		close(release)
		for _, conn := range conns {
			_ = conn.Close()
		}

		require.Eventually(t, func() bool {
			return active.Load() == 0
		}, time.Second, 10*time.Millisecond)
		require.Equal(t, int32(2), peak.Load())

		require.NoError(t, server.GracefulShutdown())
		require.ErrorIs(t, <-errCh, status.ErrShutdown)
	})

	t.Run("stop racing with accept", func(t *testing.T) {
		serverSide, clientSide := net.Pipe()
		defer clientSide.Close()
		sock := newScriptedListener(serverSide)
		server := NewServer(sock, func(conn net.Conn) {
			_, _ = io.Copy(io.Discard, conn)
		})
		sock.beforeAccept = func() {
			_ = server.Stop()
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Start()
		}()

		select {
		case err := <-errCh:
			require.ErrorIs(t, err, status.ErrShutdown)
		case <-time.After(time.Second):
			require.FailNow(t, "the connection accepted during Stop was left open")
		}

		_, err := clientSide.Read(make([]byte, 1))
		require.Error(t, err)
	})
}
