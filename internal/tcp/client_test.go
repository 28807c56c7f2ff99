package tcp

import (
	"errors"
	"net"
	"testing"
	"time"

	"github.com/indigo-web/webfolder/http/status"
	"github.com/stretchr/testify/require"
)

func newPipe(timeout time.Duration) (Client, net.Conn) {
	server, peer := net.Pipe()
	return NewClient(server, timeout, make([]byte, 64)), peer
}

func TestClient(t *testing.T) {
	t.Run("read", func(t *testing.T) {
		client, peer := newPipe(time.Second)
		defer peer.Close()

		go func() {
			_, _ = peer.Write([]byte("Hello, world!"))
		}()

		data, err := client.Read()
		require.NoError(t, err)
		require.Equal(t, "Hello, world!", string(data))
	})

	t.Run("read is bounded by the buffer", func(t *testing.T) {
		server, peer := net.Pipe()
		client := NewClient(server, time.Second, make([]byte, 4))
		defer peer.Close()

		go func() {
			_, _ = peer.Write([]byte("abcdefgh"))
		}()

		var got []byte
		for len(got) < 8 {
			data, err := client.Read()
			require.NoError(t, err)
			require.LessOrEqual(t, len(data), 4)
			got = append(got, data...)
		}

		require.Equal(t, "abcdefgh", string(got))
	})

	t.Run("peer closed", func(t *testing.T) {
		client, peer := newPipe(time.Second)
		require.NoError(t, peer.Close())

		_, err := client.Read()
		require.ErrorIs(t, err, status.ErrPeerClosed)
	})

	t.Run("idle timeout", func(t *testing.T) {
		client, peer := newPipe(50 * time.Millisecond)
		defer peer.Close()

		start := time.Now()
		_, err := client.Read()
		require.ErrorIs(t, err, status.ErrTimeout)
		require.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("timeout is per read", func(t *testing.T) {
		client, peer := newPipe(100 * time.Millisecond)
		defer peer.Close()

		go func() {
			for i := 0; i < 5; i++ {
				time.Sleep(40 * time.Millisecond)
				_, _ = peer.Write([]byte{'a'})
			}
		}()

		for i := 0; i < 5; i++ {
			data, err := client.Read()
			require.NoError(t, err)
			require.Equal(t, "a", string(data))
		}
	})

	t.Run("write", func(t *testing.T) {
		client, peer := newPipe(time.Second)
		defer peer.Close()

		done := make(chan []byte)
		go func() {
			buff := make([]byte, 64)
			n, _ := peer.Read(buff)
			done <- buff[:n]
		}()

		require.NoError(t, client.Write([]byte("pong")))
		require.Equal(t, "pong", string(<-done))
	})

	t.Run("close once", func(t *testing.T) {
		client, peer := newPipe(time.Second)
		defer peer.Close()

		require.NoError(t, client.Close())
		require.NoError(t, client.Close())
	})
}

func TestClassify(t *testing.T) {
	require.ErrorIs(t, classify(nil), status.ErrPeerClosed)

	other := errors.New("connection reset by peer")
	require.Equal(t, other, classify(other))
}
