package tcp

import (
	"errors"
	"io"
	"net"
	"os"
	"time"

	"github.com/indigo-web/webfolder/http/status"
)

// Client is a byte-stream connection as seen by a session.
type Client interface {
	// Read blocks until some data arrives. The returned slice is valid only until the next
	// call. An orderly close by the peer results in status.ErrPeerClosed, an expired idle
	// window in status.ErrTimeout.
	Read() ([]byte, error)
	Write([]byte) error
	Remote() net.Addr
	// Close closes the underlying connection. Only the first call has an effect.
	Close() error
}

type client struct {
	conn    net.Conn
	buff    []byte
	timeout time.Duration
	closed  bool
}

// NewClient wraps the connection. Every read is bounded by its own deadline, set to timeout
// from the moment the read starts. Zero timeout disables deadlines.
func NewClient(conn net.Conn, timeout time.Duration, buff []byte) Client {
	return &client{
		conn:    conn,
		buff:    buff,
		timeout: timeout,
	}
}

func (c *client) Read() ([]byte, error) {
	if c.timeout > 0 {
		if err := c.conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
			return nil, err
		}
	}

	n, err := c.conn.Read(c.buff)
	if n > 0 {
		// the error, if any, will be returned again by the next read
		return c.buff[:n], nil
	}

	return nil, classify(err)
}

func (c *client) Write(b []byte) error {
	_, err := c.conn.Write(b)

	return err
}

func (c *client) Remote() net.Addr {
	return c.conn.RemoteAddr()
}

func (c *client) Close() error {
	if c.closed {
		return nil
	}

	c.closed = true

	return c.conn.Close()
}

func classify(err error) error {
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return status.ErrPeerClosed
	case errors.Is(err, os.ErrDeadlineExceeded):
		return status.ErrTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return status.ErrTimeout
	}

	return err
}
