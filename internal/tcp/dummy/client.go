package dummy

import (
	"net"

	"github.com/indigo-web/webfolder/http/status"
)

// Client replays the scripted pieces, one per read. When the script is exhausted, the
// terminal error is returned, which defaults to status.ErrPeerClosed. Everything written
// is collected.
type Client struct {
	pieces   [][]byte
	pointer  int
	circular bool
	err      error
	Written  []byte
	Closed   int
	// WriteErr, if set, is returned by every write.
	WriteErr error
}

func NewClient(pieces ...[]byte) *Client {
	return &Client{
		pieces: pieces,
		err:    status.ErrPeerClosed,
	}
}

// NewCircularClient replays the pieces infinitely. Written data is discarded.
func NewCircularClient(pieces ...[]byte) *Client {
	client := NewClient(pieces...)
	client.circular = true

	return client
}

// NewStreamClient splits the data into pieces of at most n bytes each.
func NewStreamClient(data []byte, n int) *Client {
	return NewClient(Scatter(data, n)...)
}

// Then sets the error returned after the script is exhausted.
func (c *Client) Then(err error) *Client {
	c.err = err
	return c
}

func (c *Client) Read() ([]byte, error) {
	if c.pointer >= len(c.pieces) {
		if !c.circular || len(c.pieces) == 0 {
			return nil, c.err
		}

		c.pointer = 0
	}

	piece := c.pieces[c.pointer]
	c.pointer++

	return piece, nil
}

func (c *Client) Write(b []byte) error {
	if c.WriteErr != nil {
		return c.WriteErr
	}

	if c.circular {
		return nil
	}

	c.Written = append(c.Written, b...)
	return nil
}

func (*Client) Remote() net.Addr {
	return nil
}

func (c *Client) Close() error {
	c.Closed++
	return nil
}

// Scatter splits the data into pieces of at most n bytes each.
func Scatter(data []byte, n int) (pieces [][]byte) {
	for len(data) > n {
		pieces = append(pieces, data[:n])
		data = data[n:]
	}

	if len(data) > 0 {
		pieces = append(pieces, data)
	}

	return pieces
}
