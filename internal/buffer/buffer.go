package buffer

import (
	"bytes"
	"errors"
)

// Source supplies the buffer with new data. The returned slice is allowed to be reused by
// the source on the next call, so the buffer always copies it.
type Source interface {
	Read() ([]byte, error)
}

// ErrNegativeLength is returned by Exact if asked for less than zero bytes.
var ErrNegativeLength = errors.New("buffer: negative length")

// Buffer accumulates unconsumed bytes of a single connection. Every byte ever read from the
// source is either returned by Until or Exact, or stays pending for the next call.
//
// The memory is never compacted: consumed segments stay valid after they were returned,
// as new data is always appended past them.
type Buffer struct {
	src    Source
	memory []byte
}

// New returns a buffer pulling data from src.
func New(src Source, initialSize int) *Buffer {
	return &Buffer{
		src:    src,
		memory: make([]byte, 0, initialSize),
	}
}

// Until blocks until the pattern appears in the pending data. Everything up to and
// including the pattern is consumed and returned. Errors of the source are returned as is,
// leaving pending data intact.
func (b *Buffer) Until(pattern []byte) ([]byte, error) {
	// bytes before the offset were already searched and are known to not contain the pattern
	offset := 0

	for {
		if idx := bytes.Index(b.memory[offset:], pattern); idx != -1 {
			return b.consume(offset + idx + len(pattern)), nil
		}

		offset = max(0, len(b.memory)-len(pattern)+1)

		if err := b.fill(); err != nil {
			return nil, err
		}
	}
}

// Exact blocks until at least n bytes are pending, consumes and returns exactly n of them.
func (b *Buffer) Exact(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}

	for len(b.memory) < n {
		if err := b.fill(); err != nil {
			return nil, err
		}
	}

	return b.consume(n), nil
}

// Pending returns the data, which is read but not consumed yet.
func (b *Buffer) Pending() []byte {
	return b.memory
}

// Len returns the number of pending bytes.
func (b *Buffer) Len() int {
	return len(b.memory)
}

func (b *Buffer) fill() error {
	data, err := b.src.Read()
	if err != nil {
		return err
	}

	b.memory = append(b.memory, data...)
	return nil
}

func (b *Buffer) consume(n int) []byte {
	segment := b.memory[:n:n]
	b.memory = b.memory[n:]

	return segment
}
