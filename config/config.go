package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

type (
	Listen struct {
		// Host is the address to bind to. Defaults to all interfaces.
		Host string
		// Port is the TCP port to listen on.
		Port uint16
	}

	NET struct {
		// ReadBufferSize is a size of buffer in bytes which will be used to read from
		// socket. Limits how many bytes a single read may return.
		ReadBufferSize int
		// ReadTimeout is the idle window of every single read. If no data was received
		// within it, the connection is closed. Note that it isn't a budget for the whole
		// connection: a client sending a byte now and then is never timed out.
		ReadTimeout time.Duration
		// MaxConns limits the number of simultaneously served connections. Zero means
		// no limit.
		MaxConns int `test:"nullable"`
	}

	Static struct {
		// Root is the directory files are served from.
		Root string
		// DefaultPage is served instead of the root path /.
		DefaultPage string
	}

	Log struct {
		// Level is one of debug, info, warn, error.
		Level string
		// Development switches the logger to a human-friendly console encoder.
		Development bool `test:"nullable"`
	}
)

// Config holds everything the server needs to run.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	Listen Listen
	NET    NET
	Static Static
	Log    Log
}

// Default returns default config.
func Default() *Config {
	return &Config{
		Listen: Listen{
			Host: "0.0.0.0",
			Port: 80,
		},
		NET: NET{
			ReadBufferSize: 4 * 1024,
			ReadTimeout:    30 * time.Second,
		},
		Static: Static{
			Root:        "web_folder",
			DefaultPage: "/index.html",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Listen.Host, strconv.Itoa(int(c.Listen.Port)))
}

// Validate reports the first setting that can't be used.
func (c *Config) Validate() error {
	switch {
	case c.NET.ReadBufferSize <= 0:
		return fmt.Errorf("config: NET.ReadBufferSize must be positive, got %d", c.NET.ReadBufferSize)
	case c.NET.ReadTimeout < 0:
		return fmt.Errorf("config: NET.ReadTimeout must not be negative, got %s", c.NET.ReadTimeout)
	case c.NET.MaxConns < 0:
		return fmt.Errorf("config: NET.MaxConns must not be negative, got %d", c.NET.MaxConns)
	case len(c.Static.Root) == 0:
		return fmt.Errorf("config: Static.Root must not be empty")
	case len(c.Static.DefaultPage) == 0 || c.Static.DefaultPage[0] != '/':
		return fmt.Errorf("config: Static.DefaultPage must start with a slash, got %q", c.Static.DefaultPage)
	}

	return nil
}
