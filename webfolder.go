package webfolder

import (
	"errors"
	"net"

	"github.com/indigo-web/webfolder/config"
	"github.com/indigo-web/webfolder/http/status"
	httpserver "github.com/indigo-web/webfolder/internal/server/http"
	"github.com/indigo-web/webfolder/internal/tcp"
	"github.com/indigo-web/webfolder/router"
	"go.uber.org/zap"
)

// App binds a listener and serves every accepted connection with a router.
type App struct {
	cfg    *config.Config
	log    *zap.Logger
	hooks  hooks
	server *tcp.Server
	errCh  chan error
}

// New returns a new App instance. Nil config means config.Default(), nil logger
// disables logging.
func New(cfg *config.Config, log *zap.Logger) *App {
	if cfg == nil {
		cfg = config.Default()
	}

	if log == nil {
		log = zap.NewNop()
	}

	return &App{
		cfg:   cfg,
		log:   log,
		errCh: make(chan error, 1),
	}
}

// NotifyOnStart calls the callback as soon as the listener is bound, so Addr
// may be called from it.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback when the server is down. It's guaranteed that at the
// moment the callback is called, no new connections are accepted and all the clients
// are already disconnected
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Addr returns the bound address. Available only after the start notification.
func (a *App) Addr() net.Addr {
	return a.server.Addr()
}

// Serve binds the configured address and blocks until the app is stopped or the
// listener fails. After Stop or GracefulStop the corresponding status error is returned.
func (a *App) Serve(r router.Router) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	sock, err := tcp.Listen(a.cfg.Addr(), a.cfg.NET.MaxConns)
	if err != nil {
		return err
	}

	a.server = tcp.NewServer(sock, a.newTCPCallback(r))
	a.log.Info("listening",
		zap.Stringer("addr", sock.Addr()),
		zap.Int("max_conns", a.cfg.NET.MaxConns),
		zap.Duration("read_timeout", a.cfg.NET.ReadTimeout),
	)

	return a.run()
}

func (a *App) run() error {
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- a.server.Start()
	}()

	callIfNotNil(a.hooks.OnStart)

	var err error
	select {
	case err = <-serverErr:
		// the listener broke by itself, the connections are already done
	case err = <-a.errCh:
		if errors.Is(err, status.ErrGracefulShutdown) {
			a.log.Info("shutting down gracefully")
			_ = a.server.GracefulShutdown()

			select {
			case <-serverErr:
			case err = <-a.errCh:
				// escalated to an immediate stop while waiting for the clients
				a.log.Info("shutting down")
				_ = a.server.Stop()
				<-serverErr
			}
		} else {
			a.log.Info("shutting down")
			_ = a.server.Stop()
			<-serverErr
		}
	}

	callIfNotNil(a.hooks.OnStop)
	a.log.Info("stopped")

	return err
}

// GracefulStop stops accepting new connections, but keeps serving old ones.
//
// NOTE: the call isn't blocking. So by that, after the method returned, the server
// will be still working
func (a *App) GracefulStop() {
	a.signal(status.ErrGracefulShutdown)
}

// Stop stops the whole application immediately.
//
// NOTE: the call isn't blocking. So by that, after the method returned, the server
// will still be working
func (a *App) Stop() {
	a.signal(status.ErrShutdown)
}

func (a *App) signal(err error) {
	select {
	case a.errCh <- err:
	default:
		// a stop is already pending
	}
}

func (a *App) newTCPCallback(r router.Router) tcp.OnConn {
	return func(conn net.Conn) {
		a.log.Debug("accepted connection", zap.Stringer("remote", conn.RemoteAddr()))
		client := tcp.NewClient(conn, a.cfg.NET.ReadTimeout, make([]byte, a.cfg.NET.ReadBufferSize))
		httpserver.NewSession(client, r, a.cfg.NET.ReadBufferSize, a.log).Run()
	}
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
