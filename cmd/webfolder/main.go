// Webfolder serves static files from a single directory over HTTP/1.1.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/indigo-web/webfolder"
	"github.com/indigo-web/webfolder/config"
	"github.com/indigo-web/webfolder/http/status"
	"github.com/indigo-web/webfolder/internal/logging"
	"github.com/indigo-web/webfolder/router/static"
	"go.uber.org/zap"
)

// webfolder -root ./site -port 8080
// webfolder -config webfolder.yaml -log-level debug -dev

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "webfolder:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath string
		overrides  config.Config
	)
	flag.StringVar(&configPath, "config", "", "path to a .yaml or .json config file")
	flag.StringVar(&overrides.Listen.Host, "host", "", "address to bind to")
	port := flag.Uint("port", 0, "port to listen on")
	flag.StringVar(&overrides.Static.Root, "root", "", "directory to serve files from")
	flag.DurationVar(&overrides.NET.ReadTimeout, "timeout", 0, "idle timeout of a single read")
	flag.IntVar(&overrides.NET.MaxConns, "max-conns", 0, "limit of simultaneous connections")
	flag.StringVar(&overrides.Log.Level, "log-level", "", "debug, info, warn or error")
	flag.BoolVar(&overrides.Log.Development, "dev", false, "human-friendly logs")
	flag.Parse()

	cfg := config.Default()
	if len(configPath) > 0 {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}

	if *port > 0xFFFF {
		return fmt.Errorf("port out of range: %d", *port)
	}
	overrides.Listen.Port = uint16(*port)

	// only explicitly passed flags take precedence over the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "host":
			cfg.Listen.Host = overrides.Listen.Host
		case "port":
			cfg.Listen.Port = overrides.Listen.Port
		case "root":
			cfg.Static.Root = overrides.Static.Root
		case "timeout":
			cfg.NET.ReadTimeout = overrides.NET.ReadTimeout
		case "max-conns":
			cfg.NET.MaxConns = overrides.NET.MaxConns
		case "log-level":
			cfg.Log.Level = overrides.Log.Level
		case "dev":
			cfg.Log.Development = overrides.Log.Development
		}
	})

	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	r, err := static.New(cfg.Static.Root, cfg.Static.DefaultPage, log.Named("static"))
	if err != nil {
		return err
	}

	if info, err := os.Stat(r.Root()); err != nil || !info.IsDir() {
		log.Warn("web root is not a directory, every request will be answered with 404",
			zap.String("root", r.Root()))
	}

	app := webfolder.New(cfg, log).
		NotifyOnStart(func() {
			log.Info("serving", zap.String("root", r.Root()), zap.String("addr", cfg.Addr()))
		})

	signals := make(chan os.Signal, 2)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-signals
		log.Info("received signal, finishing open connections", zap.Stringer("signal", sig))
		app.GracefulStop()

		// the second signal doesn't wait for anyone
		sig = <-signals
		log.Info("received signal, dropping open connections", zap.Stringer("signal", sig))
		app.Stop()
	}()

	err = app.Serve(r)
	switch {
	case errors.Is(err, status.ErrGracefulShutdown), errors.Is(err, status.ErrShutdown):
		return nil
	default:
		return err
	}
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags]\n\nDefaults: %s, root %q, timeout %s\n\n",
			os.Args[0], config.Default().Addr(), config.Default().Static.Root, config.Default().NET.ReadTimeout.Round(time.Second))
		flag.PrintDefaults()
	}
}
