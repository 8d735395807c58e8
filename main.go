package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/EphraimMeiri/sentence-trees/config"
	"github.com/EphraimMeiri/sentence-trees/tree"
	"github.com/EphraimMeiri/sentence-trees/web"
)

func main() {
	webFlag := flag.String("web", "", "serve the browser canvas UI at this address (e.g. :8080) instead of the terminal UI")
	cfgPath := flag.String("config", defaultConfigPath(), "config file path")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sentence-trees: %v\n", err)
		os.Exit(1)
	}

	// Any remaining arguments form an initial sentence.
	sentence := strings.Join(flag.Args(), " ")

	if *webFlag != "" {
		cfg.Listen = *webFlag
		if err := runWeb(ctx, cfg, sentence); err != nil {
			fmt.Fprintf(os.Stderr, "sentence-trees: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runTUI(ctx, sentence); err != nil {
		fmt.Fprintf(os.Stderr, "sentence-trees: %v\n", err)
		os.Exit(1)
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.sentence-trees.yaml"
}

func runWeb(ctx context.Context, cfg *config.Config, sentence string) error {
	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	// The browser reports its real canvas size on connect; this is just a
	// pre-connect default.
	d := tree.New(1280, 800)
	d.SetMetrics(cfg.Metrics())
	if sentence != "" {
		if err := d.Tokenize(sentence); err != nil {
			return err
		}
	}

	srv := web.NewServer(d, log)
	server := &http.Server{Addr: cfg.Listen, Handler: srv}
	go func() {
		<-ctx.Done()
		server.Close()
	}()

	log.Info("web UI listening", zap.String("addr", cfg.Listen))
	fmt.Printf("sentence-trees web UI: http://localhost%s\n", cfg.Listen)
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func runTUI(ctx context.Context, sentence string) error {
	app := newApp()
	if sentence != "" {
		if err := app.diagram.Tokenize(sentence); err != nil {
			return err
		}
	}
	return app.Run(ctx)
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("bad log level %q: %w", level, err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}
