// Command shadowd serves the shadow-reading practice API: text
// segmentation with proportional timestamps, speech synthesis, sentence
// translation, and the note/voice library, all on one port for clients
// on the local network.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kbukum/shadowreader/api"
	"github.com/kbukum/shadowreader/component"
	"github.com/kbukum/shadowreader/config"
	"github.com/kbukum/shadowreader/logger"
	"github.com/kbukum/shadowreader/observability"
	"github.com/kbukum/shadowreader/server"
	"github.com/kbukum/shadowreader/store"
	"github.com/kbukum/shadowreader/translate"
	"github.com/kbukum/shadowreader/tts"
	"github.com/kbukum/shadowreader/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "shadowd: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configFile := flag.String("config", "", "path to config.yml")
	envFile := flag.String("env", "", "path to .env file")
	flag.Parse()

	var loaderOpts []config.LoaderOption
	if *configFile != "" {
		loaderOpts = append(loaderOpts, config.WithConfigFile(*configFile))
	}
	if *envFile != "" {
		loaderOpts = append(loaderOpts, config.WithEnvFile(*envFile))
	}

	cfg, err := config.LoadApp(loaderOpts...)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Version == "" {
		cfg.Version = version.Version
	}

	logger.Init(cfg.Logging)
	log := logger.GetGlobalLogger()
	log.Info("starting shadowd", logger.Fields(
		"version", cfg.Version,
		"environment", cfg.Environment,
	))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	obs, err := observability.Init(ctx, cfg.Observability, cfg.Name, cfg.Version, cfg.Environment)
	if err != nil {
		return fmt.Errorf("init observability: %w", err)
	}

	st, err := store.Open(cfg.Store, log)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	synth := tts.NewMiniMax(cfg.MiniMax, log)
	if !synth.IsAvailable() {
		log.Warn("MINIMAX_API_KEY not set, speech synthesis disabled")
	}
	translator := translate.NewGLM(cfg.GLM, log)
	if !translator.IsAvailable() {
		log.Warn("GLM_API_KEY not set, translation disabled")
	}
	cache := tts.NewMemoryCache(cfg.Cache.MaxEntries)

	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware()

	handlers := api.New(st, synth, cache, translator, log,
		api.WithMetrics(obs.Metrics),
		api.WithVersion(cfg.Version),
	)
	handlers.Register(srv.GinEngine())

	registry := component.NewRegistry()
	if err := registry.Register(component.Func{
		ComponentName: "observability",
		OnStop:        obs.Shutdown,
	}); err != nil {
		return err
	}
	if err := registry.Register(srvComponent{srv}); err != nil {
		return err
	}

	if err := registry.StartAll(ctx); err != nil {
		_ = registry.StopAll(context.Background())
		return err
	}
	log.Info("shadowd ready", logger.Fields("addr", srv.Addr()))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Info("shutting down", logger.Fields("signal", sig.String()))

	return registry.StopAll(context.Background())
}

// srvComponent adapts the HTTP server to the component lifecycle.
type srvComponent struct {
	srv *server.Server
}

func (c srvComponent) Name() string                    { return "http-server" }
func (c srvComponent) Start(ctx context.Context) error { return c.srv.Start(ctx) }
func (c srvComponent) Stop(ctx context.Context) error  { return c.srv.Stop(ctx) }
