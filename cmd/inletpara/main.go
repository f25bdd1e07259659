package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/inletpara/inletpara/internal/api"
	"github.com/inletpara/inletpara/internal/compute"
	"github.com/inletpara/inletpara/internal/config"
	"github.com/inletpara/inletpara/internal/export"
	"github.com/inletpara/inletpara/internal/render"
	"github.com/inletpara/inletpara/internal/session"
	"github.com/inletpara/inletpara/internal/ws"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	report := flag.Bool("report", false, "compute once, print the comparison table and charts to stdout, and exit")
	uiDir := flag.String("ui-dir", "", "serve UI static files from this directory; leave empty to disable")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	st := session.New(cfg.Session.Count, cfg.Session.MaxInlets)
	applyConfig(st, cfg)

	if *report {
		if err := printReport(st.List()); err != nil {
			slog.Error("report failed", "err", err)
			os.Exit(1)
		}
		return
	}

	slog.Info("inletpara starting",
		"config", *configPath,
		"http_port", cfg.Server.HTTPPort,
		"inlets", st.Len(),
		"max_inlets", st.Max(),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	handler := api.New(st)

	// WebSocket hub — broadcasts the current results to UI clients.
	hub := ws.New(handler.BuildResults, cfg.Server.BroadcastInterval)
	go hub.Run(ctx)

	// Config hot reload: re-seed the session and push results immediately.
	go func() {
		err := config.Watch(ctx, *configPath, func(next *config.Config) {
			applyConfig(st, next)
			hub.Broadcast()
			slog.Info("session re-seeded from config", "inlets", st.Len())
		})
		if err != nil {
			slog.Warn("config watch disabled", "err", err)
		}
	}()

	httpMux := http.NewServeMux()
	httpMux.Handle("/api/", handler)
	httpMux.Handle("/metrics", export.Handler(func() []compute.Metrics {
		return compute.ComputeBatch(st.List())
	}))
	httpMux.Handle("/ws/stream", hub)

	// Optional: serve a pre-built UI from a local directory, with an
	// index.html fallback for unknown paths (SPA routing).
	if *uiDir != "" {
		fs := http.FileServer(http.Dir(*uiDir))
		httpMux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			path := *uiDir + r.URL.Path
			if _, err := os.Stat(path); os.IsNotExist(err) {
				http.ServeFile(w, r, *uiDir+"/index.html")
				return
			}
			fs.ServeHTTP(w, r)
		})
		slog.Info("serving UI static files", "dir", *uiDir)
	}

	httpSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler: httpMux,
	}
	go func() {
		slog.Info("HTTP server listening", "port", cfg.Server.HTTPPort)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server stopped", "err", err)
		}
	}()

	<-ctx.Done()
	slog.Info("inletpara shutting down")
	httpSrv.Shutdown(context.Background()) //nolint:errcheck
}

// loadConfig loads the file at path, falling back to built-in defaults when
// the default config file simply does not exist.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		slog.Info("no config file found — using defaults", "path", path)
		return config.Default(), nil
	}
	return cfg, err
}

// applyConfig replaces the session contents with the config's seed collection
// and updates the template for future growth.
func applyConfig(st *session.Store, cfg *config.Config) {
	st.SetDefaults(cfg.DefaultMeasurement())
	if err := st.Replace(cfg.Seed()); err != nil {
		slog.Error("config seed rejected — keeping current inlets", "err", err)
	}
}

// printReport writes the comparison table and bar charts for the given
// measurements to stdout.
func printReport(ms []compute.Measurement) error {
	results := compute.ComputeBatch(ms)
	if err := render.Table(os.Stdout, results); err != nil {
		return err
	}
	fmt.Println()
	render.Charts(os.Stdout, results)
	return nil
}
