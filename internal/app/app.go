// Package app wires the customers-map HTTP application: the OAuth handshake
// routes, the cached map/list views, the image proxy, and the SVG export.
package app

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/world1dan/customers-map/internal/cache"
	"github.com/world1dan/customers-map/internal/config"
	"github.com/world1dan/customers-map/internal/pkce"
)

// App is the customers-map application server.
type App struct {
	cfg     *config.Config
	store   *cache.Store
	session *pkce.Session
	logger  *slog.Logger
	router  *chi.Mux
	client  *http.Client

	// onPage receives fetch-loop progress; the CLI hooks a terminal
	// progress bar here.
	onPage func(fetched, total int)

	// fetching guards against double invocation of the callback pipeline
	// while a fetch loop is already running.
	fetching atomic.Bool
}

// New creates the application with its routes mounted.
func New(cfg *config.Config, store *cache.Store, logger *slog.Logger) *App {
	a := &App{
		cfg:     cfg,
		store:   store,
		session: pkce.NewSession(store),
		logger:  logger,
		client:  &http.Client{},
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(a.cors)
	r.Use(a.requestLog)

	r.Get("/", a.Index)
	r.Get("/auth/start", a.AuthStart)
	r.Get("/auth/callback", a.AuthCallback)
	r.Get("/api/countries", a.Countries)
	r.Get("/api/proxy-image", a.ProxyImage)
	r.Get("/export", a.Export)
	r.Post("/reset", a.Reset)

	a.router = r
	return a
}

// SetPageProgress installs a fetch-progress callback.
func (a *App) SetPageProgress(fn func(fetched, total int)) {
	a.onPage = fn
}

// ServeHTTP implements http.Handler so App can be driven directly in tests.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// Serve starts the HTTP server and blocks until a shutdown signal.
func (a *App) Serve() error {
	srv := &http.Server{
		Addr:         a.cfg.ListenAddr,
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute, // fetch loops can be long
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		a.logger.Info("customers-map listening", "addr", a.cfg.ListenAddr, "url", a.cfg.PublicURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	<-done
	a.logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func (a *App) endpoints() pkce.Endpoints {
	return pkce.Endpoints{
		AuthorizeURL: a.cfg.AuthorizeURL(),
		TokenURL:     a.cfg.TokenURL(),
		ClientID:     a.cfg.ClientID,
		RedirectURI:  a.cfg.RedirectURI(),
	}
}
