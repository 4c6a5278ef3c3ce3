// Package server implements the ClassQL demo web application: the landing
// page with live examples, the schema explorer and the JSON query API.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/satishbabariya/classql/internal/watch"
	"github.com/satishbabariya/classql/query/cache"
	"github.com/satishbabariya/classql/query/executor"
	"github.com/satishbabariya/classql/runtime/client"
)

const shutdownTimeout = 10 * time.Second

// Options configures a Server.
type Options struct {
	Addr        string
	TemplateDir string // serve templates from disk and reload on change
	CacheSize   int
	CacheTTL    time.Duration
}

// Server serves the demo pages and the query API on top of a connected
// client.
type Server struct {
	opts      Options
	client    *client.Client
	executor  *executor.Executor
	cache     *cache.Cache
	templates *Templates
	router    *mux.Router
}

// NewServer creates a new server for the given client.
func NewServer(c *client.Client, opts Options) (*Server, error) {
	if opts.Addr == "" {
		opts.Addr = "0.0.0.0:3000"
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = 500
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 5 * time.Minute
	}

	templates, err := NewTemplates(opts.TemplateDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	s := &Server{
		opts:      opts,
		client:    c,
		executor:  executor.NewExecutor(c),
		cache:     cache.New(opts.CacheSize, opts.CacheTTL),
		templates: templates,
	}
	s.router = s.routes()

	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)
	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/explorer", s.handleExplorer).Methods(http.MethodGet)
	r.HandleFunc("/api/query", s.handleQuery).Methods(http.MethodGet)
	r.HandleFunc("/api/render", s.handleRender).Methods(http.MethodGet)
	r.HandleFunc("/api/schema", s.handleSchema).Methods(http.MethodGet)
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", staticHandler()))

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	if s.opts.TemplateDir != "" {
		watcher, err := watch.NewWatcher(s.opts.TemplateDir, ".html", func() error {
			log.Info("Reloading templates")
			return s.templates.Reload()
		})
		if err != nil {
			return fmt.Errorf("failed to watch templates: %w", err)
		}

		if err := watcher.Start(); err != nil {
			return err
		}
		defer func() { _ = watcher.Stop() }()
	}

	srv := &http.Server{
		Addr:    s.opts.Addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(log.Fields{"addr": s.opts.Addr}).Info("Listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	stats := s.cache.Stats()
	log.WithFields(log.Fields{
		"hits":     stats.Hits,
		"misses":   stats.Misses,
		"hit_rate": fmt.Sprintf("%.1f%%", stats.HitRate),
	}).Debug("Query cache stats")

	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Debug("Request handled")
	})
}
