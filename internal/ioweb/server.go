// Package ioweb serves the EModelDB web interface: filter controls over
// the catalog, a record listing with selection, matrix previews, and the
// export/download trigger. A JSON listing is exposed under /api.
//
// The catalog is loaded once and shared read-only by all sessions; the
// only per-session state is the selection, owned by an explicit session
// object rather than package-level globals.
package ioweb

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/catalog"
	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/config"
	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/export"
	"golang.org/x/sync/errgroup"
)

// Server hosts the web interface over a loaded catalog.
type Server struct {
	cfg      *config.Config
	records  []catalog.ModelRecord
	exporter export.Exporter
	sessions *sessionStore
	tmpl     *template.Template
	handler  http.Handler
}

// New creates a configured server. The record slice is treated as
// immutable; the server never modifies it.
func New(
	cfg *config.Config,
	records []catalog.ModelRecord,
	exporter export.Exporter,
) (*Server, error) {
	s := &Server{
		cfg:      cfg,
		records:  records,
		exporter: exporter,
		sessions: newSessionStore(),
	}

	if err := s.initTemplates(); err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /select", s.handleSelect)
	mux.HandleFunc("POST /export", s.handleExport)
	mux.HandleFunc("GET /models/{name}/matrix", s.handleMatrix)
	mux.HandleFunc("GET /api/models", s.handleAPIModels)
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", assetsHandler()))
	s.handler = mux

	return s, nil
}

// Addr returns the listen address derived from the configuration.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.cfg.Web.Host, s.cfg.Web.Port)
}

// Handler exposes the routing for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves the interface until the context is canceled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr(),
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Web interface is listening",
			"address", "http://"+s.Addr(),
			"records", len(s.records),
		)
		err := srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return ServerStartError(s.Addr(), err)
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), 5*time.Second,
		)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
