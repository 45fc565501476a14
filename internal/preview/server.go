// Package preview serves rendered component pages over HTTP so layout
// and chrome markup can be inspected in a browser during development.
package preview

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	f7 "github.com/lamarque/go-f7"
)

// Server is the preview HTTP server.
type Server struct {
	addr   string
	cfg    f7.Config
	logger *zap.Logger
}

// NewServer creates a preview server for the given app config.
func NewServer(addr string, cfg f7.Config, logger *zap.Logger) *Server {
	return &Server{addr: addr, cfg: cfg, logger: logger}
}

// Run serves until the context is canceled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("preview server listening", zap.String("addr", s.addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
