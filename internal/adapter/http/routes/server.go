package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	"paint_estimator/internal/config"
	"paint_estimator/pkg/requestid"

	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// NewServer wraps the router with CORS for the browser client.
func NewServer(cfg config.Config, router http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Service.Address,
		Handler:           corsHandler(cfg.Service.AllowedOrigins)(router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func corsHandler(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestid.HeaderName},
		ExposedHeaders: []string{requestid.HeaderName},
		MaxAge:         300,
	})
}

// Serve runs srv until ctx is cancelled, then drains in-flight requests for
// at most timeout.
func Serve(ctx context.Context, srv *http.Server, timeout time.Duration) error {
	log := zap.S().Named("server")

	errCh := make(chan error, 1)
	go func() {
		log.Infow("paint estimator listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Infow("shutting down", "cause", context.Cause(ctx))
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("server shut down gracefully")
	return nil
}
