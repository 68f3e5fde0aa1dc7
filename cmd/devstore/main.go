// Command devstore serves an in-memory storage API for local runs of the
// client.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrijs2005/gophdrop/internal/fakestore"
	"github.com/dmitrijs2005/gophdrop/internal/logging"
)

func main() {
	addr := flag.String("a", ":5000", "listen address")
	level := flag.String("l", "info", "log level")
	bare := flag.Bool("bare", false, "answer with bare payloads instead of the {success,data} envelope")
	flag.Parse()

	logger, err := logging.New(os.Stderr, *level)
	if err != nil {
		log.Fatalf("%v", err)
	}

	var opts []fakestore.Option
	opts = append(opts, fakestore.WithLogger(logger))
	if *bare {
		opts = append(opts, fakestore.WithBareResponses())
	}
	store := fakestore.New(opts...)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Handle("/metrics", promhttp.Handler())
	r.Mount("/", store.Handler())

	srv := &http.Server{
		Addr:         *addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "devstore listening", "addr", *addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			log.Fatalf("serve: %v", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(shutdownCtx, "shutdown failed", "error", err)
	}
}
