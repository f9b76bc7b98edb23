package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-priceform/components/predictform"
	"github.com/goliatone/go-priceform/internal/logger"
	"github.com/goliatone/go-priceform/internal/metrics"
	"github.com/goliatone/go-priceform/pkg/form"
	"github.com/goliatone/go-priceform/pkg/renderers/vanilla"
)

const shutdownTimeout = 10 * time.Second

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the prediction form over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
	rootCmd.AddCommand(serveCmd)
}

// routerMux adapts httprouter to predictform.Mux. Every method the component
// answers, including the ones it rejects with 405, is routed to it.
type routerMux struct {
	router *httprouter.Router
}

var routedMethods = []string{
	http.MethodGet, http.MethodHead, http.MethodPost,
	http.MethodPut, http.MethodPatch, http.MethodDelete,
}

func (m routerMux) Handle(pattern string, handler http.Handler) {
	for _, method := range routedMethods {
		m.router.Handler(method, pattern, handler)
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	log := logger.New("serve")

	schema, err := loadSchema(ctx, cfg)
	if err != nil {
		return err
	}
	renderer, err := vanilla.New(
		vanilla.WithLocale(cfg.Render.Locale),
		vanilla.WithPrettyOutput(cfg.Render.Pretty),
	)
	if err != nil {
		return fmt.Errorf("vanilla renderer: %w", err)
	}

	var recorder form.Recorder
	if cfg.Metrics.Enabled {
		rec, err := metrics.NewPromRecorder(prometheus.DefaultRegisterer)
		if err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
		recorder = rec
	}

	router := httprouter.New()
	component := predictform.New(
		predictform.WithSchema(schema),
		predictform.WithRenderer(renderer),
		predictform.WithPredictor(newPredictor(cfg, schema)),
		predictform.WithRecorder(recorder),
		predictform.WithLocale(cfg.Render.Locale),
		predictform.WithLogger(logger.New("predictform")),
	)
	paths, err := component.RegisterRoutes(routerMux{router: router}, cfg.Server.BasePath)
	if err != nil {
		return err
	}
	router.HandlerFunc(http.MethodGet, "/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	if cfg.Metrics.Enabled {
		router.Handler(http.MethodGet, cfg.Metrics.Path, metrics.Handler(prometheus.DefaultGatherer))
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Infof("listening on %s (form %s, api %s, endpoint %s)", cfg.Server.Addr, paths[0], paths[1], schema.Endpoint)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Infof("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
