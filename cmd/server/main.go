// goldshop-gateway/cmd/server/main.go
package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/example/goldshop-gateway/internal/config"
	"github.com/example/goldshop-gateway/internal/goldrate"
	"github.com/example/goldshop-gateway/internal/handlers"
	"github.com/example/goldshop-gateway/internal/payment"
	m "github.com/example/goldshop-gateway/pkg/metrics"
)

const serviceName = "goldshop-api"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	rates := goldrate.NewService(
		goldrate.NewClient(cfg.GoldAPIURL, cfg.GoldAPIKey),
		cfg.GoldRateTTL,
	)
	payments := payment.NewService(
		payment.NewRazorpayClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret),
		cfg.RazorpayKeyID,
		cfg.RazorpayKeySecret,
	)
	deps := handlers.Deps{Rates: rates, Payments: payments}

	r := mux.NewRouter()
	r.Use(metricsMiddleware)

	// metrics & health
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":      true,
			"service": serviceName,
			"ts":      time.Now().UTC(),
		})
	}).Methods(http.MethodGet)

	// API
	r.HandleFunc("/api/gold-rate", handlers.GoldRateHandler(deps)).Methods(http.MethodGet)
	r.HandleFunc("/api/payments/order", handlers.CreateOrderHandler(deps)).Methods(http.MethodPost)
	r.HandleFunc("/api/payments/verify", handlers.VerifyHandler(deps)).Methods(http.MethodPost)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      cors.AllowAll().Handler(r),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Printf("HTTP server Shutdown: %v", err)
		}
	}()

	log.Printf("%s listening at %s", serviceName, cfg.HTTPAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

/*************** Metrics middleware ***************/
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		statusLabel := "FAILED"
		if rec.status >= 200 && rec.status < 400 {
			statusLabel = "SUCCESS"
		}
		m.IncRequest(serviceName, statusLabel, r.Method)
		m.ObserveDuration(serviceName, statusLabel, time.Since(start).Seconds())
	})
}
