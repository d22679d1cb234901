// RealScroll mock server
//
// Serves the full RealScroll REST surface over in-memory fixture data
// so the client can be developed offline against the real transport
// path. Tokens are signed JWTs; responses use the production envelope.
package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/swan07222/RealScroll-app/internal/config"
	"github.com/swan07222/RealScroll-app/internal/logging"
	"github.com/swan07222/RealScroll-app/internal/metrics"
	"github.com/swan07222/RealScroll-app/internal/mockserver"
	"github.com/swan07222/RealScroll-app/pkg/mock"
)

func main() {
	cfg := config.LoadServer()

	if err := logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	}); err != nil {
		panic("logging init error: " + err.Error())
	}
	defer logging.Sync()

	logging.Info("RealScroll mock server starting...",
		zap.String("listen", cfg.ListenAddr),
		zap.String("metrics", cfg.MetricsAddr))

	data := mock.NewData()
	data.SetOTPCode(cfg.OTPCode)
	srv := mockserver.New(data, cfg.JWTSecret)

	metricsServer := &http.Server{
		Addr:    cfg.MetricsAddr,
		Handler: metrics.Handler(),
	}
	go func() {
		logging.Info("metrics server listening", zap.String("addr", cfg.MetricsAddr))
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			logging.Error("metrics server error", zap.Error(err))
		}
	}()

	httpServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: srv.Handler(),
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logging.Info("shutting down...")
		httpServer.Close()
		metricsServer.Close()
	}()

	logging.Info("mock server listening", zap.String("addr", cfg.ListenAddr))
	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		logging.Fatal("server error", zap.Error(err))
	}
}
