package apiserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/katelinlis/SocialHub/internal/app/store/memstore"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 5 * time.Second

//Start serves the API until ctx is cancelled, then shuts down gracefully.
func Start(ctx context.Context, config *Config) error {
	logger := newLogger(config.LogLevel)

	srv := newServer(memstore.New(), logger)
	httpServer := &http.Server{
		Addr:    config.BindAddr,
		Handler: srv,
	}

	errc := make(chan error, 1)
	go func() {
		logger.WithField("addr", config.BindAddr).Info("Start webserver")
		errc <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down webserver")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newLogger(level string) *logrus.Logger {
	logger := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logger.WithField("log_level", level).Warn("unknown log level, using info")
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	return logger
}
