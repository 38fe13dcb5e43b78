package main

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/spf13/cobra"

	"walletkit/internal/app"
	"walletkit/internal/devserver"
)

type config struct {
	Addr     string `env:"WALLETD_ADDR,default=127.0.0.1:8080"`
	Secret   string `env:"WALLETD_SECRET"`
	LogLevel string `env:"WALLETD_LOG_LEVEL,default=info"`
}

func main() {
	var cfg config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	root := &cobra.Command{
		Use:           "walletd",
		Short:         "In-memory wallet backend for development",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cfg)
		},
	}
	root.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	root.Flags().StringVar(&cfg.Secret, "secret", cfg.Secret, "HS256 token signing secret (random when empty)")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func serve(ctx context.Context, cfg config) error {
	logger := app.NewLogger(os.Stderr, cfg.LogLevel)

	secret := []byte(cfg.Secret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return fmt.Errorf("generate secret: %w", err)
		}
		logger.Warn("no secret configured, tokens will not survive a restart")
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           devserver.New(secret, logger),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Infof("walletd listening on %s", cfg.Addr)
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logger.Info("shutting down")
	return server.Shutdown(shutdown)
}
