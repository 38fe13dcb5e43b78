package app

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"walletkit/internal/domain"
	"walletkit/internal/gateway"
	"walletkit/internal/remote"
	"walletkit/internal/repository"
	"walletkit/internal/store"
)

// Wire bundles the stores, client factory and repositories for the CLI.
type Wire struct {
	Config   Config
	Log      logrus.FieldLogger
	Prefs    domain.KeyValueStore
	Session  *store.SessionStore
	Metrics  *gateway.Metrics
	Factory  *gateway.Factory
	Users    domain.UserRepository
	Wallet   domain.WalletRepository
	Payments domain.PaymentRepository
}

// NewWire constructs the dependency graph from cfg. reg may be nil, in which
// case metrics are collected but not registered anywhere.
func NewWire(cfg Config, log logrus.FieldLogger, reg prometheus.Registerer) (*Wire, error) {
	if cfg.Home == "" {
		return nil, fmt.Errorf("app: home directory is required")
	}

	// Preferences: sealed when a passphrase is configured
	var prefs *store.FileKV
	if cfg.Passphrase != "" {
		prefs = store.NewSealedFileKV(cfg.Home, cfg.Passphrase)
	} else {
		prefs = store.NewFileKV(cfg.Home)
	}
	session := store.NewSessionStore(prefs, log)

	metrics := gateway.NewMetrics(reg)
	factory, err := gateway.NewFactory(gateway.Config{
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		RateLimit: cfg.RateLimit,
		UserAgent: "walletkit",
	}, session, log, metrics)
	if err != nil {
		return nil, err
	}

	// Every service shares the factory's single client
	client := factory.Client()
	users := remote.NewUserSource(gateway.NewUserService(client), session, log)
	wallet := remote.NewWalletSource(gateway.NewWalletService(client), session, log)
	payments := remote.NewPaymentSource(gateway.NewPaymentService(client), session, log)

	return &Wire{
		Config:   cfg,
		Log:      log,
		Prefs:    prefs,
		Session:  session,
		Metrics:  metrics,
		Factory:  factory,
		Users:    repository.NewUserRepository(users, session, log),
		Wallet:   repository.NewWalletRepository(wallet, log),
		Payments: repository.NewPaymentRepository(payments, log),
	}, nil
}
