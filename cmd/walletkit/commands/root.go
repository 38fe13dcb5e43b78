package commands

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"walletkit/internal/app"
)

var (
	home       string
	passphrase string
	baseURL    string
	envFile    string
	logLevel   string
	timeout    time.Duration
	rateLimit  float64

	wire *app.Wire
)

// Execute runs the CLI with os.Args, cancelling in-flight calls on interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "walletkit",
		Short:         "Wallet, card and payment client",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(envFile)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("home") {
				cfg.Home = home
			}
			if flags.Changed("passphrase") {
				cfg.Passphrase = passphrase
			}
			if flags.Changed("base-url") {
				cfg.BaseURL = baseURL
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("timeout") {
				cfg.Timeout = timeout
			}
			if flags.Changed("rate-limit") {
				cfg.RateLimit = rateLimit
			}

			logger := app.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			wire, err = app.NewWire(cfg, logger, nil)
			return err
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&home, "home", "", "preferences dir (default ~/.walletkit)")
	pf.StringVarP(&passphrase, "passphrase", "p", "", "passphrase to seal stored preferences")
	pf.StringVar(&baseURL, "base-url", "", "server base URL (e.g. http://127.0.0.1:8080)")
	pf.StringVar(&envFile, "env-file", "", "optional .env file to load before the environment")
	pf.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.DurationVar(&timeout, "timeout", 0, "per-request timeout")
	pf.Float64Var(&rateLimit, "rate-limit", 0, "max requests per second, 0 disables")

	root.AddCommand(
		registerCmd(), logoutCmd(), whoamiCmd(),
		balanceCmd(), rechargeCmd(), investmentCmd(), investCmd(), divestCmd(),
		returnsCmd(), interestCmd(), detailsCmd(),
		cardsCmd(),
		payCmd(), paymentCmd(), paymentsCmd(),
	)
	return root
}
