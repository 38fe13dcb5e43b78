package interfaces

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domaintypes "walletkit/internal/domain/types"
)

// UserRepository remembers the registered user and owns the session.
type UserRepository interface {
	Register(ctx context.Context, in domaintypes.RegisterInput) (domaintypes.User, error)
	CurrentUser() (domaintypes.User, bool)
	Logout() error
}

// WalletRepository caches balance, investment and cards.
type WalletRepository interface {
	Balance(ctx context.Context) (decimal.Decimal, error)
	Recharge(ctx context.Context, amount decimal.Decimal, cardID int64) (decimal.Decimal, error)
	Investment(ctx context.Context) (decimal.Decimal, error)
	Invest(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error)
	Divest(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error)
	Cards(ctx context.Context) ([]domaintypes.Card, error)
	AddCard(ctx context.Context, card domaintypes.Card) (domaintypes.Card, error)
	DeleteCard(ctx context.Context, cardID int64) error
	SelectCard(card domaintypes.Card)
	DailyReturns(ctx context.Context) ([]domaintypes.DailyValue, error)
	DailyInterest(ctx context.Context) ([]domaintypes.DailyValue, error)
	Details(ctx context.Context) (domaintypes.WalletDetails, error)
	Snapshot() domaintypes.WalletState
}

// PaymentRepository makes payments and remembers the latest history page.
type PaymentRepository interface {
	MakePayment(ctx context.Context, req domaintypes.PaymentRequest) (domaintypes.PaymentInfo, error)
	GetPayment(ctx context.Context, paymentID int64) (domaintypes.PaymentInfo, error)
	GetPaymentByLink(ctx context.Context, link uuid.UUID) (domaintypes.PaymentInfo, error)
	GenerateLink(
		ctx context.Context,
		amount decimal.Decimal,
		description string,
	) (domaintypes.PaymentLink, error)
	History(ctx context.Context) ([]domaintypes.PaymentInfo, error)
	CachedHistory() ([]domaintypes.PaymentInfo, bool)
}
