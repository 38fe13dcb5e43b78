package interfaces

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domaintypes "walletkit/internal/domain/types"
)

// UserDataSource talks to the user endpoints. One method, one round trip.
type UserDataSource interface {
	Register(ctx context.Context, in domaintypes.RegisterInput) (domaintypes.Registration, error)
}

// WalletDataSource talks to the wallet endpoints.
type WalletDataSource interface {
	Balance(ctx context.Context) (decimal.Decimal, error)
	Recharge(ctx context.Context, amount decimal.Decimal, cardID int64) (decimal.Decimal, error)
	Investment(ctx context.Context) (decimal.Decimal, error)
	Invest(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error)
	Divest(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error)
	Cards(ctx context.Context) ([]domaintypes.Card, error)
	AddCard(ctx context.Context, card domaintypes.Card) (domaintypes.Card, error)
	DeleteCard(ctx context.Context, cardID int64) error
	DailyReturns(ctx context.Context) ([]domaintypes.DailyValue, error)
	DailyInterest(ctx context.Context) ([]domaintypes.DailyValue, error)
	Details(ctx context.Context) (domaintypes.WalletDetails, error)
}

// PaymentDataSource talks to the payment endpoints.
type PaymentDataSource interface {
	MakePayment(ctx context.Context, req domaintypes.PaymentRequest) (domaintypes.PaymentInfo, error)
	ListPayments(ctx context.Context) ([]domaintypes.PaymentInfo, error)
	GetPayment(ctx context.Context, paymentID int64) (domaintypes.PaymentInfo, error)
	GetPaymentByLink(ctx context.Context, link uuid.UUID) (domaintypes.PaymentInfo, error)
	GenerateLink(
		ctx context.Context,
		amount decimal.Decimal,
		description string,
	) (domaintypes.PaymentLink, error)
}
