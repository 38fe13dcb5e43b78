package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"walletkit/internal/domain"
)

var errBoom = errors.New("boom")

func nullLogger() logrus.FieldLogger {
	l, _ := logtest.NewNullLogger()
	return l
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func int64p(v int64) *int64 { return &v }

// fakeUsers answers Register with whatever register returns.
type fakeUsers struct {
	register func(ctx context.Context, in domain.RegisterInput) (domain.Registration, error)
}

func (f *fakeUsers) Register(ctx context.Context, in domain.RegisterInput) (domain.Registration, error) {
	return f.register(ctx, in)
}

// fakeWallet embeds the interface so tests only stub what they call.
type fakeWallet struct {
	domain.WalletDataSource

	balance       func(ctx context.Context) (decimal.Decimal, error)
	recharge      func(ctx context.Context, amount decimal.Decimal, cardID int64) (decimal.Decimal, error)
	investment    func(ctx context.Context) (decimal.Decimal, error)
	invest        func(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error)
	divest        func(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error)
	cards         func(ctx context.Context) ([]domain.Card, error)
	addCard       func(ctx context.Context, c domain.Card) (domain.Card, error)
	deleteCard    func(ctx context.Context, cardID int64) error
	dailyReturns  func(ctx context.Context) ([]domain.DailyValue, error)
	dailyInterest func(ctx context.Context) ([]domain.DailyValue, error)
	details       func(ctx context.Context) (domain.WalletDetails, error)
}

func (f *fakeWallet) Balance(ctx context.Context) (decimal.Decimal, error) { return f.balance(ctx) }

func (f *fakeWallet) Recharge(ctx context.Context, amount decimal.Decimal, cardID int64) (decimal.Decimal, error) {
	return f.recharge(ctx, amount, cardID)
}

func (f *fakeWallet) Investment(ctx context.Context) (decimal.Decimal, error) {
	return f.investment(ctx)
}

func (f *fakeWallet) Invest(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	return f.invest(ctx, amount)
}

func (f *fakeWallet) Divest(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	return f.divest(ctx, amount)
}

func (f *fakeWallet) Cards(ctx context.Context) ([]domain.Card, error) { return f.cards(ctx) }

func (f *fakeWallet) AddCard(ctx context.Context, c domain.Card) (domain.Card, error) {
	return f.addCard(ctx, c)
}

func (f *fakeWallet) DeleteCard(ctx context.Context, cardID int64) error {
	return f.deleteCard(ctx, cardID)
}

func (f *fakeWallet) DailyReturns(ctx context.Context) ([]domain.DailyValue, error) {
	return f.dailyReturns(ctx)
}

func (f *fakeWallet) DailyInterest(ctx context.Context) ([]domain.DailyValue, error) {
	return f.dailyInterest(ctx)
}

func (f *fakeWallet) Details(ctx context.Context) (domain.WalletDetails, error) {
	return f.details(ctx)
}

type fakePayments struct {
	domain.PaymentDataSource

	list         func(ctx context.Context) ([]domain.PaymentInfo, error)
	makePayment  func(ctx context.Context, req domain.PaymentRequest) (domain.PaymentInfo, error)
	getPayment   func(ctx context.Context, paymentID int64) (domain.PaymentInfo, error)
	getByLink    func(ctx context.Context, link uuid.UUID) (domain.PaymentInfo, error)
	generateLink func(ctx context.Context, amount decimal.Decimal, description string) (domain.PaymentLink, error)
}

func (f *fakePayments) ListPayments(ctx context.Context) ([]domain.PaymentInfo, error) {
	return f.list(ctx)
}

func (f *fakePayments) MakePayment(ctx context.Context, req domain.PaymentRequest) (domain.PaymentInfo, error) {
	return f.makePayment(ctx, req)
}

func (f *fakePayments) GetPayment(ctx context.Context, paymentID int64) (domain.PaymentInfo, error) {
	return f.getPayment(ctx, paymentID)
}

func (f *fakePayments) GetPaymentByLink(ctx context.Context, link uuid.UUID) (domain.PaymentInfo, error) {
	return f.getByLink(ctx, link)
}

func (f *fakePayments) GenerateLink(
	ctx context.Context,
	amount decimal.Decimal,
	description string,
) (domain.PaymentLink, error) {
	return f.generateLink(ctx, amount, description)
}

// brokenSession fails every write.
type brokenSession struct{}

func (brokenSession) Token() (string, bool, error) { return "", false, nil }
func (brokenSession) SaveToken(string) error       { return errBoom }
func (brokenSession) ClearToken() error            { return errBoom }
func (brokenSession) Claims() (domain.SessionClaims, bool, error) {
	return domain.SessionClaims{}, false, nil
}
