package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"walletkit/internal/domain"
)

// PaymentRepository passes single payments straight through and remembers
// the last fetched payment history.
type PaymentRepository struct {
	source domain.PaymentDataSource
	log    logrus.FieldLogger

	guard
	history []domain.PaymentInfo
	fetched bool
}

// NewPaymentRepository returns a PaymentRepository with no history cached.
func NewPaymentRepository(source domain.PaymentDataSource, log logrus.FieldLogger) *PaymentRepository {
	return &PaymentRepository{source: source, log: log.WithField("repository", "payment")}
}

func (r *PaymentRepository) MakePayment(ctx context.Context, req domain.PaymentRequest) (domain.PaymentInfo, error) {
	return r.source.MakePayment(ctx, req)
}

func (r *PaymentRepository) GetPayment(ctx context.Context, paymentID int64) (domain.PaymentInfo, error) {
	return r.source.GetPayment(ctx, paymentID)
}

func (r *PaymentRepository) GetPaymentByLink(ctx context.Context, link uuid.UUID) (domain.PaymentInfo, error) {
	return r.source.GetPaymentByLink(ctx, link)
}

func (r *PaymentRepository) GenerateLink(
	ctx context.Context,
	amount decimal.Decimal,
	description string,
) (domain.PaymentLink, error) {
	return r.source.GenerateLink(ctx, amount, description)
}

// History fetches the payment list and caches it.
func (r *PaymentRepository) History(ctx context.Context) ([]domain.PaymentInfo, error) {
	payments, err := r.source.ListPayments(ctx)
	if err != nil {
		return nil, err
	}
	err = r.commit(ctx, func() error {
		r.history = append([]domain.PaymentInfo(nil), payments...)
		r.fetched = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// CachedHistory returns the last fetched history and whether one exists.
func (r *PaymentRepository) CachedHistory() ([]domain.PaymentInfo, bool) {
	var (
		out []domain.PaymentInfo
		ok  bool
	)
	r.locked(func() {
		out = append([]domain.PaymentInfo(nil), r.history...)
		ok = r.fetched
	})
	return out, ok
}

var _ domain.PaymentRepository = (*PaymentRepository)(nil)
