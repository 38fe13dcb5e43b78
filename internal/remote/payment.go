package remote

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"walletkit/internal/domain"
	"walletkit/internal/gateway"
)

// PaymentSource is the remote data source for payment operations.
type PaymentSource struct {
	api    gateway.PaymentAPI
	tokens domain.TokenSource
	log    logrus.FieldLogger
	newID  func() uuid.UUID
}

// NewPaymentSource returns a PaymentSource over api.
func NewPaymentSource(api gateway.PaymentAPI, tokens domain.TokenSource, log logrus.FieldLogger) *PaymentSource {
	return &PaymentSource{
		api:    api,
		tokens: tokens,
		log:    log.WithField("source", "payment"),
		newID:  uuid.New,
	}
}

// MakePayment pays either a receiver or an existing payment link.
func (s *PaymentSource) MakePayment(ctx context.Context, req domain.PaymentRequest) (domain.PaymentInfo, error) {
	if err := positive(req.Amount); err != nil {
		return domain.PaymentInfo{}, err
	}
	if (req.ReceiverID == nil) == (req.LinkUUID == nil) {
		return domain.PaymentInfo{}, domain.InvalidInput("exactly one of receiver or payment link is required")
	}
	body, err := Call(ctx, s.log, func(ctx context.Context) (*gateway.Response[gateway.PaymentDTO], error) {
		return s.api.MakePayment(ctx, gateway.PaymentRequestDTO{
			Amount:      req.Amount,
			Description: req.Description,
			ReceiverID:  req.ReceiverID,
			LinkUUID:    req.LinkUUID,
			CardID:      req.CardID,
		})
	})
	if err != nil {
		return domain.PaymentInfo{}, err
	}
	return paymentFromWire(body), nil
}

func (s *PaymentSource) ListPayments(ctx context.Context) ([]domain.PaymentInfo, error) {
	body, err := Call(ctx, s.log, s.api.ListPayments)
	if err != nil {
		return nil, err
	}
	return paymentsFromWire(body), nil
}

func (s *PaymentSource) GetPayment(ctx context.Context, paymentID int64) (domain.PaymentInfo, error) {
	body, err := Call(ctx, s.log, func(ctx context.Context) (*gateway.Response[gateway.PaymentDTO], error) {
		return s.api.GetPayment(ctx, paymentID)
	})
	if err != nil {
		return domain.PaymentInfo{}, err
	}
	return paymentFromWire(body), nil
}

func (s *PaymentSource) GetPaymentByLink(ctx context.Context, link uuid.UUID) (domain.PaymentInfo, error) {
	body, err := Call(ctx, s.log, func(ctx context.Context) (*gateway.Response[gateway.PaymentDTO], error) {
		return s.api.GetPaymentByLink(ctx, link)
	})
	if err != nil {
		return domain.PaymentInfo{}, err
	}
	return paymentFromWire(body), nil
}

// GenerateLink creates a payment link under a freshly generated UUID.
func (s *PaymentSource) GenerateLink(
	ctx context.Context,
	amount decimal.Decimal,
	description string,
) (domain.PaymentLink, error) {
	if err := positive(amount); err != nil {
		return domain.PaymentLink{}, err
	}
	id := s.newID()
	body, err := Call(ctx, s.log, func(ctx context.Context) (*gateway.Response[gateway.PaymentLinkDTO], error) {
		return s.api.GenerateLink(ctx, id, gateway.PaymentLinkRequest{Amount: amount, Description: description})
	})
	if err != nil {
		return domain.PaymentLink{}, err
	}
	link := domain.PaymentLink{
		UUID:        body.UUID,
		Amount:      body.Amount,
		Description: body.Description,
		URL:         body.URL,
	}
	if link.UUID == uuid.Nil {
		link.UUID = id
	}
	return link, nil
}

var _ domain.PaymentDataSource = (*PaymentSource)(nil)
