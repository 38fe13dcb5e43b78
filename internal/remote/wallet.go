package remote

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"walletkit/internal/domain"
	"walletkit/internal/gateway"
)

// WalletSource is the remote data source for wallet operations.
type WalletSource struct {
	api    gateway.WalletAPI
	tokens domain.TokenSource
	log    logrus.FieldLogger
}

// NewWalletSource returns a WalletSource over api.
func NewWalletSource(api gateway.WalletAPI, tokens domain.TokenSource, log logrus.FieldLogger) *WalletSource {
	return &WalletSource{api: api, tokens: tokens, log: log.WithField("source", "wallet")}
}

func (s *WalletSource) Balance(ctx context.Context) (decimal.Decimal, error) {
	body, err := Call(ctx, s.log, s.api.Balance)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return body.Balance, nil
}

// Recharge tops the wallet up from a card and returns the new balance.
func (s *WalletSource) Recharge(ctx context.Context, amount decimal.Decimal, cardID int64) (decimal.Decimal, error) {
	if err := positive(amount); err != nil {
		return decimal.Decimal{}, err
	}
	body, err := Call(ctx, s.log, func(ctx context.Context) (*gateway.Response[gateway.BalanceResponse], error) {
		return s.api.Recharge(ctx, gateway.RechargeRequest{Amount: amount, CardID: cardID})
	})
	if err != nil {
		return decimal.Decimal{}, err
	}
	return body.Balance, nil
}

func (s *WalletSource) Investment(ctx context.Context) (decimal.Decimal, error) {
	body, err := Call(ctx, s.log, s.api.Investment)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return body.Investment, nil
}

// Invest moves amount from the balance into the investment and returns the
// new investment total.
func (s *WalletSource) Invest(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	return s.move(ctx, amount, s.api.Invest)
}

// Divest is the reverse of Invest.
func (s *WalletSource) Divest(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	return s.move(ctx, amount, s.api.Divest)
}

func (s *WalletSource) move(
	ctx context.Context,
	amount decimal.Decimal,
	op func(context.Context, gateway.AmountRequest) (*gateway.Response[gateway.InvestmentResponse], error),
) (decimal.Decimal, error) {
	if err := positive(amount); err != nil {
		return decimal.Decimal{}, err
	}
	body, err := Call(ctx, s.log, func(ctx context.Context) (*gateway.Response[gateway.InvestmentResponse], error) {
		return op(ctx, gateway.AmountRequest{Amount: amount})
	})
	if err != nil {
		return decimal.Decimal{}, err
	}
	return body.Investment, nil
}

func (s *WalletSource) Cards(ctx context.Context) ([]domain.Card, error) {
	body, err := Call(ctx, s.log, s.api.Cards)
	if err != nil {
		return nil, err
	}
	return cardsFromWire(body), nil
}

// AddCard submits a client-built card; the returned card carries the
// server-assigned ID.
func (s *WalletSource) AddCard(ctx context.Context, card domain.Card) (domain.Card, error) {
	if strings.TrimSpace(card.Number) == "" {
		return domain.Card{}, domain.InvalidInput("card number is required")
	}
	if !card.Type.Valid() {
		return domain.Card{}, domain.InvalidInput("unknown card type %q", card.Type)
	}
	body, err := Call(ctx, s.log, func(ctx context.Context) (*gateway.Response[gateway.CardDTO], error) {
		return s.api.AddCard(ctx, cardToWire(card))
	})
	if err != nil {
		return domain.Card{}, err
	}
	return cardFromWire(body), nil
}

func (s *WalletSource) DeleteCard(ctx context.Context, cardID int64) error {
	return CallNoBody(ctx, s.log, func(ctx context.Context) (*gateway.Response[gateway.NoContent], error) {
		return s.api.DeleteCard(ctx, cardID)
	})
}

func (s *WalletSource) DailyReturns(ctx context.Context) ([]domain.DailyValue, error) {
	body, err := Call(ctx, s.log, s.api.DailyReturns)
	if err != nil {
		return nil, err
	}
	return dailyFromWire(body), nil
}

func (s *WalletSource) DailyInterest(ctx context.Context) ([]domain.DailyValue, error) {
	body, err := Call(ctx, s.log, s.api.DailyInterest)
	if err != nil {
		return nil, err
	}
	return dailyFromWire(body), nil
}

func (s *WalletSource) Details(ctx context.Context) (domain.WalletDetails, error) {
	body, err := Call(ctx, s.log, s.api.Details)
	if err != nil {
		return domain.WalletDetails{}, err
	}
	return domain.WalletDetails{
		Balance:    body.Balance,
		Investment: body.Investment,
		Cards:      cardsFromWire(body.Cards),
	}, nil
}

func positive(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.InvalidInput("amount must be positive, got %s", amount)
	}
	return nil
}

var _ domain.WalletDataSource = (*WalletSource)(nil)
