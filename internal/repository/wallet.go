package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"walletkit/internal/domain"
)

// WalletRepository caches balance, investment, the card list and the card
// the user is currently working with.
type WalletRepository struct {
	source domain.WalletDataSource
	log    logrus.FieldLogger

	guard
	state domain.WalletState
}

// NewWalletRepository returns a WalletRepository with nothing cached.
func NewWalletRepository(source domain.WalletDataSource, log logrus.FieldLogger) *WalletRepository {
	return &WalletRepository{source: source, log: log.WithField("repository", "wallet")}
}

// Balance fetches and caches the wallet balance.
func (r *WalletRepository) Balance(ctx context.Context) (decimal.Decimal, error) {
	b, err := r.source.Balance(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if err := r.commit(ctx, func() error { r.state.Balance = &b; return nil }); err != nil {
		return decimal.Decimal{}, err
	}
	return b, nil
}

// Recharge adds funds from a card and caches the resulting balance.
func (r *WalletRepository) Recharge(ctx context.Context, amount decimal.Decimal, cardID int64) (decimal.Decimal, error) {
	b, err := r.source.Recharge(ctx, amount, cardID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if err := r.commit(ctx, func() error { r.state.Balance = &b; return nil }); err != nil {
		return decimal.Decimal{}, err
	}
	return b, nil
}

// Investment fetches and caches the invested total.
func (r *WalletRepository) Investment(ctx context.Context) (decimal.Decimal, error) {
	inv, err := r.source.Investment(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if err := r.commit(ctx, func() error { r.state.Investment = &inv; return nil }); err != nil {
		return decimal.Decimal{}, err
	}
	return inv, nil
}

// Invest is not cached: both balance and investment move, and only a fresh
// read reflects them.
func (r *WalletRepository) Invest(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	return r.source.Invest(ctx, amount)
}

// Divest is not cached, see Invest.
func (r *WalletRepository) Divest(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	return r.source.Divest(ctx, amount)
}

// Cards fetches and caches the card list.
func (r *WalletRepository) Cards(ctx context.Context) ([]domain.Card, error) {
	cards, err := r.source.Cards(ctx)
	if err != nil {
		return nil, err
	}
	err = r.commit(ctx, func() error {
		r.state.Cards = domain.CloneCards(cards)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cards, nil
}

// AddCard submits card, appends the stored card to a known card list and
// makes it the current card.
func (r *WalletRepository) AddCard(ctx context.Context, card domain.Card) (domain.Card, error) {
	added, err := r.source.AddCard(ctx, card)
	if err != nil {
		return domain.Card{}, err
	}
	err = r.commit(ctx, func() error {
		if r.state.Cards != nil {
			cards := make([]domain.Card, len(r.state.Cards), len(r.state.Cards)+1)
			copy(cards, r.state.Cards)
			r.state.Cards = append(cards, added.Clone())
		}
		current := added.Clone()
		r.state.CurrentCard = &current
		return nil
	})
	if err != nil {
		return domain.Card{}, err
	}
	return added, nil
}

// DeleteCard removes a card on the server. The cached list is left alone
// until the next Cards call.
func (r *WalletRepository) DeleteCard(ctx context.Context, cardID int64) error {
	return r.source.DeleteCard(ctx, cardID)
}

// SelectCard makes card the current card. No network call is involved.
func (r *WalletRepository) SelectCard(card domain.Card) {
	c := card.Clone()
	r.locked(func() { r.state.CurrentCard = &c })
}

func (r *WalletRepository) DailyReturns(ctx context.Context) ([]domain.DailyValue, error) {
	return r.source.DailyReturns(ctx)
}

func (r *WalletRepository) DailyInterest(ctx context.Context) ([]domain.DailyValue, error) {
	return r.source.DailyInterest(ctx)
}

// Details fetches the combined summary and caches balance, investment and
// cards in a single critical section.
func (r *WalletRepository) Details(ctx context.Context) (domain.WalletDetails, error) {
	d, err := r.source.Details(ctx)
	if err != nil {
		return domain.WalletDetails{}, err
	}
	err = r.commit(ctx, func() error {
		balance, investment := d.Balance, d.Investment
		r.state.Balance = &balance
		r.state.Investment = &investment
		r.state.Cards = domain.CloneCards(d.Cards)
		return nil
	})
	if err != nil {
		return domain.WalletDetails{}, err
	}
	return d, nil
}

// Snapshot returns a deep copy of the cached state.
func (r *WalletRepository) Snapshot() domain.WalletState {
	var s domain.WalletState
	r.locked(func() { s = r.state.Clone() })
	return s
}

var _ domain.WalletRepository = (*WalletRepository)(nil)
