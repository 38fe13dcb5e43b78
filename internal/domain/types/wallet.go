package types

import "github.com/shopspring/decimal"

// WalletState is the wallet repository's cache. Nil fields have not been
// fetched yet.
type WalletState struct {
	Balance     *decimal.Decimal
	Investment  *decimal.Decimal
	Cards       []Card
	CurrentCard *Card
}

// Clone returns a snapshot that shares no memory with s.
func (s WalletState) Clone() WalletState {
	out := WalletState{Cards: CloneCards(s.Cards)}
	if s.Balance != nil {
		b := *s.Balance
		out.Balance = &b
	}
	if s.Investment != nil {
		inv := *s.Investment
		out.Investment = &inv
	}
	if s.CurrentCard != nil {
		c := s.CurrentCard.Clone()
		out.CurrentCard = &c
	}
	return out
}

// WalletDetails is the combined wallet summary.
type WalletDetails struct {
	Balance    decimal.Decimal
	Investment decimal.Decimal
	Cards      []Card
}

// DailyValue is one point of a daily returns or interest series.
type DailyValue struct {
	Date  string          `json:"date"`
	Value decimal.Decimal `json:"value"`
}
