package devserver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"walletkit/internal/gateway"
)

// Daily rates applied to the current totals when synthesising series.
var (
	dailyReturnRate   = decimal.RequireFromString("0.0004")
	dailyInterestRate = decimal.RequireFromString("0.0001")
)

const seriesDays = 7

func (s *Server) balance(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	b := s.accounts[userID(r)].balance
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, gateway.BalanceResponse{Balance: b})
}

func (s *Server) recharge(w http.ResponseWriter, r *http.Request) {
	var in gateway.RechargeRequest
	if !decode(w, r, &in) {
		return
	}
	if !in.Amount.IsPositive() {
		writeError(w, http.StatusUnprocessableEntity, "amount must be positive")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acct := s.accounts[userID(r)]
	if acct.card(in.CardID) < 0 {
		writeError(w, http.StatusNotFound, "card not found")
		return
	}
	acct.balance = acct.balance.Add(in.Amount)
	writeJSON(w, http.StatusOK, gateway.BalanceResponse{Balance: acct.balance})
}

func (s *Server) investment(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	inv := s.accounts[userID(r)].investment
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, gateway.InvestmentResponse{Investment: inv})
}

func (s *Server) invest(w http.ResponseWriter, r *http.Request) {
	s.move(w, r, func(a *account, amount decimal.Decimal) bool {
		if a.balance.LessThan(amount) {
			return false
		}
		a.balance = a.balance.Sub(amount)
		a.investment = a.investment.Add(amount)
		return true
	})
}

func (s *Server) divest(w http.ResponseWriter, r *http.Request) {
	s.move(w, r, func(a *account, amount decimal.Decimal) bool {
		if a.investment.LessThan(amount) {
			return false
		}
		a.investment = a.investment.Sub(amount)
		a.balance = a.balance.Add(amount)
		return true
	})
}

// move shifts funds between balance and investment. apply reports false when
// the source side cannot cover the amount.
func (s *Server) move(w http.ResponseWriter, r *http.Request, apply func(*account, decimal.Decimal) bool) {
	var in gateway.AmountRequest
	if !decode(w, r, &in) {
		return
	}
	if !in.Amount.IsPositive() {
		writeError(w, http.StatusUnprocessableEntity, "amount must be positive")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acct := s.accounts[userID(r)]
	if !apply(acct, in.Amount) {
		writeError(w, http.StatusUnprocessableEntity, "insufficient funds")
		return
	}
	writeJSON(w, http.StatusOK, gateway.InvestmentResponse{Investment: acct.investment})
}

func (s *Server) listCards(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	cards := publicCards(s.accounts[userID(r)].cards)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, cards)
}

func (s *Server) addCard(w http.ResponseWriter, r *http.Request) {
	var in gateway.CardDTO
	if !decode(w, r, &in) {
		return
	}
	number := strings.ReplaceAll(in.Number, " ", "")
	if !validCardNumber(number) {
		writeError(w, http.StatusUnprocessableEntity, "invalid card number")
		return
	}
	if in.Type != "credit" && in.Type != "debit" {
		writeError(w, http.StatusUnprocessableEntity, "card type must be credit or debit")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acct := s.accounts[userID(r)]
	for _, c := range acct.cards {
		if c.Number == number {
			writeError(w, http.StatusConflict, "card already added")
			return
		}
	}
	s.nextCard++
	id := s.nextCard
	now := s.now().UTC()
	card := gateway.CardDTO{
		ID:             &id,
		Number:         number,
		ExpirationDate: in.ExpirationDate,
		CVV:            in.CVV,
		FullName:       in.FullName,
		Type:           in.Type,
		CreatedAt:      &now,
		UpdatedAt:      &now,
	}
	acct.cards = append(acct.cards, card)
	writeJSON(w, http.StatusCreated, publicCard(card))
}

func (s *Server) deleteCard(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid card id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acct := s.accounts[userID(r)]
	i := acct.card(id)
	if i < 0 {
		writeError(w, http.StatusNotFound, "card not found")
		return
	}
	acct.cards = append(acct.cards[:i:i], acct.cards[i+1:]...)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) dailyReturns(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	base := s.accounts[userID(r)].investment
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.series(base, dailyReturnRate))
}

func (s *Server) dailyInterest(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	base := s.accounts[userID(r)].balance
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.series(base, dailyInterestRate))
}

// series returns one point per day for the last seriesDays days, oldest first.
func (s *Server) series(base, rate decimal.Decimal) []gateway.DailyValueDTO {
	today := s.now().UTC()
	value := base.Mul(rate).Round(2)
	out := make([]gateway.DailyValueDTO, 0, seriesDays)
	for i := seriesDays - 1; i >= 0; i-- {
		out = append(out, gateway.DailyValueDTO{
			Date:  today.AddDate(0, 0, -i).Format("2006-01-02"),
			Value: value,
		})
	}
	return out
}

func (s *Server) details(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	acct := s.accounts[userID(r)]
	resp := gateway.WalletDetailsResponse{
		Balance:    acct.balance,
		Investment: acct.investment,
		Cards:      publicCards(acct.cards),
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

// card returns the index of the card with id, or -1.
func (a *account) card(id int64) int {
	for i, c := range a.cards {
		if c.ID != nil && *c.ID == id {
			return i
		}
	}
	return -1
}

// publicCard strips the CVV before a card leaves the server.
func publicCard(c gateway.CardDTO) gateway.CardDTO {
	c.CVV = nil
	return c
}

func publicCards(cards []gateway.CardDTO) []gateway.CardDTO {
	out := make([]gateway.CardDTO, len(cards))
	for i, c := range cards {
		out[i] = publicCard(c)
	}
	return out
}

func validCardNumber(n string) bool {
	if len(n) < 12 || len(n) > 19 {
		return false
	}
	for _, r := range n {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
