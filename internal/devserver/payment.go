package devserver

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"walletkit/internal/gateway"
)

func (s *Server) makePayment(w http.ResponseWriter, r *http.Request) {
	var in gateway.PaymentRequestDTO
	if !decode(w, r, &in) {
		return
	}
	if !in.Amount.IsPositive() {
		writeError(w, http.StatusUnprocessableEntity, "amount must be positive")
		return
	}
	if (in.ReceiverID == nil) == (in.LinkUUID == nil) {
		writeError(w, http.StatusUnprocessableEntity, "exactly one of receiver_id or link_uuid is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	payerID := userID(r)
	payer := s.accounts[payerID]

	var (
		receiverID int64
		link       *paymentLink
	)
	if in.LinkUUID != nil {
		link = s.links[*in.LinkUUID]
		if link == nil {
			writeError(w, http.StatusNotFound, "payment link not found")
			return
		}
		if link.paid != nil {
			writeError(w, http.StatusConflict, "payment link already used")
			return
		}
		if !link.amount.Equal(in.Amount) {
			writeError(w, http.StatusUnprocessableEntity, "amount does not match payment link")
			return
		}
		receiverID = link.owner
	} else {
		receiverID = *in.ReceiverID
	}
	receiver := s.accounts[receiverID]
	if receiver == nil {
		writeError(w, http.StatusNotFound, "receiver not found")
		return
	}
	if receiverID == payerID {
		writeError(w, http.StatusUnprocessableEntity, "cannot pay yourself")
		return
	}

	// Card payments are charged to the card; otherwise the balance pays.
	if in.CardID != nil {
		if payer.card(*in.CardID) < 0 {
			writeError(w, http.StatusNotFound, "card not found")
			return
		}
	} else {
		if payer.balance.LessThan(in.Amount) {
			writeError(w, http.StatusUnprocessableEntity, "insufficient funds")
			return
		}
		payer.balance = payer.balance.Sub(in.Amount)
	}
	receiver.balance = receiver.balance.Add(in.Amount)

	s.nextPayment++
	id := s.nextPayment
	now := s.now().UTC()
	p := &payment{
		dto: gateway.PaymentDTO{
			ID:           &id,
			LinkUUID:     in.LinkUUID,
			Amount:       in.Amount,
			Description:  in.Description,
			Status:       "completed",
			PayerName:    payer.user.Name,
			ReceiverName: receiver.user.Name,
			CreatedAt:    &now,
		},
		payer:    payerID,
		receiver: receiverID,
	}
	if link != nil {
		link.paid = p
		if p.dto.Description == "" {
			p.dto.Description = link.description
		}
	}
	s.payments = append(s.payments, p)
	writeJSON(w, http.StatusCreated, p.dto)
}

func (s *Server) listPayments(w http.ResponseWriter, r *http.Request) {
	id := userID(r)
	s.mu.Lock()
	out := make([]gateway.PaymentDTO, 0, len(s.payments))
	for _, p := range s.payments {
		if p.payer == id || p.receiver == id {
			out = append(out, p.dto)
		}
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getPayment(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid payment id")
		return
	}
	id := userID(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.payments {
		if *p.dto.ID == pid && (p.payer == id || p.receiver == id) {
			writeJSON(w, http.StatusOK, p.dto)
			return
		}
	}
	writeError(w, http.StatusNotFound, "payment not found")
}

// getPaymentByLink returns the payment made through a link, or a pending
// payment describing the link while it is unpaid.
func (s *Server) getPaymentByLink(w http.ResponseWriter, r *http.Request) {
	id, ok := linkID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	link := s.links[id]
	if link == nil {
		writeError(w, http.StatusNotFound, "payment link not found")
		return
	}
	if link.paid != nil {
		writeJSON(w, http.StatusOK, link.paid.dto)
		return
	}
	created := link.createdAt
	writeJSON(w, http.StatusOK, gateway.PaymentDTO{
		LinkUUID:     &id,
		Amount:       link.amount,
		Description:  link.description,
		Status:       "pending",
		ReceiverName: s.accounts[link.owner].user.Name,
		CreatedAt:    &created,
	})
}

func (s *Server) createLink(w http.ResponseWriter, r *http.Request) {
	id, ok := linkID(w, r)
	if !ok {
		return
	}
	var in gateway.PaymentLinkRequest
	if !decode(w, r, &in) {
		return
	}
	if !in.Amount.IsPositive() {
		writeError(w, http.StatusUnprocessableEntity, "amount must be positive")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.links[id]; exists {
		writeError(w, http.StatusConflict, "payment link already exists")
		return
	}
	s.links[id] = &paymentLink{
		owner:       userID(r),
		amount:      in.Amount,
		description: in.Description,
		createdAt:   s.now().UTC(),
	}
	writeJSON(w, http.StatusCreated, gateway.PaymentLinkDTO{
		UUID:        id,
		Amount:      in.Amount,
		Description: in.Description,
		URL:         linkURL(r, id),
	})
}

func linkID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["uuid"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid payment link id")
		return uuid.Nil, false
	}
	return id, true
}

func linkURL(r *http.Request, id uuid.UUID) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + "/payment/link/" + id.String()
}
