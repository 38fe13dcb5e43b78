package remote

import (
	"walletkit/internal/domain"
	"walletkit/internal/gateway"
)

func userFromWire(u gateway.UserDTO) domain.User {
	return domain.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Document:  u.Document,
		CreatedAt: u.CreatedAt,
	}
}

func cardFromWire(c gateway.CardDTO) domain.Card {
	return domain.Card{
		ID:             c.ID,
		Number:         c.Number,
		ExpirationDate: c.ExpirationDate,
		CVV:            c.CVV,
		FullName:       c.FullName,
		Type:           domain.CardType(c.Type),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func cardToWire(c domain.Card) gateway.CardDTO {
	return gateway.CardDTO{
		ID:             c.ID,
		Number:         c.Number,
		ExpirationDate: c.ExpirationDate,
		CVV:            c.CVV,
		FullName:       c.FullName,
		Type:           string(c.Type),
	}
}

func cardsFromWire(in []gateway.CardDTO) []domain.Card {
	out := make([]domain.Card, 0, len(in))
	for _, c := range in {
		out = append(out, cardFromWire(c))
	}
	return out
}

func dailyFromWire(in []gateway.DailyValueDTO) []domain.DailyValue {
	out := make([]domain.DailyValue, 0, len(in))
	for _, v := range in {
		out = append(out, domain.DailyValue{Date: v.Date, Value: v.Value})
	}
	return out
}

func paymentFromWire(p gateway.PaymentDTO) domain.PaymentInfo {
	return domain.PaymentInfo{
		ID:           p.ID,
		LinkUUID:     p.LinkUUID,
		Amount:       p.Amount,
		Description:  p.Description,
		Status:       domain.PaymentStatus(p.Status),
		PayerName:    p.PayerName,
		ReceiverName: p.ReceiverName,
		CreatedAt:    p.CreatedAt,
	}
}

func paymentsFromWire(in []gateway.PaymentDTO) []domain.PaymentInfo {
	out := make([]domain.PaymentInfo, 0, len(in))
	for _, p := range in {
		out = append(out, paymentFromWire(p))
	}
	return out
}
