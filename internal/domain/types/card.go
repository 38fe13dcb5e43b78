package types

import (
	"strings"
	"time"
)

// CardType distinguishes credit from debit cards.
type CardType string

const (
	CardCredit CardType = "credit"
	CardDebit  CardType = "debit"
)

// Valid reports whether t is a known card type.
func (t CardType) Valid() bool { return t == CardCredit || t == CardDebit }

// Card is a payment card attached to the wallet. ID is nil until the server
// has accepted the card.
type Card struct {
	ID             *int64     `json:"id,omitempty"`
	Number         string     `json:"number"`
	ExpirationDate string     `json:"expiration_date"`
	CVV            *string    `json:"cvv,omitempty"`
	FullName       string     `json:"full_name"`
	Type           CardType   `json:"type"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// Masked renders the number with everything but the last four digits hidden.
func (c Card) Masked() string {
	digits := strings.ReplaceAll(c.Number, " ", "")
	if len(digits) <= 4 {
		return digits
	}
	return "**** **** **** " + digits[len(digits)-4:]
}

// SameAs reports whether both cards carry the same server-assigned ID.
func (c Card) SameAs(other Card) bool {
	return c.ID != nil && other.ID != nil && *c.ID == *other.ID
}

// Clone returns a deep copy of c.
func (c Card) Clone() Card {
	out := c
	if c.ID != nil {
		id := *c.ID
		out.ID = &id
	}
	if c.CVV != nil {
		cvv := *c.CVV
		out.CVV = &cvv
	}
	if c.CreatedAt != nil {
		at := *c.CreatedAt
		out.CreatedAt = &at
	}
	if c.UpdatedAt != nil {
		at := *c.UpdatedAt
		out.UpdatedAt = &at
	}
	return out
}

// CloneCards deep-copies a card list, preserving nil.
func CloneCards(cards []Card) []Card {
	if cards == nil {
		return nil
	}
	out := make([]Card, len(cards))
	for i, c := range cards {
		out[i] = c.Clone()
	}
	return out
}
