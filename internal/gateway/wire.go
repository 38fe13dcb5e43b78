package gateway

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wire schemas exchanged with the server. Field names are snake_case JSON.

type UserDTO struct {
	ID        *int64     `json:"id,omitempty"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Document  string     `json:"document"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type RegisterUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Document string `json:"document"`
	Password string `json:"password"`
}

type RegisterUserResponse struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}

type CardDTO struct {
	ID             *int64     `json:"id,omitempty"`
	Number         string     `json:"number"`
	ExpirationDate string     `json:"expiration_date"`
	CVV            *string    `json:"cvv,omitempty"`
	FullName       string     `json:"full_name"`
	Type           string     `json:"type"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

type InvestmentResponse struct {
	Investment decimal.Decimal `json:"investment"`
}

type RechargeRequest struct {
	Amount decimal.Decimal `json:"amount"`
	CardID int64           `json:"card_id"`
}

// AmountRequest is the body of invest and divest.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type DailyValueDTO struct {
	Date  string          `json:"date"`
	Value decimal.Decimal `json:"value"`
}

type WalletDetailsResponse struct {
	Balance    decimal.Decimal `json:"balance"`
	Investment decimal.Decimal `json:"investment"`
	Cards      []CardDTO       `json:"cards"`
}

type PaymentRequestDTO struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	ReceiverID  *int64          `json:"receiver_id,omitempty"`
	LinkUUID    *uuid.UUID      `json:"link_uuid,omitempty"`
	CardID      *int64          `json:"card_id,omitempty"`
}

type PaymentDTO struct {
	ID           *int64          `json:"id,omitempty"`
	LinkUUID     *uuid.UUID      `json:"link_uuid,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	Status       string          `json:"status"`
	PayerName    string          `json:"payer_name"`
	ReceiverName string          `json:"receiver_name"`
	CreatedAt    *time.Time      `json:"created_at,omitempty"`
}

type PaymentLinkRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type PaymentLinkDTO struct {
	UUID        uuid.UUID       `json:"uuid"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	URL         string          `json:"url"`
}

// ErrorEnvelope is the body the server sends with non-2xx statuses.
type ErrorEnvelope struct {
	Message string `json:"message"`
}
