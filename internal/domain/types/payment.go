package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus is the server-reported state of a payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// PaymentInfo describes one payment attempt or result. It is a value: nothing
// in the client mutates it after construction.
type PaymentInfo struct {
	ID           *int64
	LinkUUID     *uuid.UUID
	Amount       decimal.Decimal
	Description  string
	Status       PaymentStatus
	PayerName    string
	ReceiverName string
	CreatedAt    *time.Time
}

// PaymentRequest is what the caller supplies to make a payment. Exactly one
// of ReceiverID or LinkUUID identifies the payee.
type PaymentRequest struct {
	Amount      decimal.Decimal
	Description string
	ReceiverID  *int64
	LinkUUID    *uuid.UUID
	CardID      *int64
}

// PaymentLink is a shareable request for money.
type PaymentLink struct {
	UUID        uuid.UUID
	Amount      decimal.Decimal
	Description string
	URL         string
}
