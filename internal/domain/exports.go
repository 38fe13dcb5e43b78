package domain

import (
	interfaces "walletkit/internal/domain/interfaces"
	types "walletkit/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	User           = types.User
	RegisterInput  = types.RegisterInput
	Registration   = types.Registration
	UserState      = types.UserState
	Card           = types.Card
	CardType       = types.CardType
	WalletState    = types.WalletState
	WalletDetails  = types.WalletDetails
	DailyValue     = types.DailyValue
	PaymentInfo    = types.PaymentInfo
	PaymentStatus  = types.PaymentStatus
	PaymentRequest = types.PaymentRequest
	PaymentLink    = types.PaymentLink
	SessionClaims  = types.SessionClaims
	DomainError    = types.DomainError
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyValueStore     = interfaces.KeyValueStore
	TokenSource       = interfaces.TokenSource
	TokenStore        = interfaces.TokenStore
	UserDataSource    = interfaces.UserDataSource
	WalletDataSource  = interfaces.WalletDataSource
	PaymentDataSource = interfaces.PaymentDataSource
	UserRepository    = interfaces.UserRepository
	WalletRepository  = interfaces.WalletRepository
	PaymentRepository = interfaces.PaymentRepository
)

// Card types and payment states.
const (
	CardCredit = types.CardCredit
	CardDebit  = types.CardDebit

	PaymentPending   = types.PaymentPending
	PaymentCompleted = types.PaymentCompleted
	PaymentFailed    = types.PaymentFailed

	MessageNetworkError    = types.MessageNetworkError
	MessageMissingError    = types.MessageMissingError
	MessageUnexpectedError = types.MessageUnexpectedError
)

// Error constructors re-exported for callers that only import domain.
var (
	NewDomainError  = types.NewDomainError
	NetworkError    = types.NetworkError
	MissingError    = types.MissingError
	UnexpectedError = types.UnexpectedError
	InvalidInput    = types.InvalidInput
	AsDomainError   = types.AsDomainError
	CloneCards      = types.CloneCards
)
