// Package remote turns gateway responses into domain values.
//
// Call is the single place where failures are classified: every error that
// leaves this package is a *domain.DomainError. The User, Wallet and Payment
// sources translate between domain types and wire schemas, one round trip
// per method, and never cache.
package remote
