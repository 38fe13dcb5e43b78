// Package domain defines core data models and interfaces shared across walletkit.
// It contains plain types (wire-independent state) and contracts (interfaces) only.
package domain
