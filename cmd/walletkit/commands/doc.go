// Package commands defines the walletkit CLI and wires dependencies for subcommands.
//
// Commands
//
//   - register, logout, whoami       Manage the session
//   - balance, recharge              Read or top up the wallet balance
//   - investment, invest, divest     Move funds in and out of the investment
//   - returns, interest, details     Daily series and the combined summary
//   - cards list|add|delete          Manage payment cards
//   - pay, payments                  Send a payment, list payment history
//   - payment get, payment link      Look up payments, create or show links
//
// # Implementation
//
// The root command loads configuration from the environment (and an optional
// .env file), applies flag overrides, and builds the app wiring before any
// subcommand runs. Every subcommand talks to the server through the
// repositories only.
package commands
