// Package main runs the in-memory wallet backend used by walletkit during
// development and tests.
//
// HTTP API
//
//	POST /user
//	    Register a user. Returns {"user": {...}, "token": "..."}.
//
//	GET  /wallet/balance | /wallet/investment | /wallet/details
//	GET  /wallet/daily-returns | /wallet/daily-interest
//	POST /wallet/recharge {"amount", "card_id"}
//	POST /wallet/invest | /wallet/divest {"amount"}
//	GET  /wallet/cards, POST /wallet/cards, DELETE /wallet/cards/{id}
//
//	POST /payment, GET /payment, GET /payment/{id}
//	GET  /payment/link/{uuid}, POST /payment/link/{uuid}
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - Every /wallet and /payment route requires "Authorization: Bearer <token>"
//     with a token issued by POST /user; otherwise 401 {"message":"unauthorized"}.
//   - Non-2xx responses carry {"message": "..."}.
//   - The listen address defaults to 127.0.0.1:8080 (--addr or WALLETD_ADDR).
//     Without --secret or WALLETD_SECRET a random signing key is generated.
package main
