// Package devserver is an in-memory wallet backend for local development and
// end-to-end tests.
//
// It serves the same JSON endpoints the gateway package calls, issues HS256
// session tokens on registration and requires a valid bearer token on every
// /wallet and /payment route. State lives in process memory only.
package devserver
