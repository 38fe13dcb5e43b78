// Package gateway is walletkit's HTTP layer.
//
// A Factory builds exactly one *Client per process, shared by the typed
// service interfaces (UserAPI, WalletAPI, PaymentAPI). Every request goes
// through a fixed transport chain:
//
//   - AuthTransport attaches "Authorization: Bearer <token>" when a session
//     token exists.
//   - LoggingTransport logs each exchange with logrus and records Prometheus
//     metrics.
//   - RateLimitTransport optionally paces outgoing requests.
//
// Service methods return a Response envelope for every HTTP status. The error
// return is reserved for exchanges that produced no usable response:
// *TransportError when nothing came back, *DecodeError when a success body
// could not be decoded. Classification into domain errors happens in the
// remote package.
package gateway
