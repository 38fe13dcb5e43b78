package remote

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"walletkit/internal/domain"
	"walletkit/internal/gateway"
)

// Call executes one service call and unwraps its response.
//
//  1. A 2xx response with a body yields the body.
//  2. Otherwise an error body of the form {"message": "..."} yields
//     DomainError{status, message}.
//  3. Otherwise DomainError{status, "Missing error"}.
//  4. No response at all yields DomainError{0, "Network error"}.
//  5. Anything else, panics included, is logged and yields
//     DomainError{0, "unexpected error"}.
func Call[T any](
	ctx context.Context,
	log logrus.FieldLogger,
	call func(context.Context) (*gateway.Response[T], error),
) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			out, err = zero, unexpected(log, fmt.Errorf("panic: %v", r))
		}
	}()

	var zero T
	if ctxErr := ctx.Err(); ctxErr != nil {
		return zero, domain.NetworkError(ctxErr)
	}

	resp, callErr := call(ctx)
	if callErr != nil {
		return zero, classify(log, callErr)
	}
	if resp == nil {
		return zero, unexpected(log, errors.New("nil response"))
	}
	if resp.Success() && resp.Body != nil {
		return *resp.Body, nil
	}
	if msg, ok := errorMessage(resp.ErrorBody); ok {
		return zero, domain.NewDomainError(resp.StatusCode, msg)
	}
	return zero, domain.MissingError(resp.StatusCode)
}

// CallNoBody is Call for endpoints whose body the caller ignores.
func CallNoBody[T any](
	ctx context.Context,
	log logrus.FieldLogger,
	call func(context.Context) (*gateway.Response[T], error),
) error {
	_, err := Call(ctx, log, call)
	return err
}

func classify(log logrus.FieldLogger, err error) *domain.DomainError {
	var te *gateway.TransportError
	if errors.As(err, &te) {
		return domain.NetworkError(err)
	}
	if de, ok := domain.AsDomainError(err); ok {
		return de
	}
	return unexpected(log, err)
}

func unexpected(log logrus.FieldLogger, cause error) *domain.DomainError {
	log.WithError(cause).Error("unexpected failure during remote call")
	return domain.UnexpectedError(cause)
}

// errorMessage extracts the server's {"message": string} envelope.
func errorMessage(body []byte) (string, bool) {
	if len(body) == 0 || !gjson.ValidBytes(body) {
		return "", false
	}
	m := gjson.GetBytes(body, "message")
	if m.Type != gjson.String {
		return "", false
	}
	return m.String(), true
}
