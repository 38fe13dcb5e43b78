package remote

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"walletkit/internal/domain"
	"walletkit/internal/gateway"
)

// UserSource is the remote data source for user operations.
type UserSource struct {
	api    gateway.UserAPI
	tokens domain.TokenSource
	log    logrus.FieldLogger
}

// NewUserSource returns a UserSource over api.
func NewUserSource(api gateway.UserAPI, tokens domain.TokenSource, log logrus.FieldLogger) *UserSource {
	return &UserSource{api: api, tokens: tokens, log: log.WithField("source", "user")}
}

// Register signs a new user up and returns the stored user with its token.
func (s *UserSource) Register(ctx context.Context, in domain.RegisterInput) (domain.Registration, error) {
	if strings.TrimSpace(in.Email) == "" {
		return domain.Registration{}, domain.InvalidInput("email is required")
	}
	if in.Password == "" {
		return domain.Registration{}, domain.InvalidInput("password is required")
	}

	body, err := Call(ctx, s.log, func(ctx context.Context) (*gateway.Response[gateway.RegisterUserResponse], error) {
		return s.api.Register(ctx, gateway.RegisterUserRequest{
			Name:     in.Name,
			Email:    strings.TrimSpace(in.Email),
			Phone:    in.Phone,
			Document: in.Document,
			Password: in.Password,
		})
	})
	if err != nil {
		return domain.Registration{}, err
	}
	return domain.Registration{User: userFromWire(body.User), Token: body.Token}, nil
}

var _ domain.UserDataSource = (*UserSource)(nil)
