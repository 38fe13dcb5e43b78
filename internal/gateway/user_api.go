package gateway

import (
	"context"
	"net/http"
)

// UserAPI covers the user endpoints.
type UserAPI interface {
	Register(ctx context.Context, in RegisterUserRequest) (*Response[RegisterUserResponse], error)
}

// UserService is the HTTP implementation of UserAPI.
type UserService struct{ c *Client }

// NewUserService returns a UserService on the shared client.
func NewUserService(c *Client) *UserService { return &UserService{c: c} }

// Register creates an account: POST /user.
func (s *UserService) Register(ctx context.Context, in RegisterUserRequest) (*Response[RegisterUserResponse], error) {
	return send[RegisterUserResponse](ctx, s.c, http.MethodPost, "/user", in, false)
}

var _ UserAPI = (*UserService)(nil)
