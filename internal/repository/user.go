package repository

import (
	"context"

	"github.com/sirupsen/logrus"

	"walletkit/internal/domain"
)

// UserRepository remembers the registered user and keeps the session token in
// step with it.
type UserRepository struct {
	source  domain.UserDataSource
	session domain.TokenStore
	log     logrus.FieldLogger

	guard
	state domain.UserState
}

// NewUserRepository returns an empty UserRepository.
func NewUserRepository(source domain.UserDataSource, session domain.TokenStore, log logrus.FieldLogger) *UserRepository {
	return &UserRepository{source: source, session: session, log: log.WithField("repository", "user")}
}

// Register signs up and, on success, stores the issued token and caches the
// user. The returned user is the one the server just sent.
func (r *UserRepository) Register(ctx context.Context, in domain.RegisterInput) (domain.User, error) {
	reg, err := r.source.Register(ctx, in)
	if err != nil {
		return domain.User{}, err
	}

	// The token write is local, and keeping it inside the critical section
	// pairs the cached user with its own token. A registration without a
	// token ends any earlier session.
	err = r.commit(ctx, func() error {
		if reg.Token != "" {
			if err := r.session.SaveToken(reg.Token); err != nil {
				r.log.WithError(err).Error("persist session token")
				return domain.UnexpectedError(err)
			}
		} else if err := r.session.ClearToken(); err != nil {
			r.log.WithError(err).Error("clear previous session token")
			return domain.UnexpectedError(err)
		}
		u := reg.User.Clone()
		r.state.RegisteredUser = &u
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}
	return reg.User, nil
}

// CurrentUser returns a copy of the cached user.
func (r *UserRepository) CurrentUser() (domain.User, bool) {
	var (
		u  domain.User
		ok bool
	)
	r.locked(func() {
		if r.state.RegisteredUser != nil {
			u, ok = r.state.RegisteredUser.Clone(), true
		}
	})
	return u, ok
}

// Logout clears the session token and forgets the cached user.
func (r *UserRepository) Logout() error {
	return r.commit(context.Background(), func() error {
		if err := r.session.ClearToken(); err != nil {
			r.log.WithError(err).Error("clear session token")
			return domain.UnexpectedError(err)
		}
		r.state = domain.UserState{}
		return nil
	})
}

var _ domain.UserRepository = (*UserRepository)(nil)
