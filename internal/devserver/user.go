package devserver

import (
	"net/http"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"walletkit/internal/gateway"
)

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var in gateway.RegisterUserRequest
	if !decode(w, r, &in) {
		return
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid email")
		return
	}
	if len(in.Password) < 6 {
		writeError(w, http.StatusUnprocessableEntity, "password must be at least 6 characters")
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		s.log.WithError(err).Error("hash password")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.mu.Lock()
	if _, taken := s.emails[email]; taken {
		s.mu.Unlock()
		writeError(w, http.StatusConflict, "email already registered")
		return
	}
	s.nextUser++
	id := s.nextUser
	created := s.now().UTC()
	acct := &account{
		user: gateway.UserDTO{
			ID:        &id,
			Name:      strings.TrimSpace(in.Name),
			Email:     email,
			Phone:     in.Phone,
			Document:  in.Document,
			CreatedAt: &created,
		},
		password: hash,
	}
	s.accounts[id] = acct
	s.emails[email] = id
	user := acct.user
	s.mu.Unlock()

	token, err := s.issueToken(id)
	if err != nil {
		s.log.WithError(err).Error("issue token")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	s.log.WithField("user_id", id).Info("user registered")
	writeJSON(w, http.StatusCreated, gateway.RegisterUserResponse{User: user, Token: token})
}
