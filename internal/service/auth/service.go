package auth

import (
	"encoding/json"
	"errors"
	"io"
	"log"

	"zomio-storefront/internal/domain"
	"zomio-storefront/internal/storage"
)

// StateKey is the storage slot holding the serialized logged-in identity.
const StateKey = "zomioUser"

// ErrInvalidCredentials is returned when username/password do not match any
// configured back-office user.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service gates the back office behind a static credential list. Passwords
// are compared in plain text; there is deliberately no hashing, lockout or
// expiry in this system.
type Service struct {
	users  []domain.AdminUser
	kv     storage.KV
	logger *log.Logger
}

// New creates an auth Service over the given credential list.
func New(users []domain.AdminUser, kv storage.KV, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{users: users, kv: kv, logger: logger}
}

// Login matches the credentials against the static list. Success persists
// the identity to the session slot and returns it.
func (s *Service) Login(username, password string) (*domain.Identity, error) {
	for _, u := range s.users {
		if u.Username == username && u.Password == password {
			id := domain.Identity{Username: u.Username, Role: u.Role}
			data, err := json.Marshal(id)
			if err != nil {
				return nil, err
			}
			if err := s.kv.Set(StateKey, data); err != nil {
				return nil, err
			}
			s.logger.Printf("auth svc: login user=%s role=%s", id.Username, id.Role)
			return &id, nil
		}
	}
	s.logger.Printf("auth svc: login user=%s rejected", username)
	return nil, ErrInvalidCredentials
}

// Logout clears the persisted identity.
func (s *Service) Logout() error {
	return s.kv.Remove(StateKey)
}

// Current returns the persisted identity, or nil when nobody is logged in
// or the stored value is malformed.
func (s *Service) Current() *domain.Identity {
	data, ok := s.kv.Get(StateKey)
	if !ok {
		return nil
	}
	var id domain.Identity
	if err := json.Unmarshal(data, &id); err != nil {
		s.logger.Printf("auth svc: rehydrate error=%v", err)
		return nil
	}
	if id.Username == "" {
		return nil
	}
	return &id
}
