package session

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"zoo-dashboard/internal/ports/auth"
)

// Claves fijas en el Storage.
const (
	TokenKey = "zoo_auth_token"
	UserKey  = "zoo_user"
)

// DefaultLoginDelay simula la latencia de un backend de credenciales.
const DefaultLoginDelay = time.Second

var ErrInvalidInput = errors.New("invalid input")

type User struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type LoginInput struct {
	Email      string
	Password   string
	RememberMe bool
}

// State es la vista pública de la sesión.
type State struct {
	Authenticated bool
	User          *User
	Token         string
}

// Service mantiene una única sesión de dashboard. No valida credenciales.
type Service struct {
	store Storage
	delay time.Duration
	now   func() time.Time

	mu    sync.RWMutex
	user  *User
	token string
}

func NewService(store Storage, delay time.Duration) *Service {
	if store == nil {
		store = NewMemoryStorage()
	}
	if delay < 0 {
		delay = 0
	}
	return &Service{
		store: store,
		delay: delay,
		now:   time.Now,
	}
}

// Login espera el delay (cancelable), emite un token y siempre lo persiste.
// El usuario solo se persiste con RememberMe.
func (s *Service) Login(ctx context.Context, in LoginInput) (State, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return State{}, fmt.Errorf("email required: %w", ErrInvalidInput)
	}

	if err := sleep(ctx, s.delay); err != nil {
		return State{}, err
	}

	u := &User{Email: email}
	token := fmt.Sprintf("demo-token-%d", s.now().UnixMilli())

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Set(TokenKey, token); err != nil {
		return State{}, err
	}
	if in.RememberMe {
		raw, err := json.Marshal(u)
		if err != nil {
			return State{}, err
		}
		if err := s.store.Set(UserKey, string(raw)); err != nil {
			return State{}, err
		}
	} else if err := s.store.Remove(UserKey); err != nil {
		return State{}, err
	}

	s.user, s.token = u, token
	return s.stateLocked(), nil
}

// Restore recupera la sesión persistida. Requiere ambas claves y un usuario
// parseable; si el usuario está corrupto se borran ambas claves.
func (s *Service) Restore(ctx context.Context) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, okToken, err := s.store.Get(TokenKey)
	if err != nil {
		return State{}, err
	}
	raw, okUser, err := s.store.Get(UserKey)
	if err != nil {
		return State{}, err
	}

	if !okToken || !okUser || token == "" {
		s.user, s.token = nil, ""
		return s.stateLocked(), nil
	}

	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil || strings.TrimSpace(u.Email) == "" {
		s.user, s.token = nil, ""
		if err := s.clearLocked(); err != nil {
			return State{}, err
		}
		return s.stateLocked(), nil
	}

	s.user, s.token = &u, token
	return s.stateLocked(), nil
}

func (s *Service) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user, s.token = nil, ""
	return s.clearLocked()
}

func (s *Service) Current() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

// Verify implementa auth.AuthVerifier: solo el token activo es válido.
func (s *Service) Verify(ctx context.Context, token string) (auth.Claims, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" || s.user == nil {
		return auth.Claims{}, auth.ErrUnauthenticated
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.token)) != 1 {
		return auth.Claims{}, auth.ErrUnauthenticated
	}
	return auth.Claims{
		UserID: s.user.Email,
		Email:  s.user.Email,
		Name:   s.user.Name,
	}, nil
}

func (s *Service) clearLocked() error {
	if err := s.store.Remove(UserKey); err != nil {
		return err
	}
	return s.store.Remove(TokenKey)
}

func (s *Service) stateLocked() State {
	if s.user == nil || s.token == "" {
		return State{}
	}
	u := *s.user
	return State{Authenticated: true, User: &u, Token: s.token}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
