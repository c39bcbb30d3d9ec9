package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/xid"

	"glassblog/internal/config"
	"glassblog/internal/models"
	"glassblog/internal/storage"
)

// RedactedPassword is the fixed value persisted in place of a real password.
const RedactedPassword = "***"

type Service interface {
	Login(ctx context.Context, username, password string) (bool, error)
	Register(ctx context.Context, username, email, password string) (bool, error)
	Logout()
	CheckAuth()
	Current() models.Session
	IsAuthenticated() bool
	ValidateToken(tokenString string) (*jwt.Token, error)
}

type service struct {
	kv  storage.KV
	cfg *config.Config
	log *slog.Logger

	// mu serializes every session transition together with its storage
	// writes, so token and user never go out half-updated.
	mu      sync.Mutex
	session models.Session
}

func NewService(kv storage.KV, cfg *config.Config, log *slog.Logger) Service {
	return &service{
		kv:  kv,
		cfg: cfg,
		log: log,
	}
}

// Login succeeds for any non-empty username/password pair. This is a
// placeholder policy, not credential verification; the artificial delay
// stands in for the network round trip.
func (s *service) Login(ctx context.Context, username, password string) (bool, error) {
	if err := wait(ctx, s.cfg.LoginDelay); err != nil {
		return false, err
	}

	if username == "" || password == "" {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.mintToken(username)
	if err != nil {
		return false, fmt.Errorf("failed to mint session token: %w", err)
	}

	user := &models.User{Username: username}
	rawUser, err := json.Marshal(user)
	if err != nil {
		return false, fmt.Errorf("failed to encode user: %w", err)
	}

	if err := s.kv.Set(ctx, storage.KeyToken, token); err != nil {
		return false, fmt.Errorf("failed to persist token: %w", err)
	}
	if err := s.kv.Set(ctx, storage.KeyUser, string(rawUser)); err != nil {
		return false, fmt.Errorf("failed to persist user: %w", err)
	}

	s.session = models.Session{
		IsAuthenticated: true,
		User:            user,
		Token:           token,
	}

	return true, nil
}

// Register resolves false when a persisted user already carries the same
// username or email; the cleartext password is never written out.
func (s *service) Register(ctx context.Context, username, email, password string) (bool, error) {
	if err := wait(ctx, s.cfg.RegisterDelay); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.registeredUsers(ctx)
	if err != nil {
		return false, err
	}

	for _, u := range users {
		if u.Username == username || u.Email == email {
			return false, nil
		}
	}

	users = append(users, models.RegisteredUser{
		Username: username,
		Email:    email,
		Password: RedactedPassword,
	})

	raw, err := json.Marshal(users)
	if err != nil {
		return false, fmt.Errorf("failed to encode registered users: %w", err)
	}

	if err := s.kv.Set(ctx, storage.KeyRegisteredUsers, string(raw)); err != nil {
		return false, fmt.Errorf("failed to persist registered users: %w", err)
	}

	return true, nil
}

// Logout always succeeds; storage errors are logged and swallowed because
// the in-memory state is cleared regardless.
func (s *service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := context.Background()
	if err := s.kv.Delete(ctx, storage.KeyToken); err != nil {
		s.log.Warn("failed to remove persisted token", slog.String("error", err.Error()))
	}
	if err := s.kv.Delete(ctx, storage.KeyUser); err != nil {
		s.log.Warn("failed to remove persisted user", slog.String("error", err.Error()))
	}

	s.session = models.Session{}
}

// CheckAuth restores the session from persisted state. A malformed user blob
// leaves the token and IsAuthenticated as read with no user attached; the
// caller is treated as logged in without a profile.
func (s *service) CheckAuth() {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := context.Background()

	token, haveToken, err := s.kv.Get(ctx, storage.KeyToken)
	if err != nil {
		s.log.Warn("failed to read persisted token", slog.String("error", err.Error()))
		return
	}
	rawUser, haveUser, err := s.kv.Get(ctx, storage.KeyUser)
	if err != nil {
		s.log.Warn("failed to read persisted user", slog.String("error", err.Error()))
		return
	}

	if !haveToken || token == "" || !haveUser {
		return
	}

	s.session.IsAuthenticated = true
	s.session.Token = token

	var user models.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		s.log.Debug("persisted user blob is malformed", slog.String("error", err.Error()))
		s.session.User = nil
		return
	}
	s.session.User = &user
}

// Current returns a copy of the session state.
func (s *service) Current() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.session
	if s.session.User != nil {
		user := *s.session.User
		session.User = &user
	}
	return session
}

func (s *service) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.IsAuthenticated
}

func (s *service) mintToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"jti":      xid.New().String(),
		"exp":      time.Now().Add(s.cfg.TokenDuration).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

func (s *service) ValidateToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return token, nil
}

func (s *service) registeredUsers(ctx context.Context) ([]models.RegisteredUser, error) {
	raw, ok, err := s.kv.Get(ctx, storage.KeyRegisteredUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to read registered users: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var users []models.RegisteredUser
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("failed to decode registered users: %w", err)
	}

	return users, nil
}

func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
