// Package session implements the opaque session token codec. Tokens are
// base64-encoded JSON user records: reversible obscuration, deliberately not
// a cryptographic integrity mechanism.
package session

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/noah-isme/joineazy-go-api/internal/models"
	"github.com/noah-isme/joineazy-go-api/internal/store"
)

// Encode turns a user record into an opaque session token.
func Encode(user models.User) (string, error) {
	payload, err := json.Marshal(user)
	if err != nil {
		return "", fmt.Errorf("failed to encode session payload: %w", err)
	}

	return base64.StdEncoding.EncodeToString(payload), nil
}

// Decode recovers the user record from a session token. Any malformed token
// is an error; callers at the session boundary treat that as "no session".
func Decode(token string) (models.User, error) {
	payload, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return models.User{}, fmt.Errorf("malformed session token: %w", err)
	}

	var user models.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return models.User{}, fmt.Errorf("malformed session payload: %w", err)
	}

	return user, nil
}

// Manager stores the current session token under a single key. At most one
// user is "current" at a time.
type Manager struct {
	store  store.Store
	logger zerolog.Logger
}

// NewManager builds a session manager over the given store.
func NewManager(s store.Store, logger zerolog.Logger) *Manager {
	return &Manager{
		store:  s,
		logger: logger.With().Str("component", "session").Logger(),
	}
}

// Create encodes the user and makes it the current session. The token is
// returned so callers can hand it to the client.
func (m *Manager) Create(ctx context.Context, user models.User) (string, error) {
	token, err := Encode(user)
	if err != nil {
		return "", err
	}

	if err := m.store.Set(ctx, store.KeySession, token); err != nil {
		return "", err
	}

	m.logger.Debug().Str("email", user.Email).Msg("session created")
	return token, nil
}

// Read returns the current session user. The second return is false when no
// session exists or the stored token is malformed; decoding failures never
// escape this boundary.
func (m *Manager) Read(ctx context.Context) (models.User, bool, error) {
	token, ok, err := m.store.Get(ctx, store.KeySession)
	if err != nil {
		return models.User{}, false, err
	}
	if !ok {
		return models.User{}, false, nil
	}

	user, err := Decode(token)
	if err != nil {
		m.logger.Warn().Err(err).Msg("discarding malformed session token")
		return models.User{}, false, nil
	}

	return user, true, nil
}

// Clear removes the current session.
func (m *Manager) Clear(ctx context.Context) error {
	return m.store.Remove(ctx, store.KeySession)
}
