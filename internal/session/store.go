package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/upstream"
)

// Fallback lifetime when the upstream token carries no readable expiry.
const defaultTTL = 24 * time.Hour

// Session pairs a browser-facing session id with the upstream bearer
// token and the profile returned at login.
type Session struct {
	ID        string    `json:"sessionId"`
	Token     string    `json:"-"`
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Store holds live sessions in memory. The upstream backend owns the
// credential; this cache just avoids re-authenticating every request.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create registers a session for a fresh upstream auth response.
func (s *Store) Create(auth *upstream.AuthResponse) *Session {
	sess := &Session{
		ID:        uuid.NewString(),
		Token:     auth.Token,
		UserID:    auth.UserID,
		Username:  auth.Username,
		Name:      auth.Name,
		Email:     auth.Email,
		Phone:     auth.Phone,
		Address:   auth.Address,
		Role:      auth.Role,
		ExpiresAt: tokenExpiry(auth.Token),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

// Get resolves a session id, dropping it when the upstream token has
// already expired.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(sess.ExpiresAt) {
		s.Delete(id)
		return nil, false
	}
	return sess, true
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// tokenExpiry reads exp from the upstream JWT without verifying it; the
// upstream holds the signing secret and verifies on every real call.
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}
	return time.Now().Add(defaultTTL)
}
