package voice

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/upstream"
)

// The browser caps recording at 5 seconds; this is the matching server
// guard on the base64 payload, with headroom for encoding overhead.
const maxAudioBytes = 1 << 20

const turnTimeout = 30 * time.Second

var (
	ErrEmptyTurn     = errors.New("a turn needs either audio or text")
	ErrAudioTooLong  = errors.New("audio payload exceeds the recording limit")
	ErrTurnInFlight  = errors.New("previous turn for this session is still processing")
	ErrRateLimited   = errors.New("too many voice requests, slow down")
	ErrUnknownSession = errors.New("unknown voice session")
)

// API is the slice of the upstream client the voice flow uses.
type API interface {
	VoiceOrder(ctx context.Context, token string, userID int64, req upstream.VoiceTurnRequest) (*upstream.VoiceTurnResponse, error)
	EndVoiceSession(ctx context.Context, token, sessionID string) error
}

// Service drives the strictly sequential conversational order exchange:
// one outstanding request per session, correlated by the server-issued
// session id, released explicitly when the screen exits or resets.
type Service struct {
	api API

	mu       sync.Mutex
	inFlight map[string]bool
	owners   map[string]int64
	limiters map[int64]*rate.Limiter
}

func NewService(api API) *Service {
	return &Service{
		api:      api,
		inFlight: make(map[string]bool),
		owners:   make(map[string]int64),
		limiters: make(map[int64]*rate.Limiter),
	}
}

type TurnInput struct {
	SessionID string `json:"sessionId"`
	AudioData string `json:"audioData"`
	Text      string `json:"text"`
}

// Turn submits one exchange. The first turn carries no session id; the
// server issues one and every later turn must carry it.
func (s *Service) Turn(ctx context.Context, token string, userID int64, input TurnInput) (*upstream.VoiceTurnResponse, error) {
	if input.AudioData == "" && input.Text == "" {
		return nil, ErrEmptyTurn
	}
	if len(input.AudioData) > maxAudioBytes {
		return nil, ErrAudioTooLong
	}

	if !s.limiter(userID).Allow() {
		return nil, ErrRateLimited
	}

	if input.SessionID != "" {
		if err := s.acquire(input.SessionID, userID); err != nil {
			return nil, err
		}
		defer s.release(input.SessionID)
	}

	ctx, cancel := context.WithTimeout(ctx, turnTimeout)
	defer cancel()

	resp, err := s.api.VoiceOrder(ctx, token, userID, upstream.VoiceTurnRequest{
		SessionID: input.SessionID,
		AudioData: input.AudioData,
		Text:      input.Text,
	})
	if err != nil {
		return nil, err
	}

	if resp.SessionID != "" {
		s.mu.Lock()
		s.owners[resp.SessionID] = userID
		s.mu.Unlock()
	}

	return resp, nil
}

// End releases a session. Only the session's owner may end it, the same
// ownership rule Turn enforces. Upstream cleanup is best-effort: a
// failure is logged and ignored, it is not required for correctness.
func (s *Service) End(ctx context.Context, token string, userID int64, sessionID string) error {
	s.mu.Lock()
	if owner, ok := s.owners[sessionID]; ok && owner != userID {
		s.mu.Unlock()
		return ErrUnknownSession
	}
	delete(s.inFlight, sessionID)
	delete(s.owners, sessionID)
	s.mu.Unlock()

	if err := s.api.EndVoiceSession(ctx, token, sessionID); err != nil {
		log.Printf("voice session %s cleanup failed: %v", sessionID, err)
	}
	return nil
}

func (s *Service) acquire(sessionID string, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if owner, ok := s.owners[sessionID]; !ok || owner != userID {
		return ErrUnknownSession
	}
	if s.inFlight[sessionID] {
		return ErrTurnInFlight
	}
	s.inFlight[sessionID] = true
	return nil
}

func (s *Service) release(sessionID string) {
	s.mu.Lock()
	delete(s.inFlight, sessionID)
	s.mu.Unlock()
}

func (s *Service) limiter(userID int64) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, ok := s.limiters[userID]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(time.Second), 3)
		s.limiters[userID] = limiter
	}
	return limiter
}
