package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// VoiceTurnRequest is one turn of the conversational order flow. Exactly
// one of AudioData (base64) or Text is set. SessionID is empty on the
// first turn; the server issues one and it must be carried afterwards.
type VoiceTurnRequest struct {
	SessionID string `json:"sessionId,omitempty"`
	AudioData string `json:"audioData,omitempty"`
	Text      string `json:"text,omitempty"`
}

type VoiceTurnResponse struct {
	SessionID    string             `json:"sessionId"`
	Reply        string             `json:"reply"`
	OrderSummary *VoiceOrderSummary `json:"orderSummary,omitempty"`
	Actions      []string           `json:"actions,omitempty"`
}

type VoiceOrderSummary struct {
	DinnerType   string         `json:"dinnerType"`
	ServingStyle string         `json:"servingStyle"`
	Quantity     int            `json:"quantity"`
	Components   map[string]int `json:"components,omitempty"`
	TotalPrice   int            `json:"totalPrice"`
}

func (c *Client) VoiceOrder(ctx context.Context, token string, userID int64, req VoiceTurnRequest) (*VoiceTurnResponse, error) {
	query := url.Values{"userId": []string{strconv.FormatInt(userID, 10)}}
	var resp VoiceTurnResponse
	if err := c.do(ctx, http.MethodPost, "/api/voice/order", token, query, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) EndVoiceSession(ctx context.Context, token, sessionID string) error {
	return c.do(ctx, http.MethodDelete, "/api/voice/session/"+sessionID, token, nil, nil, nil)
}
