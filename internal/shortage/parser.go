package shortage

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/menu"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/upstream"
)

// Info is the structured shortage signal extracted from a backend
// rejection. It is ephemeral UI state, never persisted.
type Info struct {
	Code        string `json:"code"`
	DisplayName string `json:"displayName"`
	Label       string `json:"label"`
	Available   *int   `json:"available,omitempty"`
	Required    *int   `json:"required,omitempty"`
}

// The backend has no stable error envelope: a rejection body may be plain
// text, a JSON document, or a JSON document whose interesting part hides
// in a trace string. These regexes are the only reliable markers.
var (
	componentRe = regexp.MustCompile(`(?i)Component:\s*([A-Za-z_]+)`)
	availableRe = regexp.MustCompile(`(?i)Available:\s*(-?\d+)`)
	requiredRe  = regexp.MustCompile(`(?i)Required:\s*(-?\d+)`)
)

const shortageToken = "재고가 부족"

// FromError extracts a shortage from any error returned by the upstream
// client. Non-API errors are matched against their message as a last
// resort. Returns nil when no shortage signal is present; callers must
// fall back to their normal error surfacing when it does.
func FromError(err error) *Info {
	if err == nil {
		return nil
	}
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		return Parse(apiErr.Body, err.Error())
	}
	return Parse("", err.Error())
}

// Parse runs the extraction strategies in fixed priority order: raw body
// text, parsed JSON trace, parsed JSON message, parsed JSON structured
// fields, then the plain error message. First hit wins.
func Parse(rawBody, errMsg string) *Info {
	if info := fromText(rawBody); info != nil {
		return info
	}

	var body map[string]any
	if rawBody != "" && json.Unmarshal([]byte(rawBody), &body) == nil {
		if trace, ok := body["trace"].(string); ok {
			if info := fromText(trace); info != nil {
				return info
			}
		}
		if msg, ok := body["message"].(string); ok {
			if info := fromText(msg); info != nil {
				return info
			}
		}
		if info := fromFields(body); info != nil {
			return info
		}
	}

	if errMsg != rawBody {
		if info := fromText(errMsg); info != nil {
			return info
		}
	}

	return nil
}

func fromText(text string) *Info {
	if text == "" || !strings.Contains(text, shortageToken) {
		return nil
	}

	match := componentRe.FindStringSubmatch(text)
	if match == nil {
		return nil
	}

	info := &Info{Code: match[1]}
	info.Available = matchInt(availableRe, text)
	info.Required = matchInt(requiredRe, text)
	finish(info, text)
	return info
}

func fromFields(body map[string]any) *Info {
	code := ""
	for _, key := range []string{"componentCode", "component", "componentType"} {
		if s, ok := body[key].(string); ok && s != "" {
			code = s
			break
		}
	}
	if code == "" {
		return nil
	}

	info := &Info{Code: code}
	if n, ok := body["available"].(float64); ok {
		v := int(n)
		info.Available = &v
	}
	if n, ok := body["required"].(float64); ok {
		v := int(n)
		info.Required = &v
	}

	msg, _ := body["message"].(string)
	if info.Available == nil && info.Required == nil && !strings.Contains(msg, "재고") {
		return nil
	}

	finish(info, msg)
	return info
}

// finish fills the display name and label. The upstream text is used as
// the label only when it reads like a real message; anything that smells
// like a raw JSON blob gets a synthesized label instead, so it never
// leaks into a user-facing toast.
func finish(info *Info, upstreamLabel string) {
	info.DisplayName = menu.RegisteredDisplayName(info.Code)
	if info.DisplayName == "" {
		info.DisplayName = info.Code
	}

	if trustLabel(upstreamLabel) {
		info.Label = upstreamLabel
	} else {
		info.Label = fmt.Sprintf("%s의 재고가 부족합니다.", info.DisplayName)
	}
}

func trustLabel(label string) bool {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" || !strings.Contains(trimmed, "재고") {
		return false
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return false
	}
	if strings.Contains(trimmed, `"timestamp"`) || strings.Contains(trimmed, `"status"`) {
		return false
	}
	return true
}

func matchInt(re *regexp.Regexp, text string) *int {
	match := re.FindStringSubmatch(text)
	if match == nil {
		return nil
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return nil
	}
	return &n
}
