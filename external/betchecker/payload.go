package betchecker

import "strings"

// errorBody is the backend's error envelope. detail is a string for
// application errors and a list of {loc, msg, type} for request validation.
type errorBody struct {
	Detail any `json:"detail"`
}

func (b errorBody) message() string {
	switch detail := b.Detail.(type) {
	case string:
		return strings.TrimSpace(detail)
	case []any:
		msgs := make([]string, 0, len(detail))
		for _, item := range detail {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			msg, _ := entry["msg"].(string)
			msg = strings.TrimSpace(msg)
			if msg == "" {
				continue
			}
			if field := lastLocation(entry["loc"]); field != "" {
				msg = field + ": " + msg
			}
			msgs = append(msgs, msg)
		}
		return strings.Join(msgs, "; ")
	default:
		return ""
	}
}

func lastLocation(raw any) string {
	loc, ok := raw.([]any)
	if !ok || len(loc) == 0 {
		return ""
	}
	field, _ := loc[len(loc)-1].(string)
	return field
}
