package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/fwojciec/earnings"
)

// readError converts a failed backend response into an application error
// carrying a human-readable message.
func readError(statusCode int, body []byte) *earnings.Error {
	return &earnings.Error{
		Code:    errorCode(statusCode),
		Message: errorMessage(statusCode, body),
	}
}

func errorCode(statusCode int) string {
	switch statusCode {
	case http.StatusNotFound:
		return earnings.ENOTFOUND
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return earnings.EINVALID
	case http.StatusConflict:
		return earnings.ECONFLICT
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return earnings.EUNAVAILABLE
	default:
		return earnings.EINTERNAL
	}
}

// errorMessage reads the FastAPI "detail" field, which is either a string
// or a list of validation entries. Bare JSON strings are unquoted and
// plain-text bodies are returned as is.
func errorMessage(statusCode int, body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg, ok := detailMessage(payload.Detail); ok {
			return msg
		}
	} else {
		var s string
		if err := json.Unmarshal(body, &s); err == nil {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		} else if text := strings.TrimSpace(string(body)); text != "" {
			return text
		}
	}

	if statusText := http.StatusText(statusCode); statusText != "" {
		return fmt.Sprintf("Request failed: %d %s.", statusCode, statusText)
	}
	return "Request failed."
}

func detailMessage(detail json.RawMessage) (string, bool) {
	if len(detail) == 0 {
		return "", false
	}

	var s string
	if err := json.Unmarshal(detail, &s); err == nil {
		return s, s != ""
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(detail, &entries); err != nil {
		return "", false
	}

	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		parts = append(parts, entryMessage(entry))
	}
	joined := strings.Join(parts, " | ")
	return joined, joined != ""
}

func entryMessage(entry json.RawMessage) string {
	var s string
	if err := json.Unmarshal(entry, &s); err == nil {
		return s
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(entry, &obj); err == nil {
		if msg, ok := obj["msg"]; ok {
			var text string
			if err := json.Unmarshal(msg, &text); err == nil {
				return text
			}
			return string(msg)
		}
	}

	return string(entry)
}
