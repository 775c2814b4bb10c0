package threads

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"threads-cli/internal/services"
)

// APIError is a non-2xx response from the Threads API.
type APIError struct {
	StatusCode int
	Code       int
	Subcode    int
	Type       string
	Message    string
	TraceID    string
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "threads api returned %d", e.StatusCode)
	if e.Code != 0 {
		fmt.Fprintf(&b, " (code %d", e.Code)
		if e.Subcode != 0 {
			fmt.Fprintf(&b, ", subcode %d", e.Subcode)
		}
		b.WriteByte(')')
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Unwrap ties every API failure to services.ErrRemote.
func (e *APIError) Unwrap() error {
	return services.ErrRemote
}

// RateLimited reports whether the API rejected the call for exceeding quota.
func (e *APIError) RateLimited() bool {
	// 4, 17, 32 and 613 are the Graph API throttling codes.
	switch e.Code {
	case 4, 17, 32, 613:
		return true
	}
	return e.StatusCode == http.StatusTooManyRequests
}

// Unauthorized reports whether the access token was rejected.
func (e *APIError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.Code == 190
}

type errorEnvelope struct {
	Error struct {
		Message   string `json:"message"`
		Type      string `json:"type"`
		Code      int    `json:"code"`
		Subcode   int    `json:"error_subcode"`
		FBTraceID string `json:"fbtrace_id"`
	} `json:"error"`
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 8192))

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		apiErr.Code = envelope.Error.Code
		apiErr.Subcode = envelope.Error.Subcode
		apiErr.Type = envelope.Error.Type
		apiErr.Message = envelope.Error.Message
		apiErr.TraceID = envelope.Error.FBTraceID
	} else {
		apiErr.Message = strings.TrimSpace(string(body))
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
	}
	if apiErr.RateLimited() && !strings.Contains(strings.ToLower(apiErr.Message), "rate limit") {
		apiErr.Message = strings.TrimSpace(apiErr.Message + " (rate limited; try again later)")
	}
	return apiErr
}
