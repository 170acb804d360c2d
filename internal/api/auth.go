// Package api implements the HTTP edge of the sync layer: one function per
// endpoint, no retries, no state. Retry policy belongs to the executor and
// optimistic state to the store; this package only speaks the wire shapes.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/foodhabits/foodhabits-go/internal/types"
)

// APIError is a non-2xx auth response carrying the server's message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("status %d", e.StatusCode)
}

// SignUp registers a new account via POST {base}/auth/signup.
func SignUp(ctx context.Context, httpClient *http.Client, baseURL string, req types.SignUpRequest) (*types.Session, error) {
	return doAuth(ctx, httpClient, fmt.Sprintf("%s/auth/signup", baseURL), req)
}

// LogIn exchanges credentials for a session via POST {base}/auth/login.
func LogIn(ctx context.Context, httpClient *http.Client, baseURL string, req types.LogInRequest) (*types.Session, error) {
	return doAuth(ctx, httpClient, fmt.Sprintf("%s/auth/login", baseURL), req)
}

func doAuth(ctx context.Context, httpClient *http.Client, url string, payload any) (*types.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Failure bodies are {message}; tolerate anything else.
		var fail types.AuthFailure
		_ = json.NewDecoder(resp.Body).Decode(&fail)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: fail.Message}
	}

	var auth types.AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return nil, err
	}
	return &types.Session{
		ID:        auth.ID,
		Email:     auth.Email,
		Name:      auth.Name,
		CreatedAt: time.Now().UTC(),
	}, nil
}
