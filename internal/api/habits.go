package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/foodhabits/foodhabits-go/internal/errs"
	"github.com/foodhabits/foodhabits-go/internal/types"
)

// CreateHabit creates a habit and returns the server's representation,
// including the server-assigned identifier.
func CreateHabit(ctx context.Context, httpClient *http.Client, baseURL string, req types.CreateHabitRequest) (*types.Habit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/api/habits", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, errs.NewNetworkError("create habit", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, errs.NewHTTPError(resp.StatusCode, readBody(resp.Body), "create habit")
	}

	var doc types.HabitDoc
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, err
	}
	habit := doc.Habit()
	return &habit, nil
}

// UpdateHabit sends a partial update for one habit.
func UpdateHabit(ctx context.Context, httpClient *http.Client, baseURL, habitID string, req types.UpdateHabitRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/api/habits/%s", baseURL, habitID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return errs.NewNetworkError("update habit", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.NewHTTPError(resp.StatusCode, readBody(resp.Body), "update habit")
	}
	return nil
}

// DeleteHabit removes a habit by ID.
func DeleteHabit(ctx context.Context, httpClient *http.Client, baseURL, habitID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	url := fmt.Sprintf("%s/api/habits/%s", baseURL, habitID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return errs.NewNetworkError("delete habit", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.NewHTTPError(resp.StatusCode, readBody(resp.Body), "delete habit")
	}
	return nil
}

// readBody returns up to 1 KiB of the response body for error diagnostics.
func readBody(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 1024))
	return string(b)
}
