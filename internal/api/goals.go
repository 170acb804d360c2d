package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/foodhabits/foodhabits-go/internal/errs"
	"github.com/foodhabits/foodhabits-go/internal/types"
)

// CreateGoal creates a goal and returns the server's representation,
// including the server-assigned identifier.
func CreateGoal(ctx context.Context, httpClient *http.Client, baseURL string, req types.CreateGoalRequest) (*types.Goal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/api/goals", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, errs.NewNetworkError("create goal", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, errs.NewHTTPError(resp.StatusCode, readBody(resp.Body), "create goal")
	}

	var doc types.GoalDoc
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, err
	}
	goal := doc.Goal()
	return &goal, nil
}

// UpdateGoal sends a partial update for one goal.
func UpdateGoal(ctx context.Context, httpClient *http.Client, baseURL, goalID string, req types.UpdateGoalRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/api/goals/%s", baseURL, goalID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return errs.NewNetworkError("update goal", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.NewHTTPError(resp.StatusCode, readBody(resp.Body), "update goal")
	}
	return nil
}

// DeleteGoal removes a goal by ID.
func DeleteGoal(ctx context.Context, httpClient *http.Client, baseURL, goalID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	url := fmt.Sprintf("%s/api/goals/%s", baseURL, goalID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return errs.NewNetworkError("delete goal", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.NewHTTPError(resp.StatusCode, readBody(resp.Body), "delete goal")
	}
	return nil
}
