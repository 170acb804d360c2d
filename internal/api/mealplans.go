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

// UpsertMealWeek replaces the backend's plan for one week with the full
// seven-day mapping in req. The planner has no delete endpoint; clearing a
// day means upserting the week without it.
func UpsertMealWeek(ctx context.Context, httpClient *http.Client, baseURL string, req types.UpsertMealWeekRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/api/meal-plans", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return errs.NewNetworkError("upsert meal week", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.NewHTTPError(resp.StatusCode, readBody(resp.Body), "upsert meal week")
	}
	return nil
}
