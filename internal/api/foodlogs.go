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

// UpsertFoodDay replaces the backend's record of one calendar day with the
// full set of items in req. There is no per-entry endpoint; additions and
// deletions both re-send the whole day.
func UpsertFoodDay(ctx context.Context, httpClient *http.Client, baseURL string, req types.UpsertFoodDayRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/api/food-logs", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return errs.NewNetworkError("upsert food day", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.NewHTTPError(resp.StatusCode, readBody(resp.Body), "upsert food day")
	}
	return nil
}
