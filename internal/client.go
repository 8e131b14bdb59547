package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// No Timeout on purpose: the fetch is a single shot per session and
// context cancellation on teardown is the only way it ends early.
var client = &http.Client{}

// FetchResult is what the fetch goroutine hands back to the view.
type FetchResult struct {
	Snapshot Snapshot
	Err      error
}

// FetchSnapshot issues the one GET of the session against the
// market-data endpoint and decodes the body into a Snapshot. Transport
// errors, non-200 statuses and malformed bodies all come back as a
// single uniform error; the caller treats them alike.
func FetchSnapshot(ctx context.Context, url string) (Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request failed: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error: %s - %s", resp.Status, string(bodyBytes))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("body read error: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		return nil, fmt.Errorf("JSON parse error: %w, Received Data: %s", err, string(body))
	}

	return snap, nil
}
