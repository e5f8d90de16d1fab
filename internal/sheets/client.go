// Package sheets talks to the spreadsheet-hosting API: document discovery by
// name and range-based cell reads by tab name. Written against the Google
// Drive/Sheets REST surface; base URLs are injectable so tests can point at
// a local fake.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const spreadsheetMimeType = "application/vnd.google-apps.spreadsheet"

// File is one discovered spreadsheet document.
type File struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Grid is a raw 2-D block of cell values exactly as returned by a tab read.
// It is never cached across calls.
type Grid [][]string

// Client performs authenticated reads against the spreadsheet host.
type Client struct {
	driveBaseURL  string
	sheetsBaseURL string
	httpClient    *http.Client
}

// NewClient creates a Client for the given Drive and Sheets API base URLs.
func NewClient(driveBaseURL, sheetsBaseURL string) *Client {
	return &Client{
		driveBaseURL:  strings.TrimRight(driveBaseURL, "/"),
		sheetsBaseURL: strings.TrimRight(sheetsBaseURL, "/"),
		httpClient:    &http.Client{Timeout: 20 * time.Second},
	}
}

// filesResponse mirrors the Drive files.list JSON reply.
type filesResponse struct {
	Files []File `json:"files"`
}

// ListSpreadsheets lists spreadsheet-type documents visible to the token.
// No caching: every call re-lists, trading latency for freshness.
func (c *Client) ListSpreadsheets(ctx context.Context, accessToken string) ([]File, error) {
	q := url.Values{}
	q.Set("q", fmt.Sprintf("mimeType='%s'", spreadsheetMimeType))
	q.Set("fields", "files(id,name)")
	q.Set("pageSize", "100")

	endpoint := c.driveBaseURL + "/drive/v3/files?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating list request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listing spreadsheets: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list spreadsheets: unexpected status %d", resp.StatusCode)
	}

	var result filesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding file list: %w", err)
	}
	return result.Files, nil
}

// valuesResponse mirrors the Sheets values.get JSON reply. Cells arrive as
// arbitrary JSON scalars; they are stringified into the Grid.
type valuesResponse struct {
	Values [][]any `json:"values"`
}

// ReadTab fetches the named tab's full value range as a Grid. The tab name is
// exact and case-sensitive. Returns nil with an error on any transport or
// parse failure; callers turn that into a not-found answer, not a crash.
func (c *Client) ReadTab(ctx context.Context, accessToken, spreadsheetID, tab string) (Grid, error) {
	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s",
		c.sheetsBaseURL, url.PathEscape(spreadsheetID), url.PathEscape(tab))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating values request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reading tab %q: %w", tab, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("read tab %q: unexpected status %d", tab, resp.StatusCode)
	}

	var result valuesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding tab %q values: %w", tab, err)
	}

	grid := make(Grid, len(result.Values))
	for i, row := range result.Values {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = stringifyCell(v)
		}
		grid[i] = cells
	}
	return grid, nil
}

// stringifyCell renders a JSON cell value the way the sheet displays it.
func stringifyCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	case bool:
		if val {
			return "TRUE"
		}
		return "FALSE"
	default:
		return fmt.Sprintf("%v", val)
	}
}
