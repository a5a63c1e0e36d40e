package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"notidue/internal/config"
	"notidue/internal/jsontree"
	"notidue/internal/report"
)

// apiVersion is the Notion-Version header value the query endpoint expects.
const apiVersion = "2022-06-28"

type Client struct {
	dbURL      string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(cred config.Credential) *Client {
	return &Client{
		dbURL:      cred.DBURL,
		apiKey:     cred.APIKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		// Notion allows an average of 3 requests per second per integration.
		limiter: rate.NewLimiter(rate.Limit(3), 1),
	}
}

var _ report.Source = (*Client)(nil)

func (c *Client) Name() string {
	return "Notion"
}

type querySort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

type queryRequest struct {
	Sorts []querySort `json:"sorts"`
}

// FetchPage performs one POST against the configured database query URL
// and returns the decoded response document. Records arrive pre-sorted by
// ascending due date; the report pass keeps that order.
func (c *Client) FetchPage(ctx context.Context) (jsontree.Value, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return jsontree.Value{}, err
	}

	body, err := json.Marshal(queryRequest{
		Sorts: []querySort{{Property: "Due", Direction: "ascending"}},
	})
	if err != nil {
		return jsontree.Value{}, fmt.Errorf("failed to marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.dbURL, bytes.NewReader(body))
	if err != nil {
		return jsontree.Value{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Notion-Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return jsontree.Value{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return jsontree.Value{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return jsontree.Value{}, fmt.Errorf("API error (status %d): %s", resp.StatusCode, raw)
	}

	doc, err := jsontree.Decode(raw)
	if err != nil {
		return jsontree.Value{}, fmt.Errorf("failed to decode response: %w", err)
	}

	return doc, nil
}
