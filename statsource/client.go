package statsource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"

	footballalert "github.com/DenizArda13/football-alert-cli"
)

const (
	statisticsPath      = "/fixtures/statistics"
	maxResponseBodySize = 1 << 20 // 1MB

	defaultRequestTimeout = 10 * time.Second
	defaultMaxRetries     = 2

	// connection pooling limits to prevent resource exhaustion when many
	// fixture monitors poll concurrently
	defaultMaxIdleConns        = 100
	defaultMaxIdleConnsPerHost = 10
	defaultMaxConnsPerHost     = 10
	defaultIdleConnTimeout     = 60 * time.Second
)

// apiResponse mirrors the API-Football fixtures/statistics payload: one
// entry per team (home first, away second), each with a list of
// type/value statistic pairs, plus a top-level elapsed minute.
type apiResponse struct {
	Response []apiTeamStats `json:"response"`
	Elapsed  int            `json:"elapsed"`
}

type apiTeamStats struct {
	Team struct {
		Name string `json:"name"`
	} `json:"team"`
	Statistics []apiStat `json:"statistics"`
}

type apiStat struct {
	Type  string      `json:"type"`
	Value json.Number `json:"value"`
}

// Client is the HTTP-backed [footballalert.StatSource].
//
// It speaks the API-Football statistics shape against a configurable base
// URL, which in practice is the local mock API server. Transient failures
// (network errors, 5xx responses) are retried with bounded exponential
// backoff inside a single Fetch; when retries are exhausted the returned
// error wraps [footballalert.ErrUnavailable] so the monitor skips the tick
// and tries again next interval.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	timeout    time.Duration
	maxRetries uint64
}

// NewClient creates a [Client] polling the given base URL.
//
// apiKey may be empty; when set it is sent as the x-rapidapi-key header
// the way the real upstream expects.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{
			// per-request timeouts via context, not a global timeout
			Transport: &http.Transport{
				MaxIdleConns:        defaultMaxIdleConns,
				MaxIdleConnsPerHost: defaultMaxIdleConnsPerHost,
				MaxConnsPerHost:     defaultMaxConnsPerHost,
				IdleConnTimeout:     defaultIdleConnTimeout,
			},
		},
		baseURL:    baseURL,
		apiKey:     apiKey,
		timeout:    defaultRequestTimeout,
		maxRetries: defaultMaxRetries,
	}
}

// Fetch requests the fixture's current statistics.
//
// The seq argument is carried as a query parameter for traceability; the
// server side owns the actual progression state.
func (c *Client) Fetch(ctx context.Context, fixtureID, seq int) (footballalert.StatSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body []byte
	attempt := func() error {
		var err error
		body, err = c.get(ctx, fixtureID, seq)
		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)
	if err := backoff.Retry(attempt, policy); err != nil {
		return footballalert.StatSnapshot{}, fmt.Errorf("fixture %d: %w: %w", fixtureID, footballalert.ErrUnavailable, err)
	}

	snap, err := parseSnapshot(fixtureID, body)
	if err != nil {
		return footballalert.StatSnapshot{}, fmt.Errorf("fixture %d: %w: %w", fixtureID, footballalert.ErrUnavailable, err)
	}
	return snap, nil
}

// get performs a single HTTP attempt. Client errors (4xx) are permanent;
// network failures and 5xx responses are retried by the caller's policy.
func (c *Client) get(ctx context.Context, fixtureID, seq int) ([]byte, error) {
	url := fmt.Sprintf("%s%s?fixture=%d&poll=%d", c.baseURL, statisticsPath, fixtureID, seq)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
	}
	if c.apiKey != "" {
		req.Header.Set("x-rapidapi-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("server returned %d", resp.StatusCode)
	default:
		return nil, backoff.Permanent(fmt.Errorf("server returned %d", resp.StatusCode))
	}
}

// parseSnapshot converts the API-Football payload into a snapshot.
//
// The first response entry is the home side and the second the away side.
// Null or non-integer statistic values are skipped rather than treated as
// zero, so a condition on a missing statistic simply waits.
func parseSnapshot(fixtureID int, body []byte) (footballalert.StatSnapshot, error) {
	var payload apiResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return footballalert.StatSnapshot{}, fmt.Errorf("failed to decode statistics payload: %w", err)
	}
	if len(payload.Response) == 0 {
		return footballalert.StatSnapshot{}, fmt.Errorf("statistics payload has no team entries")
	}

	sides := []footballalert.Side{footballalert.SideHome, footballalert.SideAway}
	values := make(map[footballalert.StatKey]int)

	for i, team := range payload.Response {
		if i >= len(sides) {
			break
		}
		for _, stat := range team.Statistics {
			if stat.Value == "" {
				continue
			}
			v, err := strconv.Atoi(stat.Value.String())
			if err != nil {
				continue
			}
			values[footballalert.StatKey{Statistic: stat.Type, Side: sides[i]}] = v
		}
	}

	minute := payload.Elapsed
	if minute > fullTime {
		minute = fullTime
	}
	if minute < 0 {
		minute = 0
	}

	return footballalert.StatSnapshot{
		FixtureID: fixtureID,
		Minute:    minute,
		Values:    values,
	}, nil
}
