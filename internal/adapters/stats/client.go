package stats

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"explorewithme/internal/domain"
)

// DefaultAppName identifies this service in the stats collaborator.
const DefaultAppName = "ewm-main-service"

// Query window used for view counts: wide enough to cover every stored hit.
const (
	windowPast   = 20 * 365 * 24 * time.Hour
	windowFuture = 100 * 365 * 24 * time.Hour
)

// Config configures the stats HTTP client.
type Config struct {
	BaseURL string
	AppName string
	Timeout time.Duration
}

type hitRequest struct {
	App       string `json:"app"`
	URI       string `json:"uri"`
	IP        string `json:"ip"`
	Timestamp string `json:"timestamp"`
}

type httpClient struct {
	baseURL string
	appName string
	client  *http.Client
	now     func() time.Time
}

// NewHTTPClient returns a StatsClient that talks to the stats service over HTTP.
// When client is nil a client with cfg.Timeout is created.
func NewHTTPClient(cfg Config, client *http.Client) domain.StatsClient {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	app := cfg.AppName
	if app == "" {
		app = DefaultAppName
	}
	return &httpClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		appName: app,
		client:  client,
		now:     time.Now,
	}
}

func (c *httpClient) RecordHit(ctx context.Context, hit domain.EndpointHit) error {
	if hit.App == "" {
		hit.App = c.appName
	}
	if hit.Timestamp.IsZero() {
		hit.Timestamp = c.now()
	}
	body, err := json.Marshal(hitRequest{
		App:       hit.App,
		URI:       hit.URI,
		IP:        hit.IP,
		Timestamp: hit.Timestamp.Format(domain.DateTimeLayout),
	})
	if err != nil {
		return fmt.Errorf("failed to encode hit: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/hit", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to record hit: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("stats api returned status: %d", resp.StatusCode)
	}
	return nil
}

func (c *httpClient) FetchViewCounts(ctx context.Context, uris []string, unique bool) (map[string]int64, error) {
	counts := make(map[string]int64, len(uris))
	if len(uris) == 0 {
		return counts, nil
	}
	now := c.now()
	q := url.Values{}
	q.Set("start", now.Add(-windowPast).Format(domain.DateTimeLayout))
	q.Set("end", now.Add(windowFuture).Format(domain.DateTimeLayout))
	for _, u := range uris {
		q.Add("uris", u)
	}
	q.Set("unique", strconv.FormatBool(unique))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/stats?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stats: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stats api returned status: %d", resp.StatusCode)
	}
	var stats []domain.ViewStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, fmt.Errorf("failed to decode stats response: %w", err)
	}
	for _, s := range stats {
		counts[s.URI] += s.Hits
	}
	return counts, nil
}
