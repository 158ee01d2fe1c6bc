package domain

import (
	"context"
	"time"
)

// EndpointHit is one page view reported to the stats collaborator.
type EndpointHit struct {
	App       string
	URI       string
	IP        string
	Timestamp time.Time
}

// ViewStats is the aggregated hit count of one uri.
type ViewStats struct {
	App  string `json:"app"`
	URI  string `json:"uri"`
	Hits int64  `json:"hits"`
}

// StatsClient is the port to the external stats service.
type StatsClient interface {
	RecordHit(ctx context.Context, hit EndpointHit) error
	// FetchViewCounts returns hit counts keyed by uri. Uris without hits are absent.
	FetchViewCounts(ctx context.Context, uris []string, unique bool) (map[string]int64, error)
}
