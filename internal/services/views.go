package services

import (
	"context"
	"fmt"
	"log/slog"

	"explorewithme/internal/domain"
)

// eventEnricher attaches confirmed-request counts and view counts to events.
type eventEnricher struct {
	requestRepo domain.RequestRepository
	stats       domain.StatsClient
	logger      *slog.Logger
}

// counts returns confirmed counts and view counts keyed by event id. A stats
// failure is logged and yields zero views.
func (en *eventEnricher) counts(ctx context.Context, events []*domain.Event, unique bool) (map[int64]int64, map[int64]int64, error) {
	confirmed := map[int64]int64{}
	views := map[int64]int64{}
	if len(events) == 0 {
		return confirmed, views, nil
	}

	ids := make([]int64, len(events))
	uris := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
		uris[i] = e.URI()
	}

	confirmed, err := en.requestRepo.CountConfirmedByEventIDs(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("count confirmed requests: %w", err)
	}

	if en.stats == nil {
		return confirmed, views, nil
	}
	hits, err := en.stats.FetchViewCounts(ctx, uris, unique)
	if err != nil {
		en.logger.WarnContext(ctx, "view counts unavailable, reporting zero views", "uris", len(uris), "err", err)
		return confirmed, views, nil
	}
	for _, e := range events {
		views[e.ID] = hits[e.URI()]
	}
	return confirmed, views, nil
}

func (en *eventEnricher) full(ctx context.Context, events []*domain.Event, unique bool) ([]*domain.EventFull, error) {
	confirmed, views, err := en.counts(ctx, events, unique)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.EventFull, 0, len(events))
	for _, e := range events {
		out = append(out, e.Full(confirmed[e.ID], views[e.ID]))
	}
	return out, nil
}

func (en *eventEnricher) one(ctx context.Context, e *domain.Event, unique bool) (*domain.EventFull, error) {
	full, err := en.full(ctx, []*domain.Event{e}, unique)
	if err != nil {
		return nil, err
	}
	return full[0], nil
}

func (en *eventEnricher) short(ctx context.Context, events []*domain.Event, unique bool) ([]*domain.EventShort, error) {
	confirmed, views, err := en.counts(ctx, events, unique)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.EventShort, 0, len(events))
	for _, e := range events {
		out = append(out, e.Short(confirmed[e.ID], views[e.ID]))
	}
	return out, nil
}

// uniqueIDs drops repeated ids, keeping the first occurrence.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
