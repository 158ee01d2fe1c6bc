package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"explorewithme/internal/domain"
)

type requestRepository struct {
	DB *sql.DB
}

func NewRequestRepository(db *sql.DB) domain.RequestRepository {
	return &requestRepository{DB: db}
}

const requestSelect = `SELECT id, requester_id, event_id, status, created FROM requests`

func scanRequest(s rowScanner) (*domain.ParticipationRequest, error) {
	r := &domain.ParticipationRequest{}
	var status string
	var created time.Time
	if err := s.Scan(&r.ID, &r.Requester, &r.Event, &status, &created); err != nil {
		return nil, err
	}
	r.Status = domain.RequestStatus(status)
	r.Created = domain.NewDateTime(localWall(created))
	return r, nil
}

func scanRequests(rows *sql.Rows) ([]*domain.ParticipationRequest, error) {
	defer rows.Close()
	out := make([]*domain.ParticipationRequest, 0)
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (r *requestRepository) Create(ctx context.Context, req *domain.ParticipationRequest) error {
	query := `
		INSERT INTO requests (requester_id, event_id, status, created)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := conn(ctx, r.DB).QueryRowContext(ctx, query, req.Requester, req.Event, string(req.Status), req.Created.Time).Scan(&req.ID)
	return mapError(err)
}

func (r *requestRepository) GetByID(ctx context.Context, id int64) (*domain.ParticipationRequest, error) {
	req, err := scanRequest(conn(ctx, r.DB).QueryRowContext(ctx, requestSelect+` WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return req, nil
}

func (r *requestRepository) ListByRequester(ctx context.Context, requesterID int64) ([]*domain.ParticipationRequest, error) {
	rows, err := conn(ctx, r.DB).QueryContext(ctx, requestSelect+` WHERE requester_id = $1 ORDER BY id`, requesterID)
	if err != nil {
		return nil, err
	}
	return scanRequests(rows)
}

func (r *requestRepository) ListByEvent(ctx context.Context, eventID int64) ([]*domain.ParticipationRequest, error) {
	rows, err := conn(ctx, r.DB).QueryContext(ctx, requestSelect+` WHERE event_id = $1 ORDER BY id`, eventID)
	if err != nil {
		return nil, err
	}
	return scanRequests(rows)
}

func (r *requestRepository) ListByIDs(ctx context.Context, ids []int64) ([]*domain.ParticipationRequest, error) {
	if len(ids) == 0 {
		return []*domain.ParticipationRequest{}, nil
	}
	rows, err := conn(ctx, r.DB).QueryContext(ctx,
		requestSelect+` WHERE id = ANY($1::bigint[]) ORDER BY array_position($1::bigint[], id)`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	return scanRequests(rows)
}

func (r *requestRepository) ExistsByRequester(ctx context.Context, requesterID int64) (bool, error) {
	var exists bool
	err := conn(ctx, r.DB).QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM requests WHERE requester_id = $1)`, requesterID).Scan(&exists)
	return exists, err
}

func (r *requestRepository) ExistsByRequesterAndEvent(ctx context.Context, requesterID, eventID int64) (bool, error) {
	var exists bool
	err := conn(ctx, r.DB).QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM requests WHERE requester_id = $1 AND event_id = $2)`, requesterID, eventID).Scan(&exists)
	return exists, err
}

func (r *requestRepository) CountConfirmed(ctx context.Context, eventID int64) (int64, error) {
	var n int64
	err := conn(ctx, r.DB).QueryRowContext(ctx,
		`SELECT COUNT(*) FROM requests WHERE event_id = $1 AND status = $2`, eventID, string(domain.RequestStatusConfirmed)).Scan(&n)
	return n, err
}

func (r *requestRepository) CountConfirmedByEventIDs(ctx context.Context, eventIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(eventIDs))
	if len(eventIDs) == 0 {
		return counts, nil
	}
	rows, err := conn(ctx, r.DB).QueryContext(ctx, `
		SELECT event_id, COUNT(*)
		FROM requests
		WHERE event_id = ANY($1) AND status = $2
		GROUP BY event_id`, pq.Array(eventIDs), string(domain.RequestStatusConfirmed))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var id, n int64
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		counts[id] = n
	}
	return counts, rows.Err()
}

func (r *requestRepository) UpdateStatus(ctx context.Context, ids []int64, status domain.RequestStatus) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := conn(ctx, r.DB).ExecContext(ctx,
		`UPDATE requests SET status = $1 WHERE id = ANY($2)`, string(status), pq.Array(ids))
	return mapError(err)
}
