package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"explorewithme/internal/domain"
)

type compilationRepository struct {
	DB *sql.DB
}

// NewCompilationRepository returns a domain.CompilationRepository implemented with Postgres.
// Create and Update write several rows; callers run them inside a transaction.
func NewCompilationRepository(db *sql.DB) domain.CompilationRepository {
	return &compilationRepository{DB: db}
}

func (r *compilationRepository) Create(ctx context.Context, c *domain.Compilation) error {
	err := conn(ctx, r.DB).QueryRowContext(ctx,
		`INSERT INTO compilations (title, pinned) VALUES ($1, $2) RETURNING id`, c.Title, c.Pinned).Scan(&c.ID)
	if err != nil {
		return mapError(err)
	}
	return r.setEvents(ctx, c.ID, c.EventIDs)
}

func (r *compilationRepository) Update(ctx context.Context, c *domain.Compilation) error {
	res, err := conn(ctx, r.DB).ExecContext(ctx,
		`UPDATE compilations SET title = $1, pinned = $2 WHERE id = $3`, c.Title, c.Pinned, c.ID)
	if err != nil {
		return mapError(err)
	}
	if err := expectAffected(res); err != nil {
		return err
	}
	if _, err := conn(ctx, r.DB).ExecContext(ctx, `DELETE FROM compilation_events WHERE compilation_id = $1`, c.ID); err != nil {
		return err
	}
	return r.setEvents(ctx, c.ID, c.EventIDs)
}

func (r *compilationRepository) setEvents(ctx context.Context, compilationID int64, eventIDs []int64) error {
	if len(eventIDs) == 0 {
		return nil
	}
	_, err := conn(ctx, r.DB).ExecContext(ctx, `
		INSERT INTO compilation_events (compilation_id, event_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT (compilation_id, event_id) DO NOTHING`, compilationID, pq.Array(eventIDs))
	return mapError(err)
}

func (r *compilationRepository) Delete(ctx context.Context, id int64) error {
	res, err := conn(ctx, r.DB).ExecContext(ctx, `DELETE FROM compilations WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	return expectAffected(res)
}

func (r *compilationRepository) GetByID(ctx context.Context, id int64) (*domain.Compilation, error) {
	c := &domain.Compilation{}
	err := conn(ctx, r.DB).QueryRowContext(ctx,
		`SELECT id, title, pinned FROM compilations WHERE id = $1`, id).Scan(&c.ID, &c.Title, &c.Pinned)
	if err != nil {
		return nil, mapError(err)
	}
	if err := r.loadEvents(ctx, []*domain.Compilation{c}); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *compilationRepository) List(ctx context.Context, pinned *bool, page domain.PageRequest) ([]*domain.Compilation, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if pinned == nil {
		rows, err = conn(ctx, r.DB).QueryContext(ctx,
			`SELECT id, title, pinned FROM compilations ORDER BY id LIMIT $1 OFFSET $2`, page.Limit(), page.Offset())
	} else {
		rows, err = conn(ctx, r.DB).QueryContext(ctx,
			`SELECT id, title, pinned FROM compilations WHERE pinned = $1 ORDER BY id LIMIT $2 OFFSET $3`,
			*pinned, page.Limit(), page.Offset())
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*domain.Compilation, 0)
	for rows.Next() {
		c := &domain.Compilation{}
		if err := rows.Scan(&c.ID, &c.Title, &c.Pinned); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadEvents(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// loadEvents fills EventIDs of every compilation with one query.
func (r *compilationRepository) loadEvents(ctx context.Context, comps []*domain.Compilation) error {
	if len(comps) == 0 {
		return nil
	}
	ids := make([]int64, len(comps))
	byID := make(map[int64]*domain.Compilation, len(comps))
	for i, c := range comps {
		ids[i] = c.ID
		c.EventIDs = []int64{}
		byID[c.ID] = c
	}
	rows, err := conn(ctx, r.DB).QueryContext(ctx,
		`SELECT compilation_id, event_id FROM compilation_events WHERE compilation_id = ANY($1) ORDER BY event_id`,
		pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var compID, eventID int64
		if err := rows.Scan(&compID, &eventID); err != nil {
			return err
		}
		if c, ok := byID[compID]; ok {
			c.EventIDs = append(c.EventIDs, eventID)
		}
	}
	return rows.Err()
}
