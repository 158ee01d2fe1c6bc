package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"explorewithme/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

const eventSelect = `
		SELECT e.id, e.annotation, c.id, c.name, e.created_on, e.description, e.event_date,
		       u.id, u.name, l.id, l.lat, l.lon, e.paid, e.participant_limit, e.published_on,
		       e.request_moderation, e.state, e.title
		FROM events e
		JOIN categories c ON c.id = e.category_id
		JOIN users u ON u.id = e.initiator_id
		JOIN locations l ON l.id = e.location_id`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// localWall reinterprets a TIMESTAMP value read from Postgres in the local zone.
func localWall(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.Local)
}

func scanEvent(s rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var createdOn, eventDate time.Time
	var publishedOn sql.NullTime
	var state string
	err := s.Scan(
		&e.ID, &e.Annotation, &e.Category.ID, &e.Category.Name, &createdOn, &e.Description, &eventDate,
		&e.Initiator.ID, &e.Initiator.Name, &e.Location.ID, &e.Location.Lat, &e.Location.Lon,
		&e.Paid, &e.ParticipantLimit, &publishedOn, &e.RequestModeration, &state, &e.Title,
	)
	if err != nil {
		return nil, err
	}
	e.CreatedOn = domain.NewDateTime(localWall(createdOn))
	e.EventDate = domain.NewDateTime(localWall(eventDate))
	if publishedOn.Valid {
		p := domain.NewDateTime(localWall(publishedOn.Time))
		e.PublishedOn = &p
	}
	e.State = domain.EventState(state)
	return e, nil
}

func scanEvents(rows *sql.Rows) ([]*domain.Event, error) {
	defer rows.Close()
	out := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventRepository) insertLocation(ctx context.Context, l *domain.Location) error {
	return conn(ctx, r.DB).QueryRowContext(ctx,
		`INSERT INTO locations (lat, lon) VALUES ($1, $2) RETURNING id`, l.Lat, l.Lon).Scan(&l.ID)
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	if err := r.insertLocation(ctx, &e.Location); err != nil {
		return fmt.Errorf("insert location: %w", mapError(err))
	}
	query := `
		INSERT INTO events (annotation, category_id, created_on, description, event_date, initiator_id,
		                    location_id, paid, participant_limit, published_on, request_moderation, state, title)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`
	err := conn(ctx, r.DB).QueryRowContext(ctx, query,
		e.Annotation, e.Category.ID, e.CreatedOn.Time, e.Description, e.EventDate.Time, e.Initiator.ID,
		e.Location.ID, e.Paid, e.ParticipantLimit, publishedOnArg(e), e.RequestModeration, string(e.State), e.Title,
	).Scan(&e.ID)
	return mapError(err)
}

func publishedOnArg(e *domain.Event) any {
	if e.PublishedOn == nil {
		return nil
	}
	return e.PublishedOn.Time
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	if e.Location.ID == 0 {
		if err := r.insertLocation(ctx, &e.Location); err != nil {
			return fmt.Errorf("insert location: %w", mapError(err))
		}
	}
	query := `
		UPDATE events
		SET annotation = $1, category_id = $2, description = $3, event_date = $4, location_id = $5,
		    paid = $6, participant_limit = $7, published_on = $8, request_moderation = $9, state = $10, title = $11
		WHERE id = $12
	`
	res, err := conn(ctx, r.DB).ExecContext(ctx, query,
		e.Annotation, e.Category.ID, e.Description, e.EventDate.Time, e.Location.ID,
		e.Paid, e.ParticipantLimit, publishedOnArg(e), e.RequestModeration, string(e.State), e.Title, e.ID,
	)
	if err != nil {
		return mapError(err)
	}
	return expectAffected(res)
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	e, err := scanEvent(conn(ctx, r.DB).QueryRowContext(ctx, eventSelect+` WHERE e.id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return e, nil
}

func (r *eventRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Event, error) {
	e, err := scanEvent(conn(ctx, r.DB).QueryRowContext(ctx, eventSelect+` WHERE e.id = $1 FOR UPDATE OF e`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return e, nil
}

func (r *eventRepository) ListByInitiator(ctx context.Context, initiatorID int64, page domain.PageRequest) ([]*domain.Event, error) {
	rows, err := conn(ctx, r.DB).QueryContext(ctx,
		eventSelect+` WHERE e.initiator_id = $1 ORDER BY e.id LIMIT $2 OFFSET $3`,
		initiatorID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	return scanEvents(rows)
}

func (r *eventRepository) ListByIDs(ctx context.Context, ids []int64) ([]*domain.Event, error) {
	if len(ids) == 0 {
		return []*domain.Event{}, nil
	}
	rows, err := conn(ctx, r.DB).QueryContext(ctx, eventSelect+` WHERE e.id = ANY($1) ORDER BY e.id`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	return scanEvents(rows)
}

// likeEscaper makes ILIKE treat the search text literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search builds the WHERE clause from the non-empty parts of filter.
func (r *eventRepository) Search(ctx context.Context, f domain.EventFilter, page domain.PageRequest) ([]*domain.Event, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Text != "" {
		p := arg("%" + likeEscaper.Replace(f.Text) + "%")
		conds = append(conds, fmt.Sprintf(`(e.annotation ILIKE %s ESCAPE '\' OR e.description ILIKE %s ESCAPE '\')`, p, p))
	}
	if len(f.Categories) > 0 {
		conds = append(conds, "e.category_id = ANY("+arg(pq.Array(f.Categories))+")")
	}
	if f.Paid != nil {
		conds = append(conds, "e.paid = "+arg(*f.Paid))
	}
	if len(f.Users) > 0 {
		conds = append(conds, "e.initiator_id = ANY("+arg(pq.Array(f.Users))+")")
	}
	if len(f.States) > 0 {
		states := make([]string, len(f.States))
		for i, s := range f.States {
			states[i] = string(s)
		}
		conds = append(conds, "e.state = ANY("+arg(pq.Array(states))+")")
	}
	if !f.RangeStart.IsZero() {
		conds = append(conds, "e.event_date >= "+arg(f.RangeStart))
	}
	if !f.RangeEnd.IsZero() {
		conds = append(conds, "e.event_date <= "+arg(f.RangeEnd))
	}
	if f.OnlyAvailable {
		conds = append(conds, "(e.participant_limit = 0 OR e.participant_limit > "+
			"(SELECT COUNT(*) FROM requests r WHERE r.event_id = e.id AND r.status = 'CONFIRMED'))")
	}

	var b strings.Builder
	b.WriteString(eventSelect)
	if len(conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conds, " AND "))
	}
	if f.OrderByDate {
		b.WriteString(" ORDER BY e.event_date, e.id")
	} else {
		b.WriteString(" ORDER BY e.id")
	}
	b.WriteString(" LIMIT " + arg(page.Limit()) + " OFFSET " + arg(page.Offset()))

	rows, err := conn(ctx, r.DB).QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, err
	}
	return scanEvents(rows)
}

func (r *eventRepository) ExistsByCategory(ctx context.Context, categoryID int64) (bool, error) {
	var exists bool
	err := conn(ctx, r.DB).QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM events WHERE category_id = $1)`, categoryID).Scan(&exists)
	return exists, err
}
