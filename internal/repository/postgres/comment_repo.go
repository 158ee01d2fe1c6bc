package postgres

import (
	"context"
	"database/sql"
	"time"

	"explorewithme/internal/domain"
)

type commentRepository struct {
	DB *sql.DB
}

func NewCommentRepository(db *sql.DB) domain.CommentRepository {
	return &commentRepository{DB: db}
}

const commentSelect = `
		SELECT c.id, c.author_id, u.name, c.event_id, c.text, c.created_date, c.updated_date
		FROM comments c
		JOIN users u ON u.id = c.author_id`

func scanComment(s rowScanner) (*domain.Comment, error) {
	c := &domain.Comment{}
	var created time.Time
	var updated sql.NullTime
	if err := s.Scan(&c.ID, &c.AuthorID, &c.AuthorName, &c.EventID, &c.Text, &created, &updated); err != nil {
		return nil, err
	}
	c.CreatedDate = domain.NewDateTime(localWall(created))
	if updated.Valid {
		u := domain.NewDateTime(localWall(updated.Time))
		c.UpdatedDate = &u
	}
	return c, nil
}

func scanComments(rows *sql.Rows) ([]*domain.Comment, error) {
	defer rows.Close()
	out := make([]*domain.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *commentRepository) Create(ctx context.Context, c *domain.Comment) error {
	query := `
		INSERT INTO comments (author_id, event_id, text, created_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := conn(ctx, r.DB).QueryRowContext(ctx, query, c.AuthorID, c.EventID, c.Text, c.CreatedDate.Time).Scan(&c.ID)
	return mapError(err)
}

func (r *commentRepository) Update(ctx context.Context, c *domain.Comment) error {
	var updated any
	if c.UpdatedDate != nil {
		updated = c.UpdatedDate.Time
	}
	res, err := conn(ctx, r.DB).ExecContext(ctx,
		`UPDATE comments SET text = $1, updated_date = $2 WHERE id = $3`, c.Text, updated, c.ID)
	if err != nil {
		return mapError(err)
	}
	return expectAffected(res)
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	c, err := scanComment(conn(ctx, r.DB).QueryRowContext(ctx, commentSelect+` WHERE c.id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return c, nil
}

func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	res, err := conn(ctx, r.DB).ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	return expectAffected(res)
}

func (r *commentRepository) ListByAuthor(ctx context.Context, authorID int64, asc bool, page domain.PageRequest) ([]*domain.Comment, error) {
	order := ` ORDER BY c.created_date DESC, c.id DESC`
	if asc {
		order = ` ORDER BY c.created_date, c.id`
	}
	rows, err := conn(ctx, r.DB).QueryContext(ctx,
		commentSelect+` WHERE c.author_id = $1`+order+` LIMIT $2 OFFSET $3`, authorID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	return scanComments(rows)
}

func (r *commentRepository) ListByEvent(ctx context.Context, eventID int64, page domain.PageRequest) ([]*domain.Comment, error) {
	rows, err := conn(ctx, r.DB).QueryContext(ctx,
		commentSelect+` WHERE c.event_id = $1 ORDER BY c.created_date, c.id LIMIT $2 OFFSET $3`,
		eventID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	return scanComments(rows)
}
