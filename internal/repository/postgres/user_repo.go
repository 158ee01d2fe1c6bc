package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"explorewithme/internal/domain"
)

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `
		INSERT INTO users (name, email)
		VALUES ($1, $2)
		RETURNING id
	`
	err := conn(ctx, r.DB).QueryRowContext(ctx, query, u.Name, u.Email).Scan(&u.ID)
	return mapError(err)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT id, name, email
		FROM users
		WHERE id = $1
	`
	u := &domain.User{}
	if err := conn(ctx, r.DB).QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email); err != nil {
		return nil, mapError(err)
	}
	return u, nil
}

func (r *userRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := conn(ctx, r.DB).QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE name = $1)`, name).Scan(&exists)
	return exists, err
}

func (r *userRepository) List(ctx context.Context, ids []int64, page domain.PageRequest) ([]*domain.User, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if len(ids) == 0 {
		rows, err = conn(ctx, r.DB).QueryContext(ctx,
			`SELECT id, name, email FROM users ORDER BY id LIMIT $1 OFFSET $2`,
			page.Limit(), page.Offset())
	} else {
		rows, err = conn(ctx, r.DB).QueryContext(ctx,
			`SELECT id, name, email FROM users WHERE id = ANY($1) ORDER BY id LIMIT $2 OFFSET $3`,
			pq.Array(ids), page.Limit(), page.Offset())
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		u := &domain.User{}
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	res, err := conn(ctx, r.DB).ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	return expectAffected(res)
}
