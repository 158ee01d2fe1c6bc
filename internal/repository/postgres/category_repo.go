package postgres

import (
	"context"
	"database/sql"

	"explorewithme/internal/domain"
)

type categoryRepository struct {
	DB *sql.DB
}

// NewCategoryRepository returns a domain.CategoryRepository implemented with Postgres.
func NewCategoryRepository(db *sql.DB) domain.CategoryRepository {
	return &categoryRepository{DB: db}
}

func (r *categoryRepository) Create(ctx context.Context, c *domain.Category) error {
	err := conn(ctx, r.DB).QueryRowContext(ctx, `INSERT INTO categories (name) VALUES ($1) RETURNING id`, c.Name).Scan(&c.ID)
	return mapError(err)
}

func (r *categoryRepository) Update(ctx context.Context, c *domain.Category) error {
	res, err := conn(ctx, r.DB).ExecContext(ctx, `UPDATE categories SET name = $1 WHERE id = $2`, c.Name, c.ID)
	if err != nil {
		return mapError(err)
	}
	return expectAffected(res)
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	res, err := conn(ctx, r.DB).ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	return expectAffected(res)
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	c := &domain.Category{}
	err := conn(ctx, r.DB).QueryRowContext(ctx, `SELECT id, name FROM categories WHERE id = $1`, id).Scan(&c.ID, &c.Name)
	if err != nil {
		return nil, mapError(err)
	}
	return c, nil
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	c := &domain.Category{}
	err := conn(ctx, r.DB).QueryRowContext(ctx, `SELECT id, name FROM categories WHERE name = $1`, name).Scan(&c.ID, &c.Name)
	if err != nil {
		return nil, mapError(err)
	}
	return c, nil
}

func (r *categoryRepository) List(ctx context.Context, page domain.PageRequest) ([]*domain.Category, error) {
	rows, err := conn(ctx, r.DB).QueryContext(ctx,
		`SELECT id, name FROM categories ORDER BY id LIMIT $1 OFFSET $2`, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*domain.Category, 0)
	for rows.Next() {
		c := &domain.Category{}
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
