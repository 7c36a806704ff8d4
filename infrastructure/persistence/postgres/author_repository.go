package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/TonkaCepo7/INF2-ALP-BOOK/application/port/outbound"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/domain/entity"
)

type authorRepository struct {
	db *sql.DB
}

func NewAuthorRepository(db *sql.DB) outbound.AuthorRepository {
	return &authorRepository{db: db}
}

func (r *authorRepository) FindByID(ctx context.Context, id int64) (*entity.Author, error) {
	query := `
		SELECT id, name, COALESCE(bio, '')
		FROM authors
		WHERE id = $1
	`

	var author entity.Author
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&author.ID,
		&author.Name,
		&author.Bio,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, outbound.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to find author by ID: %w", err)
	}

	return &author, nil
}

func (r *authorRepository) FindAll(ctx context.Context) ([]*entity.Author, error) {
	query := `
		SELECT id, name, COALESCE(bio, '')
		FROM authors
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []*entity.Author
	for rows.Next() {
		var author entity.Author
		if err := rows.Scan(&author.ID, &author.Name, &author.Bio); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, &author)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate authors: %w", err)
	}

	return authors, nil
}

func (r *authorRepository) Create(ctx context.Context, author *entity.Author) (int64, error) {
	query := `
		INSERT INTO authors (name, bio)
		VALUES ($1, $2)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, author.Name, author.Bio).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create author: %w", err)
	}

	author.ID = id
	return id, nil
}

func (r *authorRepository) Update(ctx context.Context, author *entity.Author) error {
	query := `
		UPDATE authors
		SET name = $2, bio = $3
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, author.ID, author.Name, author.Bio)
	if err != nil {
		return fmt.Errorf("failed to update author: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return outbound.ErrAuthorNotFound
	}

	return nil
}

func (r *authorRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return outbound.ErrAuthorNotFound
	}

	return nil
}
