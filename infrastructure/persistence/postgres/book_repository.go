package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/TonkaCepo7/INF2-ALP-BOOK/application/port/outbound"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/domain/entity"
)

type bookRepository struct {
	db *sql.DB
}

func NewBookRepository(db *sql.DB) outbound.BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) FindByID(ctx context.Context, id int64) (*entity.Book, error) {
	query := `
		SELECT id, title, COALESCE(author_id, 0), COALESCE(published_year, 0), COALESCE(category, '')
		FROM books
		WHERE id = $1
	`

	var book entity.Book
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&book.ID,
		&book.Title,
		&book.AuthorID,
		&book.PublishedYear,
		&book.Category,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, outbound.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to find book by ID: %w", err)
	}

	return &book, nil
}

func (r *bookRepository) FindAll(ctx context.Context) ([]*entity.Book, error) {
	query := `
		SELECT id, title, COALESCE(author_id, 0), COALESCE(published_year, 0), COALESCE(category, '')
		FROM books
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []*entity.Book
	for rows.Next() {
		var book entity.Book
		err := rows.Scan(
			&book.ID,
			&book.Title,
			&book.AuthorID,
			&book.PublishedYear,
			&book.Category,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, &book)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate books: %w", err)
	}

	return books, nil
}

func (r *bookRepository) Create(ctx context.Context, book *entity.Book) (int64, error) {
	// NULLIF keeps the FK satisfied when no author is supplied.
	query := `
		INSERT INTO books (title, author_id, published_year, category)
		VALUES ($1, NULLIF($2, 0), $3, $4)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		book.Title,
		book.AuthorID,
		book.PublishedYear,
		book.Category,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create book: %w", err)
	}

	book.ID = id
	return id, nil
}

func (r *bookRepository) Update(ctx context.Context, book *entity.Book) error {
	query := `
		UPDATE books
		SET title = $2, author_id = NULLIF($3, 0), published_year = $4, category = $5
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		book.ID,
		book.Title,
		book.AuthorID,
		book.PublishedYear,
		book.Category,
	)
	if err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return outbound.ErrBookNotFound
	}

	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return outbound.ErrBookNotFound
	}

	return nil
}
