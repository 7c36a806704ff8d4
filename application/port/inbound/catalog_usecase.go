package inbound

import (
	"context"

	"github.com/TonkaCepo7/INF2-ALP-BOOK/domain/entity"
)

type BookRequest struct {
	Title         string `json:"title"`
	AuthorID      int64  `json:"author_id"`
	PublishedYear int    `json:"published_year"`
	Category      string `json:"category"`
}

type BookUseCase interface {
	ListBooks(ctx context.Context) ([]*entity.Book, error)
	GetBook(ctx context.Context, id int64) (*entity.Book, error)
	CreateBook(ctx context.Context, req BookRequest) (*entity.Book, error)
	UpdateBook(ctx context.Context, id int64, req BookRequest) error
	DeleteBook(ctx context.Context, id int64) error
}

type AuthorRequest struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

type AuthorUseCase interface {
	ListAuthors(ctx context.Context) ([]*entity.Author, error)
	GetAuthor(ctx context.Context, id int64) (*entity.Author, error)
	CreateAuthor(ctx context.Context, req AuthorRequest) (*entity.Author, error)
	UpdateAuthor(ctx context.Context, id int64, req AuthorRequest) error
	DeleteAuthor(ctx context.Context, id int64) error
}
