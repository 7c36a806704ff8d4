package usecase

import (
	"context"
	"errors"

	"github.com/TonkaCepo7/INF2-ALP-BOOK/application/port/inbound"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/application/port/outbound"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/domain/apperror"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/domain/entity"
)

type BookUseCase struct {
	books outbound.BookRepository
}

func NewBookUseCase(books outbound.BookRepository) *BookUseCase {
	return &BookUseCase{books: books}
}

func (uc *BookUseCase) ListBooks(ctx context.Context) ([]*entity.Book, error) {
	books, err := uc.books.FindAll(ctx)
	if err != nil {
		return nil, apperror.StoreError(err)
	}
	return books, nil
}

func (uc *BookUseCase) GetBook(ctx context.Context, id int64) (*entity.Book, error) {
	book, err := uc.books.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, outbound.ErrBookNotFound) {
			return nil, apperror.BookNotFound()
		}
		return nil, apperror.StoreError(err)
	}
	return book, nil
}

func (uc *BookUseCase) CreateBook(ctx context.Context, req inbound.BookRequest) (*entity.Book, error) {
	book := &entity.Book{
		Title:         req.Title,
		AuthorID:      req.AuthorID,
		PublishedYear: req.PublishedYear,
		Category:      req.Category,
	}
	id, err := uc.books.Create(ctx, book)
	if err != nil {
		return nil, apperror.StoreError(err)
	}
	book.ID = id
	return book, nil
}

func (uc *BookUseCase) UpdateBook(ctx context.Context, id int64, req inbound.BookRequest) error {
	book := &entity.Book{
		ID:            id,
		Title:         req.Title,
		AuthorID:      req.AuthorID,
		PublishedYear: req.PublishedYear,
		Category:      req.Category,
	}
	if err := uc.books.Update(ctx, book); err != nil {
		if errors.Is(err, outbound.ErrBookNotFound) {
			return apperror.BookNotFound()
		}
		return apperror.StoreError(err)
	}
	return nil
}

func (uc *BookUseCase) DeleteBook(ctx context.Context, id int64) error {
	if err := uc.books.Delete(ctx, id); err != nil {
		if errors.Is(err, outbound.ErrBookNotFound) {
			return apperror.BookNotFound()
		}
		return apperror.StoreError(err)
	}
	return nil
}
