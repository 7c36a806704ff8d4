package usecase

import (
	"context"
	"errors"

	"github.com/TonkaCepo7/INF2-ALP-BOOK/application/port/inbound"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/application/port/outbound"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/domain/apperror"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/domain/entity"
)

type AuthorUseCase struct {
	authors outbound.AuthorRepository
}

func NewAuthorUseCase(authors outbound.AuthorRepository) *AuthorUseCase {
	return &AuthorUseCase{authors: authors}
}

func (uc *AuthorUseCase) ListAuthors(ctx context.Context) ([]*entity.Author, error) {
	authors, err := uc.authors.FindAll(ctx)
	if err != nil {
		return nil, apperror.StoreError(err)
	}
	return authors, nil
}

func (uc *AuthorUseCase) GetAuthor(ctx context.Context, id int64) (*entity.Author, error) {
	author, err := uc.authors.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, outbound.ErrAuthorNotFound) {
			return nil, apperror.AuthorNotFound()
		}
		return nil, apperror.StoreError(err)
	}
	return author, nil
}

func (uc *AuthorUseCase) CreateAuthor(ctx context.Context, req inbound.AuthorRequest) (*entity.Author, error) {
	author := &entity.Author{
		Name: req.Name,
		Bio:  req.Bio,
	}
	id, err := uc.authors.Create(ctx, author)
	if err != nil {
		return nil, apperror.StoreError(err)
	}
	author.ID = id
	return author, nil
}

func (uc *AuthorUseCase) UpdateAuthor(ctx context.Context, id int64, req inbound.AuthorRequest) error {
	author := &entity.Author{
		ID:   id,
		Name: req.Name,
		Bio:  req.Bio,
	}
	if err := uc.authors.Update(ctx, author); err != nil {
		if errors.Is(err, outbound.ErrAuthorNotFound) {
			return apperror.AuthorNotFound()
		}
		return apperror.StoreError(err)
	}
	return nil
}

func (uc *AuthorUseCase) DeleteAuthor(ctx context.Context, id int64) error {
	if err := uc.authors.Delete(ctx, id); err != nil {
		if errors.Is(err, outbound.ErrAuthorNotFound) {
			return apperror.AuthorNotFound()
		}
		return apperror.StoreError(err)
	}
	return nil
}
