package outbound

import (
	"context"
	"errors"

	"github.com/TonkaCepo7/INF2-ALP-BOOK/domain/entity"
)

var ErrAuthorNotFound = errors.New("author not found")

type AuthorRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Author, error)
	FindAll(ctx context.Context) ([]*entity.Author, error)
	Create(ctx context.Context, author *entity.Author) (int64, error)
	Update(ctx context.Context, author *entity.Author) error
	Delete(ctx context.Context, id int64) error
}
