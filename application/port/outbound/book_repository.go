package outbound

import (
	"context"
	"errors"

	"github.com/TonkaCepo7/INF2-ALP-BOOK/domain/entity"
)

var ErrBookNotFound = errors.New("book not found")

type BookRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Book, error)
	FindAll(ctx context.Context) ([]*entity.Book, error)
	Create(ctx context.Context, book *entity.Book) (int64, error)
	Update(ctx context.Context, book *entity.Book) error
	Delete(ctx context.Context, id int64) error
}
