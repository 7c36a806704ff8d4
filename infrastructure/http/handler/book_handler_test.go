package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/TonkaCepo7/INF2-ALP-BOOK/application/port/inbound"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/application/port/outbound"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/domain/apperror"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/domain/entity"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/infrastructure/http/middleware"
)

type mockBookUseCase struct {
	mock.Mock
}

func (m *mockBookUseCase) ListBooks(ctx context.Context) ([]*entity.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Book), args.Error(1)
}

func (m *mockBookUseCase) GetBook(ctx context.Context, id int64) (*entity.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Book), args.Error(1)
}

func (m *mockBookUseCase) CreateBook(ctx context.Context, req inbound.BookRequest) (*entity.Book, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Book), args.Error(1)
}

func (m *mockBookUseCase) UpdateBook(ctx context.Context, id int64, req inbound.BookRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func (m *mockBookUseCase) DeleteBook(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newBookRouter(useCase inbound.BookUseCase, role entity.Role) (*mux.Router, string) {
	tokens := &stubTokenService{
		valid: "good-token",
		claims: outbound.TokenClaims{
			UserID:   1,
			Username: "tester",
			Role:     role,
		},
	}
	router := mux.NewRouter()
	NewBookHandler(useCase, middleware.NewAuthMiddleware(tokens)).RegisterRoutes(router)
	return router, tokens.valid
}

func TestBookHandler_ListBooks(t *testing.T) {
	t.Run("returns books without a token", func(t *testing.T) {
		useCase := new(mockBookUseCase)
		useCase.On("ListBooks", mock.Anything).Return([]*entity.Book{
			{ID: 1, Title: "Dune", AuthorID: 2, PublishedYear: 1965, Category: "science fiction"},
		}, nil)
		router, _ := newBookRouter(useCase, entity.RoleUser)

		req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`[{"id":1,"title":"Dune","author_id":2,"published_year":1965,"category":"science fiction"}]`,
			rec.Body.String())
	})

	t.Run("empty catalog returns an empty array", func(t *testing.T) {
		useCase := new(mockBookUseCase)
		useCase.On("ListBooks", mock.Anything).Return([]*entity.Book(nil), nil)
		router, _ := newBookRouter(useCase, entity.RoleUser)

		req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestBookHandler_GetBook(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		useCase := new(mockBookUseCase)
		useCase.On("GetBook", mock.Anything, int64(5)).Return(&entity.Book{
			ID: 5, Title: "Dune", AuthorID: 2, PublishedYear: 1965, Category: "science fiction",
		}, nil)
		router, _ := newBookRouter(useCase, entity.RoleUser)

		req := httptest.NewRequest(http.MethodGet, "/api/books/5", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		useCase.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		useCase := new(mockBookUseCase)
		useCase.On("GetBook", mock.Anything, int64(99)).Return(nil, apperror.BookNotFound())
		router, _ := newBookRouter(useCase, entity.RoleUser)

		req := httptest.NewRequest(http.MethodGet, "/api/books/99", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Book not found"}`, rec.Body.String())
	})

	t.Run("non-numeric id", func(t *testing.T) {
		useCase := new(mockBookUseCase)
		router, _ := newBookRouter(useCase, entity.RoleUser)

		req := httptest.NewRequest(http.MethodGet, "/api/books/abc", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid id"}`, rec.Body.String())
		useCase.AssertNotCalled(t, "GetBook")
	})
}

func TestBookHandler_CreateBook(t *testing.T) {
	body := `{"title":"Dune","author_id":2,"published_year":1965,"category":"science fiction"}`

	t.Run("admin can create", func(t *testing.T) {
		useCase := new(mockBookUseCase)
		useCase.On("CreateBook", mock.Anything, inbound.BookRequest{
			Title:         "Dune",
			AuthorID:      2,
			PublishedYear: 1965,
			Category:      "science fiction",
		}).Return(&entity.Book{
			ID: 10, Title: "Dune", AuthorID: 2, PublishedYear: 1965, Category: "science fiction",
		}, nil)
		router, token := newBookRouter(useCase, entity.RoleAdmin)

		req := httptest.NewRequest(http.MethodPost, "/api/books", bytes.NewBufferString(body))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		useCase.AssertExpectations(t)
	})

	t.Run("regular user is forbidden", func(t *testing.T) {
		useCase := new(mockBookUseCase)
		router, token := newBookRouter(useCase, entity.RoleUser)

		req := httptest.NewRequest(http.MethodPost, "/api/books", bytes.NewBufferString(body))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"error":"Forbidden: insufficient permissions"}`, rec.Body.String())
		useCase.AssertNotCalled(t, "CreateBook")
	})

	t.Run("anonymous is unauthorized", func(t *testing.T) {
		useCase := new(mockBookUseCase)
		router, _ := newBookRouter(useCase, entity.RoleAdmin)

		req := httptest.NewRequest(http.MethodPost, "/api/books", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"No token provided"}`, rec.Body.String())
		useCase.AssertNotCalled(t, "CreateBook")
	})

	t.Run("missing title", func(t *testing.T) {
		useCase := new(mockBookUseCase)
		router, token := newBookRouter(useCase, entity.RoleAdmin)

		req := httptest.NewRequest(http.MethodPost, "/api/books", bytes.NewBufferString(`{"category":"unknown"}`))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.JSONEq(t, `{"error":"Title is required"}`, rec.Body.String())
		useCase.AssertNotCalled(t, "CreateBook")
	})
}

func TestBookHandler_UpdateBook(t *testing.T) {
	t.Run("admin can update", func(t *testing.T) {
		useCase := new(mockBookUseCase)
		useCase.On("UpdateBook", mock.Anything, int64(5), inbound.BookRequest{Title: "Dune Messiah"}).
			Return(nil)
		router, token := newBookRouter(useCase, entity.RoleAdmin)

		req := httptest.NewRequest(http.MethodPut, "/api/books/5", bytes.NewBufferString(`{"title":"Dune Messiah"}`))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Book updated"}`, rec.Body.String())
		useCase.AssertExpectations(t)
	})

	t.Run("update of a missing book", func(t *testing.T) {
		useCase := new(mockBookUseCase)
		useCase.On("UpdateBook", mock.Anything, int64(99), mock.Anything).
			Return(apperror.BookNotFound())
		router, token := newBookRouter(useCase, entity.RoleAdmin)

		req := httptest.NewRequest(http.MethodPut, "/api/books/99", bytes.NewBufferString(`{"title":"Ghost"}`))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Book not found"}`, rec.Body.String())
	})
}

func TestBookHandler_DeleteBook(t *testing.T) {
	t.Run("admin can delete", func(t *testing.T) {
		useCase := new(mockBookUseCase)
		useCase.On("DeleteBook", mock.Anything, int64(5)).Return(nil)
		router, token := newBookRouter(useCase, entity.RoleAdmin)

		req := httptest.NewRequest(http.MethodDelete, "/api/books/5", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Book deleted"}`, rec.Body.String())
		useCase.AssertExpectations(t)
	})

	t.Run("regular user is forbidden", func(t *testing.T) {
		useCase := new(mockBookUseCase)
		router, token := newBookRouter(useCase, entity.RoleUser)

		req := httptest.NewRequest(http.MethodDelete, "/api/books/5", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		useCase.AssertNotCalled(t, "DeleteBook")
	})
}
