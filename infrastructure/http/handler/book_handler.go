package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/TonkaCepo7/INF2-ALP-BOOK/application/port/inbound"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/domain/entity"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/infrastructure/http/middleware"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/infrastructure/http/response"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/infrastructure/http/validator"
)

type BookHandler struct {
	bookUseCase inbound.BookUseCase
	auth        *middleware.AuthMiddleware
}

func NewBookHandler(bookUseCase inbound.BookUseCase, auth *middleware.AuthMiddleware) *BookHandler {
	return &BookHandler{bookUseCase: bookUseCase, auth: auth}
}

// RegisterRoutes wires the book routes. Reads are public; writes require an
// authenticated admin.
func (h *BookHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/books", h.ListBooks).Methods("GET")
	router.HandleFunc("/api/books/{id}", h.GetBook).Methods("GET")
	router.HandleFunc("/api/books", h.auth.RequireRole(entity.RoleAdmin, h.CreateBook)).Methods("POST")
	router.HandleFunc("/api/books/{id}", h.auth.RequireRole(entity.RoleAdmin, h.UpdateBook)).Methods("PUT")
	router.HandleFunc("/api/books/{id}", h.auth.RequireRole(entity.RoleAdmin, h.DeleteBook)).Methods("DELETE")
}

func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookUseCase.ListBooks(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}
	if books == nil {
		books = []*entity.Book{}
	}
	response.JSON(w, http.StatusOK, books)
}

func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	book, err := h.bookUseCase.GetBook(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, book)
}

func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req inbound.BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if !validator.ValidateRequired(req.Title) {
		response.UnprocessableEntity(w, "Title is required")
		return
	}

	book, err := h.bookUseCase.CreateBook(r.Context(), req)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, book)
}

func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req inbound.BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if !validator.ValidateRequired(req.Title) {
		response.UnprocessableEntity(w, "Title is required")
		return
	}

	if err := h.bookUseCase.UpdateBook(r.Context(), id, req); err != nil {
		response.FromError(w, err)
		return
	}
	response.Message(w, http.StatusOK, "Book updated")
}

func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.bookUseCase.DeleteBook(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}
	response.Message(w, http.StatusOK, "Book deleted")
}

// pathID parses the {id} path variable, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "Invalid id")
		return 0, false
	}
	return id, true
}
