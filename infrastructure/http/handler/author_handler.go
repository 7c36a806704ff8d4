package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/TonkaCepo7/INF2-ALP-BOOK/application/port/inbound"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/domain/entity"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/infrastructure/http/middleware"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/infrastructure/http/response"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/infrastructure/http/validator"
)

type AuthorHandler struct {
	authorUseCase inbound.AuthorUseCase
	auth          *middleware.AuthMiddleware
}

func NewAuthorHandler(authorUseCase inbound.AuthorUseCase, auth *middleware.AuthMiddleware) *AuthorHandler {
	return &AuthorHandler{authorUseCase: authorUseCase, auth: auth}
}

func (h *AuthorHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/authors", h.ListAuthors).Methods("GET")
	router.HandleFunc("/api/authors/{id}", h.GetAuthor).Methods("GET")
	router.HandleFunc("/api/authors", h.auth.RequireRole(entity.RoleAdmin, h.CreateAuthor)).Methods("POST")
	router.HandleFunc("/api/authors/{id}", h.auth.RequireRole(entity.RoleAdmin, h.UpdateAuthor)).Methods("PUT")
	router.HandleFunc("/api/authors/{id}", h.auth.RequireRole(entity.RoleAdmin, h.DeleteAuthor)).Methods("DELETE")
}

func (h *AuthorHandler) ListAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.authorUseCase.ListAuthors(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}
	if authors == nil {
		authors = []*entity.Author{}
	}
	response.JSON(w, http.StatusOK, authors)
}

func (h *AuthorHandler) GetAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	author, err := h.authorUseCase.GetAuthor(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, author)
}

func (h *AuthorHandler) CreateAuthor(w http.ResponseWriter, r *http.Request) {
	var req inbound.AuthorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if !validator.ValidateRequired(req.Name) {
		response.UnprocessableEntity(w, "Name is required")
		return
	}

	author, err := h.authorUseCase.CreateAuthor(r.Context(), req)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, author)
}

func (h *AuthorHandler) UpdateAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req inbound.AuthorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if !validator.ValidateRequired(req.Name) {
		response.UnprocessableEntity(w, "Name is required")
		return
	}

	if err := h.authorUseCase.UpdateAuthor(r.Context(), id, req); err != nil {
		response.FromError(w, err)
		return
	}
	response.Message(w, http.StatusOK, "Author updated")
}

func (h *AuthorHandler) DeleteAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.authorUseCase.DeleteAuthor(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}
	response.Message(w, http.StatusOK, "Author deleted")
}
