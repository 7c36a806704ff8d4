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

// UserHandler exposes the admin-only user CRUD surface.
type UserHandler struct {
	userUseCase inbound.UserManagementUseCase
	auth        *middleware.AuthMiddleware
}

func NewUserHandler(userUseCase inbound.UserManagementUseCase, auth *middleware.AuthMiddleware) *UserHandler {
	return &UserHandler{userUseCase: userUseCase, auth: auth}
}

func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	admin := entity.RoleAdmin
	router.HandleFunc("/api/users", h.auth.RequireRole(admin, h.ListUsers)).Methods("GET")
	router.HandleFunc("/api/users/{id}", h.auth.RequireRole(admin, h.GetUser)).Methods("GET")
	router.HandleFunc("/api/users", h.auth.RequireRole(admin, h.CreateUser)).Methods("POST")
	router.HandleFunc("/api/users/{id}", h.auth.RequireRole(admin, h.UpdateUser)).Methods("PUT")
	router.HandleFunc("/api/users/{id}", h.auth.RequireRole(admin, h.DeleteUser)).Methods("DELETE")
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUseCase.ListUsers(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}
	if users == nil {
		users = []*inbound.UserView{}
	}
	response.JSON(w, http.StatusOK, users)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	user, err := h.userUseCase.GetUser(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, user)
}

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if !validator.ValidateUsername(req.Username) {
		response.UnprocessableEntity(w, "Username must be 3-50 characters")
		return
	}
	if !validator.ValidatePassword(req.Password) {
		response.UnprocessableEntity(w, "Password must be at least 6 characters")
		return
	}
	role, err := entity.ParseRole(req.Role)
	if err != nil {
		response.UnprocessableEntity(w, "Invalid role")
		return
	}

	user, err := h.userUseCase.CreateUser(r.Context(), inbound.CreateUserRequest{
		Username: req.Username,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, user)
}

type updateUserRequest struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if !validator.ValidateUsername(req.Username) {
		response.UnprocessableEntity(w, "Username must be 3-50 characters")
		return
	}
	role, err := entity.ParseRole(req.Role)
	if err != nil {
		response.UnprocessableEntity(w, "Invalid role")
		return
	}

	if err := h.userUseCase.UpdateUser(r.Context(), id, inbound.UpdateUserRequest{
		Username: req.Username,
		Role:     role,
	}); err != nil {
		response.FromError(w, err)
		return
	}
	response.Message(w, http.StatusOK, "User updated")
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.userUseCase.DeleteUser(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}
	response.Message(w, http.StatusOK, "User deleted")
}
