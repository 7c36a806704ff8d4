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

type AuthHandler struct {
	authUseCase inbound.AuthUseCase
	auth        *middleware.AuthMiddleware
	rateLimit   *middleware.RateLimitMiddleware
}

func NewAuthHandler(
	authUseCase inbound.AuthUseCase,
	auth *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		auth:        auth,
		rateLimit:   rateLimit,
	}
}

func (h *AuthHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/auth/register", h.rateLimit.Limit(h.Register)).Methods("POST")
	router.HandleFunc("/api/auth/login", h.rateLimit.Limit(h.Login)).Methods("POST")
	router.HandleFunc("/api/auth/profile", h.auth.RequireAuth(h.Profile)).Methods("GET")
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
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

	role := entity.RoleUser
	if req.Role != "" {
		parsed, err := entity.ParseRole(req.Role)
		if err != nil {
			response.UnprocessableEntity(w, "Invalid role")
			return
		}
		role = parsed
	}

	err := h.authUseCase.Register(r.Context(), inbound.RegisterRequest{
		Username: req.Username,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Message(w, http.StatusCreated, "User registered successfully")
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if !validator.ValidateRequired(req.Username) || !validator.ValidateRequired(req.Password) {
		response.UnprocessableEntity(w, "Username and password are required")
		return
	}

	res, err := h.authUseCase.Login(r.Context(), inbound.LoginRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, LoginResponse{Token: res.Token})
}

func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "No token provided")
		return
	}

	profile, err := h.authUseCase.Profile(r.Context(), claims.UserID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, profile)
}
