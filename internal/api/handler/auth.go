package handler

import (
	"encoding/json"
	"net/http"

	"github.com/astralfront/supremacy/internal/api/middleware"
	"github.com/astralfront/supremacy/internal/api/request"
	"github.com/astralfront/supremacy/internal/api/response"
	"github.com/astralfront/supremacy/internal/services/credential"
)

// AuthHandler handles signup, login and token refresh
type AuthHandler struct {
	credentialService *credential.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(credentialService *credential.Service) *AuthHandler {
	return &AuthHandler{
		credentialService: credentialService,
	}
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	clientID := middleware.GetClientID(r.Context())
	pair, err := h.credentialService.Signup(r.Context(), req.Username, req.Password, clientID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.TokenPairFromModel(pair))
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	clientID := middleware.GetClientID(r.Context())
	pair, err := h.credentialService.Login(r.Context(), req.Username, req.Password, clientID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.TokenPairFromModel(pair))
}

// Refresh handles POST /api/auth/refresh
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req request.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.RefreshToken == "" {
		WriteError(w, NewInvalidRequestError("refreshToken is required"))
		return
	}

	clientID := middleware.GetClientID(r.Context())
	pair, err := h.credentialService.Refresh(r.Context(), req.RefreshToken, clientID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TokenPairFromModel(pair))
}
