package handlers

import (
	"encoding/json"
	"net/http"

	"glassblog/internal/models"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	// empty credentials surface as a login failure, not a validation error,
	// matching the boolean-shaped auth contract
	ok, err := h.Sessions.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		WriteError(w, "Invalid username or password", http.StatusForbidden)
		return
	}

	current := h.Sessions.Current()
	writeSuccess(w, AuthResponse{Token: current.Token, User: current.User}, http.StatusOK)
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Invalid registration data", http.StatusBadRequest)
		return
	}

	ok, err := h.Sessions.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		WriteError(w, "Username or email already exists", http.StatusConflict)
		return
	}

	writeSuccess(w, MessageResponse{Message: "Registration successful"}, http.StatusCreated)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.Sessions.Logout()

	writeSuccess(w, MessageResponse{Message: "Logged out"}, http.StatusOK)
}

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	current := h.Sessions.Current()
	if !current.IsAuthenticated {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	writeSuccess(w, current.User, http.StatusOK)
}
