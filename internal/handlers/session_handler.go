// File: internal/handlers/session_handler.go
package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/graceworks/churchos/internal/dtos"
	"github.com/graceworks/churchos/internal/services"
)

// SessionHandler issues sessions: login with existing credentials and
// registration through invitation codes.
type SessionHandler struct {
	authService *services.AuthService
}

func NewSessionHandler(authService *services.AuthService) *SessionHandler {
	return &SessionHandler{authService: authService}
}

// Create handles POST /api/session.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.SessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	usr, token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		log.Printf("[SessionHandler] Login error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	h.setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, dtos.SessionResponse{
		Token: token,
		User:  dtos.NewUserResponse(usr),
	})
}

// Register handles POST /api/register: invitation code redemption.
func (h *SessionHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	usr, token, err := h.authService.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvitationInvalid):
			writeError(w, http.StatusForbidden, "Invitation code is invalid or expired")
		case errors.Is(err, services.ErrEmailTaken):
			writeError(w, http.StatusConflict, "Email is already registered")
		default:
			log.Printf("[SessionHandler] Registration error: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to register")
		}
		return
	}

	h.setSessionCookie(w, token)
	writeJSON(w, http.StatusCreated, dtos.SessionResponse{
		Token: token,
		User:  dtos.NewUserResponse(usr),
	})
}

// setSessionCookie mirrors the token into a cookie so the WebSocket
// upgrade, which cannot carry an Authorization header from a browser,
// can still authenticate.
func (h *SessionHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		Secure:   true,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
}
