package server

import (
	"encoding/json"
	"net/http"

	"github.com/Trading-auto-pilot/astra-web-sub001/identity"
	"github.com/Trading-auto-pilot/astra-web-sub001/routes"
)

// StateHandler returns the render-boundary snapshot: the active route, the
// checking flag, the display name and the navigation entries.
func (s *Server) StateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.guard.Snapshot())
	}
}

// NavigateRequest is a user-initiated navigation request. Fragment is a raw
// location fragment; it is resolved before the guard runs.
type NavigateRequest struct {
	Fragment string `json:"fragment"`
}

// NavigateHandler resolves the posted fragment and drives the guard. The
// response carries the snapshot after the navigation settled.
func (s *Server) NavigateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req NavigateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "malformed navigate request")
			return
		}

		target := routes.Resolve(req.Fragment)
		s.guard.Navigate(r.Context(), target, false)
		writeJSON(w, http.StatusOK, s.guard.Snapshot())
	}
}

// LoginRequest carries the login form fields.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

// LoginHandler authenticates against the backend and, on success, navigates
// to the dashboard. Rejected credentials surface as 401 with the backend's
// message.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "malformed login request")
			return
		}

		creds := identity.Credentials{Email: req.Email, Password: req.Password}
		if err := s.guard.Login(r.Context(), creds, req.Remember); err != nil {
			s.log.Warn().Err(err).Str("email", req.Email).Msg("login failed")
			if identity.IsAuthError(err) {
				writeError(w, http.StatusUnauthorized, err.Error())
				return
			}
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, s.guard.Snapshot())
	}
}

// LogoutHandler tears down the session and reports the resulting snapshot.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.guard.Logout()
		writeJSON(w, http.StatusOK, s.guard.Snapshot())
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
