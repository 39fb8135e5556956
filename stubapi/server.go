// Package stubapi is a local development stand-in for the dashboard backend
// API: it implements the identity endpoints the shell consumes, backed by a
// handful of seeded accounts. Not for production use.
package stubapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Trading-auto-pilot/astra-web-sub001/identity"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

const tokenTTL = 8 * time.Hour

// Server implements the backend's /api/login and /api/profile contract.
type Server struct {
	mux    *http.ServeMux
	secret []byte
	issuer string
	users  map[string]User // keyed by email
	log    zerolog.Logger
}

// New creates a stub backend signing tokens with secret.
func New(secret []byte, users []User, log zerolog.Logger) *Server {
	s := &Server{
		mux:    http.NewServeMux(),
		secret: secret,
		issuer: "astra-stubapi",
		users:  make(map[string]User, len(users)),
		log:    log,
	}
	for _, u := range users {
		s.users[u.Email] = u
	}
	s.mux.HandleFunc("POST /api/login", s.loginHandler)
	s.mux.HandleFunc("GET /api/profile", s.profileHandler)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) loginHandler(w http.ResponseWriter, r *http.Request) {
	var creds identity.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "malformed login request")
		return
	}

	user, ok := s.users[creds.Email]
	if !ok || !CheckPasswordHash(creds.Password, user.PasswordHash) {
		s.log.Warn().Str("email", creds.Email).Msg("login rejected")
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := s.createToken(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "token creation failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"token":    token,
		"username": user.Name,
	})
}

func (s *Server) profileHandler(w http.ResponseWriter, r *http.Request) {
	email, err := s.authenticate(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	user, ok := s.users[email]
	if !ok {
		writeError(w, http.StatusUnauthorized, "unknown subject")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"username":         user.Name,
		"clientNavigation": user.Navigation,
	})
}

// createToken mints a signed HS256 token for user.
func (s *Server) createToken(user User) (string, error) {
	claims := jwtlib.MapClaims{
		"iss": s.issuer,
		"sub": user.Email,
		"iat": NowTimeFunc().Unix(),
		"exp": NowTimeFunc().Add(tokenTTL).Unix(),
		"jti": uuid.New().String(),
	}
	return jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(s.secret)
}

// authenticate extracts and validates the Bearer token, returning the
// subject email.
func (s *Server) authenticate(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("missing Authorization header")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", fmt.Errorf("invalid Authorization header format")
	}

	parsed, err := jwtlib.Parse(parts[1], func(t *jwtlib.Token) (any, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwtlib.WithIssuer(s.issuer), jwtlib.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("invalid token")
	}
	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", fmt.Errorf("invalid token")
	}
	return sub, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
