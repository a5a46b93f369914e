package mockapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/muurk/authdeck/internal/authapi"
	"github.com/muurk/authdeck/internal/logging"
	"github.com/muurk/authdeck/internal/urls"
	"github.com/muurk/authdeck/internal/version"
)

// Response messages
const (
	MsgRegistered         = "User registered successfully"
	MsgLoggedIn           = "Login successful"
	MsgEmailTaken         = "Email already exists"
	MsgInvalidCredentials = "Invalid credentials"
	MsgInvalidBody        = "Invalid request body"
	MsgMissingFields      = "All fields are required"
	MsgPasswordTooLong    = "Password must be at most 72 bytes"
	MsgInternal           = "Internal server error"
)

// maxRequestBody caps how much of a request body is decoded.
const maxRequestBody = 64 << 10

// NewRouter builds the HTTP routes over store.
func NewRouter(store *Store) *mux.Router {
	h := &handlers{store: store}

	r := mux.NewRouter()
	r.Use(logRequests)
	r.HandleFunc(urls.RegisterPath, h.register).Methods(http.MethodPost)
	r.HandleFunc(urls.LoginPath, h.login).Methods(http.MethodPost)
	r.HandleFunc(urls.HealthPath, h.health).Methods(http.MethodGet)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "Not found"})
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"message": "Method not allowed"})
	})
	return r
}

type handlers struct {
	store *Store
}

func (h *handlers) register(w http.ResponseWriter, r *http.Request) {
	var req authapi.RegisterRequest
	if !decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": MsgMissingFields})
		return
	}

	user, err := h.store.Create(req.Username, req.Email, req.Password)
	switch {
	case errors.Is(err, ErrEmailTaken):
		writeJSON(w, http.StatusConflict, map[string]any{"message": MsgEmailTaken})
		return
	case errors.Is(err, ErrPasswordTooLong):
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": MsgPasswordTooLong})
		return
	case err != nil:
		logging.Error("Failed to create user", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": MsgInternal})
		return
	}

	logging.Info("User registered", zap.String("id", user.ID), zap.String("username", user.Username))
	writeJSON(w, http.StatusCreated, map[string]any{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"message":  MsgRegistered,
	})
}

func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	var req authapi.LoginRequest
	if !decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": MsgMissingFields})
		return
	}

	user, err := h.store.Authenticate(req.Email, req.Password)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"message": MsgInvalidCredentials})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token":   h.store.IssueToken(user),
		"message": MsgLoggedIn,
		"user": map[string]any{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": version.Version,
		"users":   h.store.Count(),
	})
}

// decode reads a JSON body into v, answering 400 itself on failure.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(v); err != nil {
		logging.Debug("Rejected request body", zap.String("path", r.URL.Path), zap.Error(err))
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": MsgInvalidBody})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("Failed to write response", zap.Error(err))
	}
}

// statusRecorder remembers the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logging.LogHTTPRequest(r.RemoteAddr, r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
