// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/studyquest/backend/internal/leaderboard"
	"github.com/studyquest/backend/internal/mentor"
	"github.com/studyquest/backend/internal/service"
	"github.com/studyquest/backend/internal/store"
)

const (
	msgUserNotFound       = "User not found. Please register first."
	msgUserRequired       = "user is required."
	msgInternal           = "internal error"
	maxBodyBytes    int64 = 1 << 20
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	store       store.Store
	mentor      *mentor.Mentor
	battles     *service.Battles
	progression *service.Progression
	ranker      leaderboard.Ranker
	validate    *validator.Validate
	logger      *slog.Logger
}

type Deps struct {
	Store       store.Store
	Mentor      *mentor.Mentor
	Battles     *service.Battles
	Progression *service.Progression
	Ranker      leaderboard.Ranker
	Logger      *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(d Deps) *Handler {
	return &Handler{
		store:       d.Store,
		mentor:      d.Mentor,
		battles:     d.Battles,
		progression: d.Progression,
		ranker:      d.Ranker,
		validate:    newValidator(),
		logger:      d.Logger,
	}
}

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// newValidator reports field names as they appear in JSON and knows the
// "username" rule.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Detail string `json:"detail" example:"User not found. Please register first."`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, ErrorResponse{Detail: detail})
}

// handleStoreError checks for common store errors and writes the appropriate
// HTTP response. Returns true if an error was handled (caller should return).
func (h *Handler) handleStoreError(w http.ResponseWriter, err error, notFound string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, notFound)
		return true
	}
	if errors.Is(err, store.ErrConflict) {
		respondError(w, http.StatusConflict, "Resource already exists.")
		return true
	}
	h.logger.Error("store error", "error", err)
	respondError(w, http.StatusInternalServerError, msgInternal)
	return true
}

// decodeJSON decodes a JSON body into v, writing a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// validateRequest runs the struct's validate tags, writing a 400 listing
// every failed field.
func (h *Handler) validateRequest(w http.ResponseWriter, v any) bool {
	err := h.validate.Struct(v)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		h.logger.Error("validation error", "error", err)
		respondError(w, http.StatusInternalServerError, msgInternal)
		return false
	}

	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		msgs[i] = fe.Field() + ": " + rule
	}
	respondError(w, http.StatusBadRequest, strings.Join(msgs, "; "))
	return false
}

// requireUser loads the named user or writes a 400/404.
func (h *Handler) requireUser(w http.ResponseWriter, r *http.Request, username string) (*store.User, bool) {
	if username == "" {
		respondError(w, http.StatusBadRequest, msgUserRequired)
		return nil, false
	}
	u, err := h.store.GetUser(r.Context(), username)
	if h.handleStoreError(w, err, msgUserNotFound) {
		return nil, false
	}
	return u, true
}
