// Package api is the HTTP front of the museum: a chi router, its
// middleware and one handler per resource group. Every response except
// /health and /metrics uses the utils.APIResponse envelope.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/Jasch-M/asyncmuseum/internal/logger"
	"github.com/Jasch-M/asyncmuseum/internal/metrics"
	"github.com/Jasch-M/asyncmuseum/internal/models"
	"github.com/Jasch-M/asyncmuseum/internal/museum"
	"github.com/Jasch-M/asyncmuseum/internal/utils"
)

const maxBodyBytes = 1 << 20

const (
	msgInvalidID       = "Invalid ID format"
	msgInvalidBody     = "Invalid request body"
	msgInvalidDate     = "Invalid date format, expected YYYY-MM-DD"
	msgInternalError   = "Internal server error"
	msgNotImplemented  = "Not implemented yet"
	msgExhibitNotFound = "Exhibit not found"
	msgEventNotFound   = "Event not found"
	msgContactNotFound = "Contact submission not found"
)

// Pinger reports whether the database answers.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	Exhibits    *museum.ExhibitService
	Events      *museum.EventService
	VisitorInfo *museum.VisitorInfoService
	Auth        *museum.AuthService
	Contact     *museum.ContactService

	DB      Pinger
	Logger  *logger.Logger
	Metrics *metrics.Metrics

	validate *validator.Validate
}

func NewHandler(
	exhibits *museum.ExhibitService,
	events *museum.EventService,
	visitorInfo *museum.VisitorInfoService,
	authService *museum.AuthService,
	contact *museum.ContactService,
	db Pinger,
	log *logger.Logger,
	m *metrics.Metrics,
) *Handler {
	return &Handler{
		Exhibits:    exhibits,
		Events:      events,
		VisitorInfo: visitorInfo,
		Auth:        authService,
		Contact:     contact,
		DB:          db,
		Logger:      log,
		Metrics:     m,
		validate:    newValidator(),
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// parseID reads the {id} path parameter. Ids are non-negative integers.
func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

// decodeBody reads a JSON body into dst and validates it. On failure the
// 400 response has already been written and false is returned.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, models.ErrInvalidDate) {
			utils.WriteError(w, http.StatusBadRequest, msgInvalidDate)
			return false
		}
		utils.WriteError(w, http.StatusBadRequest, msgInvalidBody)
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		utils.WriteError(w, http.StatusBadRequest, fmt.Sprintf("%s: %s", msgInvalidBody, describeValidation(err)))
		return false
	}
	return true
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		// Drop the struct name: "VisitorInfo.contact.phone" -> "contact.phone".
		field := fe.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", field))
		case "max":
			parts = append(parts, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s failed %s", field, fe.Tag()))
		}
	}
	return strings.Join(parts, ", ")
}

// writeServiceError maps a service error onto the error envelope. Storage
// details stay in the log.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, museum.ErrNotFound) && notFoundMsg != "":
		utils.WriteError(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, museum.ErrInvalidDate):
		utils.WriteError(w, http.StatusBadRequest, msgInvalidDate)
	case errors.Is(err, museum.ErrInvalidAmount):
		utils.WriteError(w, http.StatusBadRequest, fmt.Sprintf("%s: %v", msgInvalidBody, err))
	default:
		h.Logger.Error("API", fmt.Sprintf("%s %s: %v", r.Method, r.URL.Path, err))
		utils.WriteError(w, http.StatusInternalServerError, msgInternalError)
	}
}
