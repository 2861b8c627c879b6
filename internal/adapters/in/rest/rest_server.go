package rest

import (
	"area-api/internal/adapters/out/metrics"
	"area-api/internal/app/config"
	"area-api/internal/app/ports"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"area-api/internal/adapters/in/rest/openapi" // generated

	"github.com/rs/zerolog"
)

type DefaultRestServer struct {
	apis          ports.ApiServer
	restCfg       config.HttpServerConfig
	authenticator ports.Authenticator
	actionMetrics ports.ActionMetrics
	startTime     time.Time
}

// Enforce compile-time conformance to a generated interface
var _ openapi.ServerInterface = (*DefaultRestServer)(nil)

func NewRestServer(cfg config.HttpServerConfig, apiServer ports.ApiServer, authenticator ports.Authenticator, metrics ports.ActionMetrics) (*DefaultRestServer, error) {
	if apiServer == nil || authenticator == nil || metrics == nil {
		return nil, errors.New("rest server needs an api server, an authenticator and action metrics")
	}
	return &DefaultRestServer{
		restCfg:       cfg,
		apis:          apiServer,
		authenticator: authenticator,
		actionMetrics: metrics,
		startTime:     time.Now().UTC(),
	}, nil
}

// Close releases the resources held by the api server. Call it once the HTTP listeners are drained.
func (s *DefaultRestServer) Close() error {
	return s.apis.Close()
}

func (s *DefaultRestServer) Health(w http.ResponseWriter, r *http.Request) {
	err := s.apis.HealthCheck(r.Context())
	if err == nil {
		writeJSON(w, http.StatusOK, openapi.HealthStatusResponseBody{
			Banner:    s.restCfg.Banner,
			Reason:    nil,
			StartedAt: s.startTime,
			Healthy:   true,
			UptimeSec: int64(time.Since(s.startTime).Seconds()),
		})
		return
	}
	writeJSON(w, http.StatusServiceUnavailable, openapi.HealthStatusResponseBody{
		Banner:    s.restCfg.Banner,
		Reason:    ptr(err.Error()),
		StartedAt: s.startTime,
		Healthy:   false,
		UptimeSec: int64(time.Since(s.startTime).Seconds()),
	})
}

// "Areas" endpoints: rest_server_areas.go
// "AreaDevices" endpoints: rest_server_area_devices.go
// "AreaImages" endpoints: rest_server_images.go
// "Projects" endpoints: rest_server_projects.go
// "Devices" endpoints: rest_server_devices.go

// begin authenticates the API client and starts measuring the action.
func (s *DefaultRestServer) begin(w http.ResponseWriter, r *http.Request, action string) (ports.Principal, *metrics.AreaAction, bool) {
	aa := metrics.NewAreaAction(action)
	p, err := s.authenticator.Verify(r)
	if err != nil {
		s.actionMetrics.OnActionDone(aa.Done(ports.MAResultUnauthorizedApiClient))
		writeAuthError(w, r, err)
		return ports.Principal{}, nil, false
	}
	return p, aa.For(p), true
}

func (s *DefaultRestServer) done(aa *metrics.AreaAction, err error) {
	s.actionMetrics.OnActionDone(aa.DoneFromError(err))
}

// fail records the failed action and writes the mapped error response.
func (s *DefaultRestServer) fail(w http.ResponseWriter, r *http.Request, aa *metrics.AreaAction, err error) {
	s.done(aa, err)
	writeServiceError(w, r, err)
}

// HandleParamError answers requests whose path or query parameters cannot be bound.
func HandleParamError(w http.ResponseWriter, _ *http.Request, err error) {
	writeError(w, http.StatusBadRequest, "InvalidParameter", []string{err.Error()}, nil)
}

// helpers:

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func isJSON(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	// accept "application/json" with optional charset
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(ct)), "application/json")
}

// decodeJSON writes the 415/400 response itself and returns an ErrInvalidInput-wrapped error.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if !isJSON(r) {
		writeError(w, http.StatusUnsupportedMediaType, "UnsupportedMediaType", []string{"Content-Type must be application/json"}, nil)
		return fmt.Errorf("content type %q: %w", r.Header.Get("Content-Type"), ports.ErrInvalidInput)
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "MalformedRequest", []string{"invalid json body"}, nil)
		return fmt.Errorf("json body: %v: %w", err, ports.ErrInvalidInput)
	}
	return nil
}

func writeError(w http.ResponseWriter, status int, typ string, messages []string, fields []ports.FieldError) {
	body := openapi.Error{
		Status:        status,
		Type:          typ,
		ErrorMessages: messages,
	}
	if body.ErrorMessages == nil {
		body.ErrorMessages = []string{}
	}
	if len(fields) > 0 {
		items := make([]openapi.ValidationErrorItem, 0, len(fields))
		for _, f := range fields {
			items = append(items, openapi.ValidationErrorItem{
				Field:        f.Field,
				Message:      f.Message,
				InvalidValue: ptr(f.InvalidValue),
			})
		}
		body.ValidationErrors = &items
	}
	writeJSON(w, status, body)
}

func writeAuthError(w http.ResponseWriter, r *http.Request, err error) {
	zerolog.Ctx(r.Context()).Debug().Err(err).Msg("api client not authenticated")
	writeError(w, http.StatusUnauthorized, "Unauthenticated", []string{"unauthorized"}, nil)
}

// writeServiceError maps service errors to the documented status codes and error types.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var de *ports.DuplicateEntityError
	var ve *ports.ValidationError
	switch {
	case errors.As(err, &de):
		writeError(w, http.StatusConflict, "DuplicateEntity", []string{de.Error()}, de.Fields)
	case errors.As(err, &ve):
		messages := make([]string, 0, len(ve.Fields))
		for _, f := range ve.Fields {
			messages = append(messages, f.Field+": "+f.Message)
		}
		writeError(w, http.StatusUnprocessableEntity, "ValidationError", messages, ve.Fields)
	case errors.Is(err, ports.ErrForbidden):
		writeError(w, http.StatusForbidden, "Unauthorized", []string{"Unauthorized"}, nil)
	case errors.Is(err, ports.ErrNotFound):
		writeError(w, http.StatusNotFound, "EntityNotFound", []string{err.Error()}, nil)
	case errors.Is(err, ports.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "DuplicateEntity", []string{err.Error()}, nil)
	case errors.Is(err, ports.ErrConflict):
		writeError(w, http.StatusConflict, "EntityVersionMismatch", []string{err.Error()}, nil)
	case errors.Is(err, ports.ErrInvalidInput):
		writeError(w, http.StatusUnprocessableEntity, "ValidationError", []string{err.Error()}, nil)
	case errors.Is(err, ports.ErrLimitReached):
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("repository limit reached")
		writeError(w, http.StatusInsufficientStorage, "LimitReached", []string{err.Error()}, nil)
	case errors.Is(err, ports.ErrIO):
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("image storage failure")
		writeError(w, http.StatusInternalServerError, "IOError", []string{"cannot access stored image"}, nil)
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "InternalError", []string{"internal error"}, nil)
	}
}

func ptr[T any](v T) *T { return &v }
