package metrics

import (
	"area-api/internal/app/ports"
	"errors"
	"time"
)

// AreaAction measures one API operation on behalf of a principal.
type AreaAction struct {
	start           time.Time
	Action          string
	Principal       string
	Result          string
	DurationFloat64 float64
}

// Enforce compile-time conformance to the interface
var _ ports.MeasuredAction = (*AreaAction)(nil)

func NewAreaAction(action string) *AreaAction {
	return &AreaAction{
		start:     time.Now(),
		Action:    action,
		Principal: "unknown",
		Result:    "unknown",
	}
}

func (a *AreaAction) Duration() float64 {
	return a.DurationFloat64
}

// For records who the action runs for once the caller is authenticated.
func (a *AreaAction) For(p ports.Principal) *AreaAction {
	a.Principal = p.String()
	return a
}

func (a *AreaAction) Done(result ports.MeasuredActionResult) ports.MeasuredAction {
	a.Result = string(result)
	a.DurationFloat64 = time.Since(a.start).Seconds()
	return a
}

func (a *AreaAction) DoneFromError(err error) ports.MeasuredAction {
	return a.Done(ResultFromError(err))
}

func (a *AreaAction) Labels() map[ports.MeasuredActionLabel]string {
	return map[ports.MeasuredActionLabel]string{
		ports.MALabelAction:    a.Action,
		ports.MALabelPrincipal: a.Principal,
		ports.MALabelResult:    a.Result,
	}
}

func ResultFromError(err error) ports.MeasuredActionResult {
	if err == nil {
		return ports.MAResultSuccess
	}
	switch {
	case errors.Is(err, ports.ErrNotFound):
		return ports.MAResultNotFound
	case errors.Is(err, ports.ErrForbidden):
		return ports.MAResultForbidden
	case errors.Is(err, ports.ErrInvalidCredentials):
		return ports.MAResultUnauthorizedApiClient
	case errors.Is(err, ports.ErrInvalidInput):
		return ports.MAResultInvalid
	case errors.Is(err, ports.ErrConflict),
		errors.Is(err, ports.ErrAlreadyExists):
		return ports.MAResultConflict
	default:
		return ports.MAResultFailure
	}
}
