package events

import (
	"area-api/internal/app/ports"
	"context"

	"github.com/rs/zerolog"
)

// LogEventPublisher writes events to a zerolog logger, one line per event.
type LogEventPublisher struct {
	logger zerolog.Logger
}

// Enforce compile-time conformance to the interface
var _ ports.EventPublisher = (*LogEventPublisher)(nil)

func NewLogEventPublisher(logger zerolog.Logger) *LogEventPublisher {
	return &LogEventPublisher{logger: logger.With().Str("component", "events").Logger()}
}

func (p *LogEventPublisher) Publish(_ context.Context, e ports.AreaEvent) error {
	ev := p.logger.Info().
		Str("event", string(e.Type)).
		Int64("area_id", e.AreaID).
		Int64("project_id", e.ProjectID).
		Str("principal", e.Principal).
		Time("at", e.At)
	if e.DeviceID != nil {
		ev = ev.Int64("device_id", *e.DeviceID)
	}
	ev.Msg("area event")
	return nil
}

func (p *LogEventPublisher) Close() {}
