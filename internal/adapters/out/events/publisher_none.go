package events

import (
	"area-api/internal/app/ports"
	"context"
)

// NoneEventPublisher drops every event.
type NoneEventPublisher struct{}

// Enforce compile-time conformance to the interface
var _ ports.EventPublisher = (*NoneEventPublisher)(nil)

func NewNoneEventPublisher() *NoneEventPublisher {
	return &NoneEventPublisher{}
}

func (p *NoneEventPublisher) Publish(_ context.Context, _ ports.AreaEvent) error {
	return nil
}

func (p *NoneEventPublisher) Close() {}
