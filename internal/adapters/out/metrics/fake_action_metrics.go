package metrics

import (
	"area-api/internal/app/ports"
	"sync"

	"github.com/rs/zerolog/log"
)

// FakeActionMetrics logs and remembers finished actions; used by tests.
type FakeActionMetrics struct {
	mu   sync.Mutex
	done []map[ports.MeasuredActionLabel]string
}

// Enforce compile-time conformance to the interface
var _ ports.ActionMetrics = (*FakeActionMetrics)(nil)

func (m *FakeActionMetrics) OnActionDone(ma ports.MeasuredAction) {
	mal := ma.Labels()
	log.Debug().Interface("labels", mal).Msg("action done")
	m.mu.Lock()
	defer m.mu.Unlock()
	m.done = append(m.done, mal)
}

// Done returns the labels of every recorded action in order.
func (m *FakeActionMetrics) Done() []map[ports.MeasuredActionLabel]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]map[ports.MeasuredActionLabel]string, len(m.done))
	copy(out, m.done)
	return out
}
