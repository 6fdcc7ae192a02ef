package radio

import (
	"sync"

	"github.com/skobkin/meshlink/internal/domain"
)

type ackTrackState struct {
	to uint32
}

// ackTracker refines routing acks for messages this interface sent. Any relay
// acks a packet, so only an ack from the DM destination counts as delivered.
type ackTracker struct {
	mu     sync.Mutex
	states map[string]ackTrackState
}

func newAckTracker() *ackTracker {
	return &ackTracker{states: make(map[string]ackTrackState)}
}

func (t *ackTracker) markTracked(deviceMessageID string, to uint32) {
	if deviceMessageID == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.states[deviceMessageID] = ackTrackState{to: to}
}

func (t *ackTracker) stateFor(deviceMessageID string) (ackTrackState, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	st, ok := t.states[deviceMessageID]

	return st, ok
}

func (t *ackTracker) normalize(update domain.MessageStatusUpdate) domain.MessageStatusUpdate {
	t.mu.Lock()
	defer t.mu.Unlock()

	st, ok := t.states[update.DeviceMessageID]
	if !ok {
		return update
	}

	switch update.Status {
	case domain.MessageStatusFailed:
		delete(t.states, update.DeviceMessageID)
	case domain.MessageStatusAcked:
		if st.to == domain.BroadcastNodeNum {
			update.Status = domain.MessageStatusSent
			delete(t.states, update.DeviceMessageID)
			break
		}
		if update.FromNodeNum != st.to {
			update.Status = domain.MessageStatusSent
			break
		}
		delete(t.states, update.DeviceMessageID)
	}

	return update
}
