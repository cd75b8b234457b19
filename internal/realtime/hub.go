package realtime

import (
	"sync"

	"github.com/rs/zerolog/log"
)

const subscriberBuffer = 32

type subscriber struct {
	ch chan Change
}

// Hub fans changes out to in-process subscribers by scope. A subscriber whose buffer is full
// misses the change rather than blocking the broadcaster.
type Hub struct {
	mu     sync.RWMutex
	scopes map[string]map[*subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{
		scopes: map[string]map[*subscriber]struct{}{},
	}
}

// Subscribe registers a listener on scope. The returned function unsubscribes and closes the
// channel; calling it more than once is safe.
func (h *Hub) Subscribe(scope string) (<-chan Change, func()) {
	sub := &subscriber{ch: make(chan Change, subscriberBuffer)}

	h.mu.Lock()
	if h.scopes[scope] == nil {
		h.scopes[scope] = map[*subscriber]struct{}{}
	}

	h.scopes[scope][sub] = struct{}{}
	h.mu.Unlock()

	var once sync.Once

	return sub.ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()

			delete(h.scopes[scope], sub)

			if len(h.scopes[scope]) == 0 {
				delete(h.scopes, scope)
			}

			close(sub.ch)
		})
	}
}

func (h *Hub) Broadcast(change Change) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.scopes[change.Scope] {
		select {
		case sub.ch <- change:
		default:
			log.Warn().Str("scope", change.Scope).Str("id", change.ID).Msg("realtime subscriber is full, dropping change")
		}
	}
}

func (h *Hub) Subscribers(scope string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.scopes[scope])
}
