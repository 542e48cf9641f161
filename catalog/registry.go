package catalog

import (
	"context"
	"sync"
	"time"
)

const (
	sessionIdleTTL = 10 * time.Minute
	sweepInterval  = time.Minute
)

type loaders struct {
	events   *EventLoader
	venues   *VenueLoader
	lastSeen time.Time
}

// Registry hands out per-session loaders so each browser session gets its own
// debounce window and latest-query tracking. Idle sessions are swept out.
type Registry struct {
	eventLister EventLister
	venueLister VenueLister
	delay       time.Duration

	mu       sync.Mutex
	sessions map[string]*loaders
}

func NewRegistry(eventLister EventLister, venueLister VenueLister) *Registry {
	if eventLister == nil || venueLister == nil {
		panic("catalog listers are nil")
	}
	return &Registry{
		eventLister: eventLister,
		venueLister: venueLister,
		delay:       DebounceInterval,
		sessions:    map[string]*loaders{},
	}
}

func (r *Registry) EventLoaderFor(sessionID string) *EventLoader {
	return r.forSession(sessionID).events
}

func (r *Registry) VenueLoaderFor(sessionID string) *VenueLoader {
	return r.forSession(sessionID).venues
}

func (r *Registry) forSession(sessionID string) *loaders {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.sessions[sessionID]
	if !ok {
		l = &loaders{
			events: NewEventLoader(r.eventLister, r.delay, nil),
			venues: NewVenueLoader(r.venueLister, r.delay, nil),
		}
		r.sessions[sessionID] = l
	}
	l.lastSeen = time.Now()
	return l
}

// Sweep drops loaders for sessions idle longer than the TTL. Blocks until ctx
// is done.
func (r *Registry) Sweep(ctx context.Context) error {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			cutoff := time.Now().Add(-sessionIdleTTL)
			r.mu.Lock()
			for id, l := range r.sessions {
				if l.lastSeen.Before(cutoff) {
					l.events.Close()
					l.venues.Close()
					delete(r.sessions, id)
				}
			}
			r.mu.Unlock()
		}
	}
}
