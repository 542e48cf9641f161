// Package catalog loads venue and event listings from the ticketing API for
// interactive views. Free-text search input arrives keystroke by keystroke,
// so loaders debounce: a fetch is issued only once the filters have been
// quiet for the debounce interval, and responses are applied latest-query
// wins, guarded by a monotonic sequence counter.
package catalog

import (
	"context"
	"sync"
	"tikiti/entities"
	"time"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
)

const DebounceInterval = 300 * time.Millisecond

type EventLister interface {
	ListEvents(ctx context.Context, filters entities.EventFilters) ([]entities.EventWithVenue, error)
}

type EventLoader struct {
	lister EventLister
	delay  time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	seq     uint64
	applied uint64
	filters entities.EventFilters
	events  []entities.EventWithVenue

	onUpdate func([]entities.EventWithVenue)
}

// NewEventLoader builds a loader with the given quiescent interval (the
// default when delay <= 0). onUpdate, when non-nil, is invoked with every
// applied result set.
func NewEventLoader(lister EventLister, delay time.Duration, onUpdate func([]entities.EventWithVenue)) *EventLoader {
	if lister == nil {
		panic("event lister is nil")
	}
	if delay <= 0 {
		delay = DebounceInterval
	}
	return &EventLoader{lister: lister, delay: delay, onUpdate: onUpdate}
}

// SetSearch schedules a debounced reload for a new search term, superseding
// any fetch still pending for a stale query.
func (l *EventLoader) SetSearch(ctx context.Context, term string) {
	l.mu.Lock()
	l.filters.Search = term
	l.scheduleLocked(ctx)
	l.mu.Unlock()
}

func (l *EventLoader) SetCategory(ctx context.Context, category string) {
	l.mu.Lock()
	l.filters.Category = category
	l.scheduleLocked(ctx)
	l.mu.Unlock()
}

func (l *EventLoader) SetVenue(ctx context.Context, venueID int) {
	l.mu.Lock()
	l.filters.VenueID = venueID
	l.scheduleLocked(ctx)
	l.mu.Unlock()
}

// Reload fetches immediately with the current filters, cancelling any pending
// debounced fetch. Used for the initial page load.
func (l *EventLoader) Reload(ctx context.Context) error {
	l.mu.Lock()
	if l.timer != nil {
		l.timer.Stop()
	}
	l.seq++
	seq, filters := l.seq, l.filters
	l.mu.Unlock()

	return l.fetch(ctx, seq, filters)
}

// Events returns the last applied result set.
func (l *EventLoader) Events() []entities.EventWithVenue {
	l.mu.Lock()
	defer l.mu.Unlock()

	events := make([]entities.EventWithVenue, len(l.events))
	copy(events, l.events)
	return events
}

func (l *EventLoader) Filters() entities.EventFilters {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.filters
}

// Close cancels any pending fetch.
func (l *EventLoader) Close() {
	l.mu.Lock()
	if l.timer != nil {
		l.timer.Stop()
	}
	l.mu.Unlock()
}

func (l *EventLoader) scheduleLocked(ctx context.Context) {
	if l.timer != nil {
		l.timer.Stop()
	}
	l.timer = time.AfterFunc(l.delay, func() {
		l.mu.Lock()
		l.seq++
		seq, filters := l.seq, l.filters
		l.mu.Unlock()

		_ = l.fetch(ctx, seq, filters)
	})
}

func (l *EventLoader) fetch(ctx context.Context, seq uint64, filters entities.EventFilters) error {
	events, err := l.lister.ListEvents(ctx, filters)

	l.mu.Lock()
	if seq <= l.applied {
		// A fetch for a newer query already completed; this response is
		// stale and must not overwrite visible state.
		l.mu.Unlock()
		return nil
	}
	l.applied = seq
	if err != nil {
		// Keep the previous result set; failures never blank the view.
		l.mu.Unlock()
		log.FromContext(ctx).WithField("error", err.Error()).Error("could not load events")
		return err
	}
	l.events = events
	onUpdate := l.onUpdate
	l.mu.Unlock()

	if onUpdate != nil {
		onUpdate(events)
	}
	return nil
}
