package catalog

import (
	"context"
	"sync"
	"tikiti/entities"
	"time"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
)

type VenueLister interface {
	ListVenues(ctx context.Context, filters entities.VenueFilters) ([]entities.Venue, error)
}

// VenueLoader is the venue-listing counterpart of EventLoader: same debounce
// and stale-response discard, with search and city as the server-side
// filters.
type VenueLoader struct {
	lister VenueLister
	delay  time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	seq     uint64
	applied uint64
	filters entities.VenueFilters
	venues  []entities.Venue

	onUpdate func([]entities.Venue)
}

func NewVenueLoader(lister VenueLister, delay time.Duration, onUpdate func([]entities.Venue)) *VenueLoader {
	if lister == nil {
		panic("venue lister is nil")
	}
	if delay <= 0 {
		delay = DebounceInterval
	}
	return &VenueLoader{lister: lister, delay: delay, onUpdate: onUpdate}
}

func (l *VenueLoader) SetSearch(ctx context.Context, term string) {
	l.mu.Lock()
	l.filters.Search = term
	l.scheduleLocked(ctx)
	l.mu.Unlock()
}

// SetCity filters server-side; the empty string means all cities.
func (l *VenueLoader) SetCity(ctx context.Context, city string) {
	l.mu.Lock()
	l.filters.City = city
	l.scheduleLocked(ctx)
	l.mu.Unlock()
}

func (l *VenueLoader) Reload(ctx context.Context) error {
	l.mu.Lock()
	if l.timer != nil {
		l.timer.Stop()
	}
	l.seq++
	seq, filters := l.seq, l.filters
	l.mu.Unlock()

	return l.fetch(ctx, seq, filters)
}

func (l *VenueLoader) Venues() []entities.Venue {
	l.mu.Lock()
	defer l.mu.Unlock()

	venues := make([]entities.Venue, len(l.venues))
	copy(venues, l.venues)
	return venues
}

func (l *VenueLoader) Filters() entities.VenueFilters {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.filters
}

func (l *VenueLoader) Close() {
	l.mu.Lock()
	if l.timer != nil {
		l.timer.Stop()
	}
	l.mu.Unlock()
}

func (l *VenueLoader) scheduleLocked(ctx context.Context) {
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

func (l *VenueLoader) fetch(ctx context.Context, seq uint64, filters entities.VenueFilters) error {
	venues, err := l.lister.ListVenues(ctx, filters)

	l.mu.Lock()
	if seq <= l.applied {
		l.mu.Unlock()
		return nil
	}
	l.applied = seq
	if err != nil {
		l.mu.Unlock()
		log.FromContext(ctx).WithField("error", err.Error()).Error("could not load venues")
		return err
	}
	l.venues = venues
	onUpdate := l.onUpdate
	l.mu.Unlock()

	if onUpdate != nil {
		onUpdate(venues)
	}
	return nil
}
