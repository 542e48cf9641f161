package http

import (
	"context"
	"tikiti/cart"
	"tikiti/catalog"
	"tikiti/checkout"
	"tikiti/entities"
)

type Handler struct {
	venues    VenuesAPI
	events    EventsAPI
	tickets   TicketsAPI
	stats     StatsAPI
	carts     CartStore
	sequencer Sequencer
	searches  *catalog.Registry
}

type VenuesAPI interface {
	ListVenues(ctx context.Context, filters entities.VenueFilters) ([]entities.Venue, error)
	GetVenue(ctx context.Context, id int) (entities.VenueWithEvents, error)
	CreateVenue(ctx context.Context, venue entities.CreateVenue) (entities.Venue, error)
	UpdateVenue(ctx context.Context, id int, venue entities.UpdateVenue) (entities.Venue, error)
	DeleteVenue(ctx context.Context, id int) error
}

type EventsAPI interface {
	ListEvents(ctx context.Context, filters entities.EventFilters) ([]entities.EventWithVenue, error)
	GetEvent(ctx context.Context, id int) (entities.EventWithVenue, error)
	CreateEvent(ctx context.Context, event entities.CreateEvent) (entities.Event, error)
	UpdateEvent(ctx context.Context, id int, event entities.UpdateEvent) (entities.Event, error)
	DeleteEvent(ctx context.Context, id int) error
}

type TicketsAPI interface {
	ListTickets(ctx context.Context) ([]entities.Ticket, error)
	GetTicket(ctx context.Context, id int) (entities.Ticket, error)
	GetTicketByCode(ctx context.Context, code string) (entities.Ticket, error)
	ListEventTickets(ctx context.Context, eventID int) ([]entities.Ticket, error)
	CancelTicket(ctx context.Context, id int) error
}

type StatsAPI interface {
	DashboardStats(ctx context.Context) (entities.DashboardStats, error)
}

type CartStore interface {
	Increment(ctx context.Context, sessionID string, eventID int, ticketType entities.TicketType) error
	Decrement(ctx context.Context, sessionID string, eventID int, ticketType entities.TicketType) error
	Get(ctx context.Context, sessionID string, eventID int) (*cart.Selection, error)
	Clear(ctx context.Context, sessionID string, eventID int) error
}

type Sequencer interface {
	Purchase(ctx context.Context, order checkout.Order) (checkout.Confirmation, error)
}
