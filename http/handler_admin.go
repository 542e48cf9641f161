package http

import (
	"fmt"
	"net/http"
	"strings"
	"tikiti/api"
	"tikiti/entities"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Admin mutations never patch local state: every create, update, delete and
// cancel re-fetches the full list and returns the server's latest view.

// requireConfirmation guards destructive actions; the UI asks the operator
// first and only then sends confirm=true.
func requireConfirmation(c echo.Context) error {
	if c.QueryParam("confirm") != "true" {
		return echo.NewHTTPError(http.StatusBadRequest, "destructive action requires confirm=true")
	}
	return nil
}

func (h Handler) GetDashboard(c echo.Context) error {
	stats, err := h.stats.DashboardStats(c.Request().Context())
	if err != nil {
		return fmt.Errorf("could not load dashboard stats: %w", err)
	}
	return c.JSON(http.StatusOK, stats)
}

type adminVenuesView struct {
	Venues []entities.Venue `json:"venues"`
	Count  int              `json:"count"`
}

func (h Handler) adminVenuesList(c echo.Context, status int) error {
	venues, err := h.venues.ListVenues(c.Request().Context(), entities.VenueFilters{})
	if err != nil {
		return fmt.Errorf("could not reload venues: %w", err)
	}
	return c.JSON(status, adminVenuesView{Venues: venues, Count: len(venues)})
}

func (h Handler) AdminListVenues(c echo.Context) error {
	return h.adminVenuesList(c, http.StatusOK)
}

func (h Handler) AdminCreateVenue(c echo.Context) error {
	var request entities.CreateVenue
	if err := c.Bind(&request); err != nil {
		return err
	}
	if _, err := h.venues.CreateVenue(c.Request().Context(), request); err != nil {
		return fmt.Errorf("could not create venue: %w", err)
	}
	return h.adminVenuesList(c, http.StatusCreated)
}

func (h Handler) AdminUpdateVenue(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	var request entities.UpdateVenue
	if err := c.Bind(&request); err != nil {
		return err
	}
	if _, err := h.venues.UpdateVenue(c.Request().Context(), id, request); err != nil {
		return fmt.Errorf("could not update venue %d: %w", id, err)
	}
	return h.adminVenuesList(c, http.StatusOK)
}

func (h Handler) AdminDeleteVenue(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	if err := requireConfirmation(c); err != nil {
		return err
	}
	if err := h.venues.DeleteVenue(c.Request().Context(), id); err != nil {
		return fmt.Errorf("could not delete venue %d: %w", id, err)
	}
	return h.adminVenuesList(c, http.StatusOK)
}

// adminEventsView carries venues too: the event form needs them for its
// venue selector.
type adminEventsView struct {
	Events []entities.EventWithVenue `json:"events"`
	Venues []entities.Venue          `json:"venues"`
	Count  int                       `json:"count"`
}

func (h Handler) adminEventsList(c echo.Context, status int) error {
	ctx := c.Request().Context()

	events, err := h.events.ListEvents(ctx, entities.EventFilters{})
	if err != nil {
		return fmt.Errorf("could not reload events: %w", err)
	}
	venues, err := h.venues.ListVenues(ctx, entities.VenueFilters{})
	if err != nil {
		return fmt.Errorf("could not reload venues: %w", err)
	}
	return c.JSON(status, adminEventsView{Events: events, Venues: venues, Count: len(events)})
}

func (h Handler) AdminListEvents(c echo.Context) error {
	return h.adminEventsList(c, http.StatusOK)
}

func (h Handler) AdminCreateEvent(c echo.Context) error {
	var request entities.CreateEvent
	if err := c.Bind(&request); err != nil {
		return err
	}
	if _, err := h.events.CreateEvent(c.Request().Context(), request); err != nil {
		return fmt.Errorf("could not create event: %w", err)
	}
	return h.adminEventsList(c, http.StatusCreated)
}

func (h Handler) AdminUpdateEvent(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	var request entities.UpdateEvent
	if err := c.Bind(&request); err != nil {
		return err
	}
	if _, err := h.events.UpdateEvent(c.Request().Context(), id, request); err != nil {
		return fmt.Errorf("could not update event %d: %w", id, err)
	}
	return h.adminEventsList(c, http.StatusOK)
}

func (h Handler) AdminDeleteEvent(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	if err := requireConfirmation(c); err != nil {
		return err
	}
	if err := h.events.DeleteEvent(c.Request().Context(), id); err != nil {
		return fmt.Errorf("could not delete event %d: %w", id, err)
	}
	return h.adminEventsList(c, http.StatusOK)
}

func (h Handler) AdminListEventTickets(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	tickets, err := h.tickets.ListEventTickets(c.Request().Context(), id)
	if err != nil {
		return fmt.Errorf("could not load tickets for event %d: %w", id, err)
	}
	return c.JSON(http.StatusOK, tickets)
}

type adminTicketView struct {
	entities.Ticket
	// CanCancel drives the cancel action in the admin table; only tickets
	// still confirmed can be cancelled.
	CanCancel bool `json:"can_cancel"`
}

type adminTicketsView struct {
	Tickets      []adminTicketView `json:"tickets"`
	Total        int               `json:"total"`
	Confirmed    int               `json:"confirmed"`
	TotalRevenue decimal.Decimal   `json:"total_revenue"`
}

func (h Handler) adminTicketsList(c echo.Context) error {
	tickets, err := h.tickets.ListTickets(c.Request().Context())
	if err != nil {
		return fmt.Errorf("could not reload tickets: %w", err)
	}

	view := adminTicketsView{
		Total:        len(tickets),
		TotalRevenue: decimal.Zero,
		Tickets:      []adminTicketView{},
	}

	search := strings.ToLower(c.QueryParam("search"))
	statusFilter := c.QueryParam("status")

	for _, ticket := range tickets {
		if ticket.Status == entities.StatusConfirmed {
			view.Confirmed++
		}
		// Revenue covers everything that was not cancelled.
		if ticket.Status != entities.StatusCancelled {
			view.TotalRevenue = view.TotalRevenue.Add(ticket.Price)
		}

		if !matchesTicketSearch(ticket, search) {
			continue
		}
		if statusFilter != "" && statusFilter != "all" && string(ticket.Status) != statusFilter {
			continue
		}
		view.Tickets = append(view.Tickets, adminTicketView{
			Ticket:    ticket,
			CanCancel: ticket.Status == entities.StatusConfirmed,
		})
	}

	return c.JSON(http.StatusOK, view)
}

func matchesTicketSearch(ticket entities.Ticket, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(ticket.BuyerName), search) ||
		strings.Contains(strings.ToLower(ticket.ConfirmationCode), search) ||
		strings.Contains(strings.ToLower(ticket.BuyerEmail), search)
}

func (h Handler) AdminListTickets(c echo.Context) error {
	return h.adminTicketsList(c)
}

func (h Handler) AdminGetTicket(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	ticket, err := h.tickets.GetTicket(c.Request().Context(), id)
	if api.IsNotFound(err) {
		return c.JSON(http.StatusNotFound, notFoundView{NotFound: true, Message: "Ticket not found"})
	}
	if err != nil {
		return fmt.Errorf("could not load ticket %d: %w", id, err)
	}
	return c.JSON(http.StatusOK, ticket)
}

// AdminCancelTicket flips the ticket to cancelled on the external API; the
// row stays listed, only its cancel action disappears.
func (h Handler) AdminCancelTicket(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	if err := requireConfirmation(c); err != nil {
		return err
	}
	if err := h.tickets.CancelTicket(c.Request().Context(), id); err != nil {
		return fmt.Errorf("could not cancel ticket %d: %w", id, err)
	}
	return h.adminTicketsList(c)
}
