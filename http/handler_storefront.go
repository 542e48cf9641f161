package http

import (
	"fmt"
	"net/http"
	"strconv"
	"tikiti/api"
	"tikiti/catalog"
	"tikiti/entities"
	"tikiti/pricing"
	"tikiti/session"

	"github.com/labstack/echo/v4"
)

const (
	sessionCookie     = "tikiti_session"
	sessionContextKey = "tikiti_session_id"
)

// sessionID resolves the session exactly once per request: handlers that
// both mutate and re-read cart state must see the same id, even when the
// request arrived without a cookie and the id was minted here.
func (h Handler) sessionID(c echo.Context) string {
	if id, ok := c.Get(sessionContextKey).(string); ok && id != "" {
		return id
	}

	cookie, err := c.Cookie(sessionCookie)
	if err == nil && cookie.Value != "" {
		c.Set(sessionContextKey, cookie.Value)
		return cookie.Value
	}

	id := session.NewID()
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
	})
	c.Set(sessionContextKey, id)
	return id
}

func intParam(c echo.Context, name string) (int, error) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid %s", name))
	}
	return value, nil
}

type notFoundView struct {
	NotFound bool   `json:"not_found"`
	Message  string `json:"message"`
}

func (h Handler) GetVenues(c echo.Context) error {
	venues, err := h.venues.ListVenues(c.Request().Context(), entities.VenueFilters{
		Search: c.QueryParam("search"),
		City:   c.QueryParam("city"),
	})
	if err != nil {
		return fmt.Errorf("could not load venues: %w", err)
	}
	return c.JSON(http.StatusOK, venues)
}

func (h Handler) GetVenue(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}

	venue, err := h.venues.GetVenue(c.Request().Context(), id)
	if api.IsNotFound(err) {
		return c.JSON(http.StatusNotFound, notFoundView{NotFound: true, Message: "Venue not found"})
	}
	if err != nil {
		return fmt.Errorf("could not load venue %d: %w", id, err)
	}
	return c.JSON(http.StatusOK, venue)
}

type eventListView struct {
	Events []eventCardView `json:"events"`
	Count  int             `json:"count"`
}

type eventCardView struct {
	entities.EventWithVenue
	BasePrice int `json:"base_price"`
}

func (h Handler) GetEvents(c echo.Context) error {
	venueID, err := intQueryParam(c, "venue_id")
	if err != nil {
		return err
	}

	events, err := h.events.ListEvents(c.Request().Context(), entities.EventFilters{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		VenueID:  venueID,
	})
	if err != nil {
		return fmt.Errorf("could not load events: %w", err)
	}

	// Category set membership and sorting happen client-side, on the already
	// fetched list.
	events = catalog.FilterByCategories(events, c.QueryParams()["categories"])
	if sortMode := c.QueryParam("sort"); sortMode != "" {
		events = catalog.SortEvents(events, catalog.SortMode(sortMode))
	}

	cards := make([]eventCardView, 0, len(events))
	for _, event := range events {
		cards = append(cards, eventCardView{
			EventWithVenue: event,
			BasePrice:      pricing.BasePrice(event.Category),
		})
	}
	return c.JSON(http.StatusOK, eventListView{Events: cards, Count: len(cards)})
}

// intQueryParam treats an absent parameter as unset and a malformed one as a
// client error, like intParam does for path params.
func intQueryParam(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid %s", name))
	}
	return value, nil
}

type eventDetailView struct {
	entities.EventWithVenue
	Prices pricing.Table `json:"prices"`
	Cart   cartView      `json:"cart"`
}

func (h Handler) GetEvent(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	event, err := h.events.GetEvent(ctx, id)
	if api.IsNotFound(err) {
		return c.JSON(http.StatusNotFound, notFoundView{NotFound: true, Message: "Event not found"})
	}
	if err != nil {
		return fmt.Errorf("could not load event %d: %w", id, err)
	}

	table := pricing.Resolve(event.Category)
	selection, err := h.carts.Get(ctx, h.sessionID(c), id)
	if err != nil {
		return fmt.Errorf("could not load cart: %w", err)
	}

	return c.JSON(http.StatusOK, eventDetailView{
		EventWithVenue: event,
		Prices:         table,
		Cart:           newCartView(selection.Quantities(), selection.TicketCount(), selection.Total(table)),
	})
}

func (h Handler) GetTicketByCode(c echo.Context) error {
	ticket, err := h.tickets.GetTicketByCode(c.Request().Context(), c.Param("code"))
	if api.IsNotFound(err) {
		return c.JSON(http.StatusNotFound, notFoundView{NotFound: true, Message: "Ticket not found"})
	}
	if err != nil {
		return fmt.Errorf("could not look up ticket: %w", err)
	}
	return c.JSON(http.StatusOK, ticket)
}
