package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"tikiti/entities"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// fakeTicketingAPI is an in-memory stand-in for the external ticketing API.
// It implements the endpoints the client talks to, keyed by auto-incremented
// ids, so component tests can run against a real HTTP boundary.
type fakeTicketingAPI struct {
	mu sync.Mutex

	venues  map[int]entities.Venue
	events  map[int]entities.Event
	tickets map[int]entities.Ticket

	nextVenueID  int
	nextEventID  int
	nextTicketID int

	server *httptest.Server
}

func newFakeTicketingAPI(t *testing.T) *fakeTicketingAPI {
	t.Helper()

	f := &fakeTicketingAPI{
		venues:       map[int]entities.Venue{},
		events:       map[int]entities.Event{},
		tickets:      map[int]entities.Ticket{},
		nextVenueID:  1,
		nextEventID:  1,
		nextTicketID: 1,
	}

	e := echo.New()
	e.GET("/venues", f.listVenues)
	e.POST("/venues", f.createVenue)
	e.GET("/venues/:id", f.getVenue)
	e.PUT("/venues/:id", f.updateVenue)
	e.DELETE("/venues/:id", f.deleteVenue)

	e.GET("/events", f.listEvents)
	e.POST("/events", f.createEvent)
	e.GET("/events/:id", f.getEvent)
	e.PUT("/events/:id", f.updateEvent)
	e.DELETE("/events/:id", f.deleteEvent)

	e.GET("/tickets", f.listTickets)
	e.POST("/tickets", f.purchaseTicket)
	e.GET("/tickets/:id", f.getTicket)
	e.DELETE("/tickets/:id", f.cancelTicket)
	e.GET("/tickets/code/:code", f.getTicketByCode)
	e.GET("/tickets/event/:id", f.listEventTickets)

	e.GET("/stats/dashboard", f.dashboardStats)

	f.server = httptest.NewServer(e)
	t.Cleanup(f.server.Close)

	return f
}

func notFound(c echo.Context, what string) error {
	return c.JSON(http.StatusNotFound, map[string]string{"detail": what + " not found"})
}

func (f *fakeTicketingAPI) listVenues(c echo.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	search := strings.ToLower(c.QueryParam("search"))
	city := c.QueryParam("city")

	venues := []entities.Venue{}
	for _, venue := range f.venues {
		if search != "" && !strings.Contains(strings.ToLower(venue.Name), search) {
			continue
		}
		if city != "" && !strings.EqualFold(venue.City, city) {
			continue
		}
		venues = append(venues, venue)
	}
	sort.Slice(venues, func(i, j int) bool { return venues[i].ID < venues[j].ID })
	return c.JSON(http.StatusOK, venues)
}

func (f *fakeTicketingAPI) createVenue(c echo.Context) error {
	var request entities.CreateVenue
	if err := c.Bind(&request); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	venue := entities.Venue{
		ID:        f.nextVenueID,
		Name:      request.Name,
		Address:   request.Address,
		City:      request.City,
		Capacity:  request.Capacity,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	f.venues[venue.ID] = venue
	f.nextVenueID++
	return c.JSON(http.StatusCreated, venue)
}

func (f *fakeTicketingAPI) getVenue(c echo.Context) error {
	id := intParam(c)

	f.mu.Lock()
	defer f.mu.Unlock()

	venue, ok := f.venues[id]
	if !ok {
		return notFound(c, "venue")
	}

	events := []entities.EventSummary{}
	for _, event := range f.events {
		if event.VenueID != id {
			continue
		}
		events = append(events, entities.EventSummary{
			ID:        event.ID,
			Title:     event.Title,
			EventDate: event.EventDate,
			Category:  event.Category,
		})
	}
	return c.JSON(http.StatusOK, entities.VenueWithEvents{Venue: venue, Events: events})
}

func (f *fakeTicketingAPI) updateVenue(c echo.Context) error {
	var request entities.UpdateVenue
	if err := c.Bind(&request); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	venue, ok := f.venues[intParam(c)]
	if !ok {
		return notFound(c, "venue")
	}
	if request.Name != nil {
		venue.Name = *request.Name
	}
	if request.Address != nil {
		venue.Address = *request.Address
	}
	if request.City != nil {
		venue.City = *request.City
	}
	if request.Capacity != nil {
		venue.Capacity = *request.Capacity
	}
	f.venues[venue.ID] = venue
	return c.JSON(http.StatusOK, venue)
}

func (f *fakeTicketingAPI) deleteVenue(c echo.Context) error {
	id := intParam(c)

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.venues[id]; !ok {
		return notFound(c, "venue")
	}
	delete(f.venues, id)
	for eventID, event := range f.events {
		if event.VenueID == id {
			delete(f.events, eventID)
		}
	}
	return c.NoContent(http.StatusNoContent)
}

func (f *fakeTicketingAPI) withVenue(event entities.Event) entities.EventWithVenue {
	venue := f.venues[event.VenueID]
	return entities.EventWithVenue{
		Event: event,
		Venue: entities.VenueInfo{
			ID:       venue.ID,
			Name:     venue.Name,
			City:     venue.City,
			Capacity: venue.Capacity,
		},
	}
}

func (f *fakeTicketingAPI) listEvents(c echo.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	search := strings.ToLower(c.QueryParam("search"))
	category := c.QueryParam("category")
	venueID := c.QueryParam("venue_id")

	events := []entities.EventWithVenue{}
	for _, event := range f.events {
		if search != "" && !strings.Contains(strings.ToLower(event.Title), search) {
			continue
		}
		if category != "" && event.Category != category {
			continue
		}
		if venueID != "" && venueID != strconv.Itoa(event.VenueID) {
			continue
		}
		events = append(events, f.withVenue(event))
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return c.JSON(http.StatusOK, events)
}

func (f *fakeTicketingAPI) createEvent(c echo.Context) error {
	var request entities.CreateEvent
	if err := c.Bind(&request); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	event := entities.Event{
		ID:          f.nextEventID,
		VenueID:     request.VenueID,
		Title:       request.Title,
		Description: request.Description,
		Category:    request.Category,
		EventDate:   request.EventDate,
		EventTime:   request.EventTime,
		CreatedAt:   time.Now().Format(time.RFC3339),
	}
	f.events[event.ID] = event
	f.nextEventID++
	return c.JSON(http.StatusCreated, event)
}

func (f *fakeTicketingAPI) getEvent(c echo.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	event, ok := f.events[intParam(c)]
	if !ok {
		return notFound(c, "event")
	}
	return c.JSON(http.StatusOK, f.withVenue(event))
}

func (f *fakeTicketingAPI) updateEvent(c echo.Context) error {
	var request entities.UpdateEvent
	if err := c.Bind(&request); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	event, ok := f.events[intParam(c)]
	if !ok {
		return notFound(c, "event")
	}
	if request.VenueID != nil {
		event.VenueID = *request.VenueID
	}
	if request.Title != nil {
		event.Title = *request.Title
	}
	if request.Description != nil {
		event.Description = *request.Description
	}
	if request.Category != nil {
		event.Category = *request.Category
	}
	if request.EventDate != nil {
		event.EventDate = *request.EventDate
	}
	if request.EventTime != nil {
		event.EventTime = *request.EventTime
	}
	f.events[event.ID] = event
	return c.JSON(http.StatusOK, event)
}

func (f *fakeTicketingAPI) deleteEvent(c echo.Context) error {
	id := intParam(c)

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.events[id]; !ok {
		return notFound(c, "event")
	}
	delete(f.events, id)
	return c.NoContent(http.StatusNoContent)
}

func (f *fakeTicketingAPI) listTickets(c echo.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	tickets := []entities.Ticket{}
	for _, ticket := range f.tickets {
		tickets = append(tickets, ticket)
	}
	sort.Slice(tickets, func(i, j int) bool { return tickets[i].ID < tickets[j].ID })
	return c.JSON(http.StatusOK, tickets)
}

func (f *fakeTicketingAPI) purchaseTicket(c echo.Context) error {
	var request entities.CreateTicket
	if err := c.Bind(&request); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.events[request.EventID]; !ok {
		return notFound(c, "event")
	}

	ticket := entities.Ticket{
		ID:               f.nextTicketID,
		EventID:          request.EventID,
		BuyerName:        request.BuyerName,
		BuyerEmail:       request.BuyerEmail,
		TicketType:       request.TicketType,
		Price:            decimal.NewFromInt(int64(request.Price)),
		ConfirmationCode: "TKT-" + strings.ToUpper(uuid.NewString()[:8]),
		PurchaseDate:     time.Now().Format(time.RFC3339),
		Status:           entities.StatusConfirmed,
	}
	f.tickets[ticket.ID] = ticket
	f.nextTicketID++
	return c.JSON(http.StatusCreated, ticket)
}

func (f *fakeTicketingAPI) getTicket(c echo.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	ticket, ok := f.tickets[intParam(c)]
	if !ok {
		return notFound(c, "ticket")
	}
	return c.JSON(http.StatusOK, ticket)
}

func (f *fakeTicketingAPI) getTicketByCode(c echo.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ticket := range f.tickets {
		if ticket.ConfirmationCode == c.Param("code") {
			return c.JSON(http.StatusOK, ticket)
		}
	}
	return notFound(c, "ticket")
}

func (f *fakeTicketingAPI) listEventTickets(c echo.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := intParam(c)
	tickets := []entities.Ticket{}
	for _, ticket := range f.tickets {
		if ticket.EventID == id {
			tickets = append(tickets, ticket)
		}
	}
	sort.Slice(tickets, func(i, j int) bool { return tickets[i].ID < tickets[j].ID })
	return c.JSON(http.StatusOK, tickets)
}

func (f *fakeTicketingAPI) cancelTicket(c echo.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	ticket, ok := f.tickets[intParam(c)]
	if !ok {
		return notFound(c, "ticket")
	}
	ticket.Status = entities.StatusCancelled
	f.tickets[ticket.ID] = ticket
	return c.NoContent(http.StatusNoContent)
}

func (f *fakeTicketingAPI) dashboardStats(c echo.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stats := entities.DashboardStats{
		TotalVenues:    len(f.venues),
		TotalEvents:    len(f.events),
		TotalTickets:   len(f.tickets),
		TotalRevenue:   decimal.Zero,
		RecentTickets:  []entities.RecentTicket{},
		UpcomingEvents: []entities.UpcomingEvent{},
	}
	for _, ticket := range f.tickets {
		switch ticket.Status {
		case entities.StatusConfirmed:
			stats.ConfirmedTickets++
		case entities.StatusCancelled:
			stats.CancelledTickets++
		}
		if ticket.Status != entities.StatusCancelled {
			stats.TotalRevenue = stats.TotalRevenue.Add(ticket.Price)
		}
	}
	return c.JSON(http.StatusOK, stats)
}

func (f *fakeTicketingAPI) ticketCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tickets)
}

func intParam(c echo.Context) int {
	id, _ := strconv.Atoi(c.Param("id"))
	return id
}

// browser is an HTTP client with a cookie jar so the session cookie set by
// the first response sticks for the rest of the test.
type browser struct {
	t      *testing.T
	client *http.Client
	base   string
}

func newBrowser(t *testing.T, base string) *browser {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &browser{
		t:      t,
		client: &http.Client{Jar: jar},
		base:   base,
	}
}

func (b *browser) do(method, path string, body any, out any) int {
	b.t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(b.t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, b.base+path, reader)
	require.NoError(b.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.client.Do(req)
	require.NoError(b.t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		require.NoError(b.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (b *browser) get(path string, out any) int {
	return b.do(http.MethodGet, path, nil, out)
}

func (b *browser) post(path string, body any, out any) int {
	return b.do(http.MethodPost, path, body, out)
}

func (b *browser) put(path string, body any, out any) int {
	return b.do(http.MethodPut, path, body, out)
}

func (b *browser) delete(path string, out any) int {
	return b.do(http.MethodDelete, path, nil, out)
}
