package http

import (
	"net/http"
	"tikiti/catalog"

	libHttp "github.com/ThreeDotsLabs/go-event-driven/common/http"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

func NewHttpRouter(
	venues VenuesAPI,
	events EventsAPI,
	tickets TicketsAPI,
	stats StatsAPI,
	carts CartStore,
	sequencer Sequencer,
	searches *catalog.Registry,
) *echo.Echo {
	e := libHttp.NewEcho()
	e.Use(otelecho.Middleware("tikiti"))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	handler := Handler{
		venues:    venues,
		events:    events,
		tickets:   tickets,
		stats:     stats,
		carts:     carts,
		sequencer: sequencer,
		searches:  searches,
	}

	// Storefront.
	e.GET("/venues", handler.GetVenues)
	e.GET("/venues/:id", handler.GetVenue)
	e.GET("/events", handler.GetEvents)
	e.GET("/events/:id", handler.GetEvent)
	e.GET("/events/:id/cart", handler.GetCart)
	e.POST("/events/:id/cart/increment", handler.PostCartIncrement)
	e.POST("/events/:id/cart/decrement", handler.PostCartDecrement)
	e.POST("/events/:id/checkout", handler.PostCheckout)
	e.GET("/tickets/code/:code", handler.GetTicketByCode)

	// Debounced live search, one loader pair per browser session.
	e.PUT("/search/events", handler.PutEventSearch)
	e.GET("/search/events", handler.GetEventSearch)
	e.PUT("/search/venues", handler.PutVenueSearch)
	e.GET("/search/venues", handler.GetVenueSearch)

	// Admin console.
	e.GET("/admin/dashboard", handler.GetDashboard)
	e.GET("/admin/venues", handler.AdminListVenues)
	e.POST("/admin/venues", handler.AdminCreateVenue)
	e.PUT("/admin/venues/:id", handler.AdminUpdateVenue)
	e.DELETE("/admin/venues/:id", handler.AdminDeleteVenue)
	e.GET("/admin/events", handler.AdminListEvents)
	e.POST("/admin/events", handler.AdminCreateEvent)
	e.PUT("/admin/events/:id", handler.AdminUpdateEvent)
	e.DELETE("/admin/events/:id", handler.AdminDeleteEvent)
	e.GET("/admin/events/:id/tickets", handler.AdminListEventTickets)
	e.GET("/admin/tickets", handler.AdminListTickets)
	e.GET("/admin/tickets/:id", handler.AdminGetTicket)
	e.DELETE("/admin/tickets/:id", handler.AdminCancelTicket)

	return e
}
