package http

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"tikiti/api"
	"tikiti/checkout"
	"tikiti/entities"
	"tikiti/pricing"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/labstack/echo/v4"
)

type cartView struct {
	Quantities  map[entities.TicketType]int `json:"quantities"`
	TicketCount int                         `json:"ticket_count"`
	Total       int                         `json:"total"`
}

func newCartView(quantities map[entities.TicketType]int, count, total int) cartView {
	return cartView{Quantities: quantities, TicketCount: count, Total: total}
}

type cartMutationRequest struct {
	TicketType entities.TicketType `json:"ticket_type"`
}

func (h Handler) GetCart(c echo.Context) error {
	return h.cartResponse(c)
}

func (h Handler) PostCartIncrement(c echo.Context) error {
	eventID, ticketType, err := h.cartMutation(c)
	if err != nil {
		return err
	}
	if err := h.carts.Increment(c.Request().Context(), h.sessionID(c), eventID, ticketType); err != nil {
		return fmt.Errorf("could not add ticket to cart: %w", err)
	}
	return h.cartResponse(c)
}

func (h Handler) PostCartDecrement(c echo.Context) error {
	eventID, ticketType, err := h.cartMutation(c)
	if err != nil {
		return err
	}
	if err := h.carts.Decrement(c.Request().Context(), h.sessionID(c), eventID, ticketType); err != nil {
		return fmt.Errorf("could not remove ticket from cart: %w", err)
	}
	return h.cartResponse(c)
}

func (h Handler) cartMutation(c echo.Context) (int, entities.TicketType, error) {
	eventID, err := intParam(c, "id")
	if err != nil {
		return 0, "", err
	}

	var request cartMutationRequest
	if err := c.Bind(&request); err != nil {
		return 0, "", err
	}
	if !slices.Contains(entities.TicketTypes, request.TicketType) {
		return 0, "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown ticket type: %s", request.TicketType))
	}
	return eventID, request.TicketType, nil
}

func (h Handler) cartResponse(c echo.Context) error {
	eventID, err := intParam(c, "id")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	event, err := h.events.GetEvent(ctx, eventID)
	if api.IsNotFound(err) {
		return c.JSON(http.StatusNotFound, notFoundView{NotFound: true, Message: "Event not found"})
	}
	if err != nil {
		return fmt.Errorf("could not load event %d: %w", eventID, err)
	}

	selection, err := h.carts.Get(ctx, h.sessionID(c), eventID)
	if err != nil {
		return fmt.Errorf("could not load cart: %w", err)
	}

	table := pricing.Resolve(event.Category)
	return c.JSON(http.StatusOK, newCartView(selection.Quantities(), selection.TicketCount(), selection.Total(table)))
}

type checkoutRequest struct {
	BuyerName  string `json:"buyer_name"`
	BuyerEmail string `json:"buyer_email"`
}

type checkoutView struct {
	ConfirmationCode string `json:"confirmation_code"`
	BuyerEmail       string `json:"buyer_email"`
	TicketCount      int    `json:"ticket_count"`
	Total            int    `json:"total"`
}

// PostCheckout runs the purchase sequence for the session's cart. On failure
// the cart is left untouched so the buyer can retry; on success it is
// cleared.
func (h Handler) PostCheckout(c echo.Context) error {
	eventID, err := intParam(c, "id")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	var request checkoutRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	event, err := h.events.GetEvent(ctx, eventID)
	if api.IsNotFound(err) {
		return c.JSON(http.StatusNotFound, notFoundView{NotFound: true, Message: "Event not found"})
	}
	if err != nil {
		return fmt.Errorf("could not load event %d: %w", eventID, err)
	}

	sessionID := h.sessionID(c)
	selection, err := h.carts.Get(ctx, sessionID, eventID)
	if err != nil {
		return fmt.Errorf("could not load cart: %w", err)
	}

	confirmation, err := h.sequencer.Purchase(ctx, checkout.Order{
		EventID:    eventID,
		Category:   event.Category,
		BuyerName:  request.BuyerName,
		BuyerEmail: request.BuyerEmail,
		Selection:  selection,
	})
	if errors.Is(err, checkout.ErrMissingBuyer) || errors.Is(err, checkout.ErrEmptyCart) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		// Partial failures leave already-purchased tickets confirmed on the
		// API side; the buyer only sees a generic failure and may retry.
		return echo.NewHTTPError(http.StatusBadGateway, "Failed to purchase tickets. Please try again.")
	}

	if err := h.carts.Clear(ctx, sessionID, eventID); err != nil {
		// The purchase already went through; withholding the confirmation
		// over a cart cleanup failure would invite a duplicate purchase on
		// retry. The leftover cart expires via its TTL.
		log.FromContext(ctx).
			WithField("session_id", sessionID).
			WithField("event_id", eventID).
			WithField("error", err.Error()).
			Error("could not clear cart after checkout")
	}

	return c.JSON(http.StatusOK, checkoutView{
		ConfirmationCode: confirmation.Code,
		BuyerEmail:       confirmation.BuyerEmail,
		TicketCount:      confirmation.TicketCount,
		Total:            confirmation.Total,
	})
}
