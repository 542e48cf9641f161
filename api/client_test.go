package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"tikiti/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListVenuesOmitsUnsetQueryParams(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]entities.Venue{})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.ListVenues(context.Background(), entities.VenueFilters{})
	require.NoError(t, err)
	assert.Equal(t, "", gotQuery)

	_, err = client.ListVenues(context.Background(), entities.VenueFilters{Search: "arena", City: "Nairobi"})
	require.NoError(t, err)
	assert.Equal(t, "city=Nairobi&search=arena", gotQuery)
}

func TestErrorResponseSurfacesDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "capacity must be non-negative"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.CreateVenue(context.Background(), entities.CreateVenue{Name: "x", Capacity: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capacity must be non-negative")
	assert.False(t, IsNotFound(err))
}

func TestErrorResponseWithoutBodyGetsGenericDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.GetTicket(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API request failed")
}

func TestNotFoundIsRecognizable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "event not found"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.GetEvent(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestDeleteHandles204WithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/venues/7", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	require.NoError(t, client.DeleteVenue(context.Background(), 7))
}

func TestPurchaseTicketRoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req entities.CreateTicket
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, entities.TicketVIP, req.TicketType)
		assert.Equal(t, 10000, req.Price)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":                1,
			"event_id":          req.EventID,
			"buyer_name":        req.BuyerName,
			"buyer_email":       req.BuyerEmail,
			"ticket_type":       req.TicketType,
			"price":             req.Price,
			"confirmation_code": "TKT-ABC123",
			"status":            "confirmed",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	ticket, err := client.PurchaseTicket(context.Background(), entities.CreateTicket{
		EventID:    3,
		BuyerName:  "Amina",
		BuyerEmail: "amina@example.com",
		TicketType: entities.TicketVIP,
		Price:      10000,
	})
	require.NoError(t, err)
	assert.Equal(t, "TKT-ABC123", ticket.ConfirmationCode)
	assert.Equal(t, entities.StatusConfirmed, ticket.Status)
}
