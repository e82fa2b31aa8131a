package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/auspicious-soft/courtside/internal/booking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(server *httptest.Server) *APIClient {
	return &APIClient{
		httpClient: server.Client(),
		BaseURL:    server.URL,
	}
}

func TestBookCourt(t *testing.T) {
	var received BookCourtRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/book-court", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		fmt.Fprintln(w, `{"transactionId": "txn-123"}`)
	}))
	defer server.Close()

	client := newTestClient(server)
	resp, err := client.BookCourt(context.Background(), BookCourtRequest{
		BookingDate:  "2026-09-01T00:00:00Z",
		CourtID:      "court-1",
		BookingSlots: []string{"18:00", "18:30"},
		Team1: []booking.PlayerEntry{
			{PlayerID: "you", PlayerType: "player1", Rackets: 1},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "txn-123", resp.TransactionID)
	assert.Equal(t, "court-1", received.CourtID)
	require.Len(t, received.Team1, 1)
	assert.Equal(t, "player1", received.Team1[0].PlayerType)
}

func TestCreatePayment_ServerRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		fmt.Fprintln(w, `{"message": "Slot no longer available"}`)
	}))
	defer server.Close()

	client := newTestClient(server)
	_, err := client.CreatePayment(context.Background(), PaymentRequest{
		TransactionID: "txn-123",
		Method:        booking.MethodPlayCoins,
	})

	require.Error(t, err)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusConflict, statusErr.Code)
	assert.Equal(t, "Slot no longer available", statusErr.Error(), "the server message is forwarded verbatim")
}

func TestCreatePayment_NonJSONFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprintln(w, "upstream exploded")
	}))
	defer server.Close()

	client := newTestClient(server)
	_, err := client.CreatePayment(context.Background(), PaymentRequest{TransactionID: "txn-123", Method: booking.MethodRazorpay})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.Code)
}

func TestGetUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get-user", r.URL.Path)
		assert.Equal(t, "user-1", r.URL.Query().Get("userId"))
		fmt.Fprintln(w, `{"id": "user-1", "fullName": "Asha", "playCoins": 25000}`)
	}))
	defer server.Close()

	client := newTestClient(server)
	profile, err := client.GetUser(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, "Asha", profile.Name)
	assert.Equal(t, int64(25000), profile.PlayCoins)
}

func TestGetAvailability(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/availability", r.URL.Path)
		assert.Equal(t, "venue-1", r.URL.Query().Get("venueId"))
		assert.Equal(t, "2026-09-01", r.URL.Query().Get("date"))
		fmt.Fprintln(w, `[{"courtId": "court-1", "courtName": "Court 1", "game": "padel", "slots": [{"startTime": "18:00", "duration": 30, "price": 40000}]}]`)
	}))
	defer server.Close()

	client := newTestClient(server)
	courts, err := client.GetAvailability(context.Background(), "venue-1", "2026-09-01")

	require.NoError(t, err)
	require.Len(t, courts, 1)
	require.Len(t, courts[0].Slots, 1)
	assert.Equal(t, int64(40000), courts[0].Slots[0].Price)
}
