package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
)

// APIClient talks to the hosted booking backend over JSON/HTTP. There are no
// automatic retries: a failed call is surfaced to the user, who re-attempts
// manually.
type APIClient struct {
	httpClient *http.Client
	BaseURL    string
	apiKey     string
}

var _ BookingAPI = (*APIClient)(nil)

// NewClient creates a client for the given backend base URL.
func NewClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    baseURL,
		apiKey:     apiKey,
	}
}

func (c *APIClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	log.Debug("Calling booking backend", "method", method, "url", u)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Business rejections arrive as a message body; forward it verbatim.
		var rejection struct {
			Message string `json:"message"`
		}
		raw, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(raw, &rejection); err != nil || rejection.Message == "" {
			log.Error("Received non-OK status from booking backend", "status", resp.StatusCode, "body", string(raw))
			return &StatusError{Code: resp.StatusCode}
		}
		return &StatusError{Code: resp.StatusCode, Message: rejection.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// GetVenues lists the bookable venues.
func (c *APIClient) GetVenues(ctx context.Context) ([]Venue, error) {
	var venues []Venue
	if err := c.do(ctx, http.MethodGet, "/venues", nil, nil, &venues); err != nil {
		return nil, err
	}
	log.Debug("Fetched venues from backend", "count", len(venues))
	return venues, nil
}

// GetAvailability lists courts and open slots for one venue and date.
func (c *APIClient) GetAvailability(ctx context.Context, venueID, date string) ([]CourtAvailability, error) {
	q := url.Values{}
	q.Set("venueId", venueID)
	q.Set("date", date)

	var courts []CourtAvailability
	if err := c.do(ctx, http.MethodGet, "/availability", q, nil, &courts); err != nil {
		return nil, err
	}
	return courts, nil
}

// BookCourt creates a booking and returns the transaction reference used by
// the payment step.
func (c *APIClient) BookCourt(ctx context.Context, req BookCourtRequest) (BookCourtResponse, error) {
	var resp BookCourtResponse
	if err := c.do(ctx, http.MethodPost, "/book-court", nil, req, &resp); err != nil {
		return BookCourtResponse{}, err
	}
	return resp, nil
}

// CreatePayment settles a booking transaction with the chosen method.
func (c *APIClient) CreatePayment(ctx context.Context, req PaymentRequest) (PaymentResponse, error) {
	var resp PaymentResponse
	if err := c.do(ctx, http.MethodPost, "/booking-payment", nil, req, &resp); err != nil {
		return PaymentResponse{}, err
	}
	return resp, nil
}

// JoinOpenMatch requests a seat on an ask-to-join booking.
func (c *APIClient) JoinOpenMatch(ctx context.Context, req JoinMatchRequest) error {
	return c.do(ctx, http.MethodPost, "/join-open-matches", nil, req, nil)
}

// UploadScore submits a validated score sheet.
func (c *APIClient) UploadScore(ctx context.Context, req UploadScoreRequest) error {
	return c.do(ctx, http.MethodPost, "/upload-score", nil, req, nil)
}

// GetUser fetches the profile and wallet balance for a user.
func (c *APIClient) GetUser(ctx context.Context, userID string) (UserProfile, error) {
	q := url.Values{}
	q.Set("userId", userID)

	var profile UserProfile
	if err := c.do(ctx, http.MethodGet, "/get-user", q, nil, &profile); err != nil {
		return UserProfile{}, err
	}
	return profile, nil
}

// GetOpenMatch fetches an ask-to-join booking with its current roster.
func (c *APIClient) GetOpenMatch(ctx context.Context, bookingID string) (OpenMatch, error) {
	q := url.Values{}
	q.Set("bookingId", bookingID)

	var match OpenMatch
	if err := c.do(ctx, http.MethodGet, "/open-matches", q, nil, &match); err != nil {
		return OpenMatch{}, err
	}
	return match, nil
}
