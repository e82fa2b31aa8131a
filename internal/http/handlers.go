package http

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"io"

	"github.com/auspicious-soft/courtside/internal/backend"
	"github.com/auspicious-soft/courtside/internal/booking"
	"github.com/auspicious-soft/courtside/internal/discovery"
	"github.com/auspicious-soft/courtside/internal/flows"
	"github.com/auspicious-soft/courtside/internal/pubsub"
	"github.com/auspicious-soft/courtside/internal/scoring"
	"github.com/auspicious-soft/courtside/internal/session"
	"github.com/charmbracelet/log"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ClearStoresHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to clear all stores")
		s.Sessions.Clear()
		s.Catalog.Clear()
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Stores cleared!")
		log.Info("Stores cleared successfully")
	}
}

// respondJSON writes v as a JSON response body.
func respondJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

// respondError maps domain errors onto HTTP statuses. Business rejection
// messages are passed through verbatim so the client can show them as-is.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var valErr *flows.ValidationError
	var statusErr *backend.StatusError
	switch {
	case errors.As(err, &valErr):
		status = http.StatusBadRequest
	case errors.As(err, &statusErr):
		status = statusErr.Code
	case errors.Is(err, booking.ErrNoPaymentMethod), errors.Is(err, booking.ErrInvalidPosition):
		status = http.StatusBadRequest
	case errors.Is(err, booking.ErrMethodNotEligible), errors.Is(err, booking.ErrSeatTaken), errors.Is(err, session.ErrStateConflict):
		status = http.StatusConflict
	case errors.Is(err, session.ErrNotFound):
		status = http.StatusNotFound
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(map[string]string{"message": err.Error()}); encErr != nil {
		log.Error("Failed to write error response", "error", encErr)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Error("Failed to decode request body", "error", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return false
	}
	return true
}

// StatsHandler serves the durable usage counters. Unlike /metrics these
// survive restarts.
func (s *Server) StatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := s.Counters.GetAll()
		if err != nil {
			http.Error(w, "Failed to get stats", http.StatusInternalServerError)
			log.Error("Failed to get stats from store", "error", err)
			return
		}
		respondJSON(w, stats)
	}
}

func (s *Server) ListVenuesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venues, err := s.Catalog.ListVenues()
		if err != nil {
			http.Error(w, "Failed to get venues", http.StatusInternalServerError)
			log.Error("Failed to get venues from catalog", "error", err)
			return
		}
		respondJSON(w, venues)
	}
}

func (s *Server) RefreshVenuesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Starting venue refresh...")
		isDryRun := isDryRunFromContext(r)

		venues, err := s.Backend.GetVenues(r.Context())
		if err != nil {
			log.Error("Error fetching venues from backend", "error", err)
			http.Error(w, "Failed to fetch venues", http.StatusInternalServerError)
			return
		}
		log.Info("Found venues from API", "count", len(venues))

		if len(venues) > 0 {
			if !isDryRun {
				if err := s.Catalog.UpsertVenues(venues); err != nil {
					log.Error("Failed to upsert venues", "error", err)
					http.Error(w, "Failed to save venues", http.StatusInternalServerError)
					return
				}
			} else {
				log.Info("[Dry Run] Would have upserted venues", "count", len(venues))
			}
		}

		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Venue refresh completed.")
		log.Info("Venue refresh finished.", "count", len(venues))
	}
}

func (s *Server) AvailabilityHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venueID := r.URL.Query().Get("venueId")
		date := r.URL.Query().Get("date")
		if venueID == "" || date == "" {
			http.Error(w, "venueId and date are required", http.StatusBadRequest)
			return
		}

		if r.URL.Query().Get("refresh") == "true" {
			courts, err := s.Backend.GetAvailability(r.Context(), venueID, date)
			if err != nil {
				log.Error("Error fetching availability from backend", "error", err, "venueID", venueID, "date", date)
				http.Error(w, "Failed to fetch availability", http.StatusInternalServerError)
				return
			}
			if !isDryRunFromContext(r) {
				if err := s.Catalog.UpsertAvailability(venueID, date, courts); err != nil {
					log.Error("Failed to upsert availability", "error", err, "venueID", venueID)
					http.Error(w, "Failed to save availability", http.StatusInternalServerError)
					return
				}
			} else {
				log.Info("[Dry Run] Would have upserted availability", "venueID", venueID, "date", date, "courts", len(courts))
			}
		}

		courts, err := s.Catalog.GetAvailability(venueID, date)
		if err != nil {
			http.Error(w, "Failed to get availability", http.StatusInternalServerError)
			log.Error("Failed to get availability from catalog", "error", err)
			return
		}
		respondJSON(w, courts)
	}
}

func (s *Server) DiscoverMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Starting open match discovery...")

		daysStr := r.URL.Query().Get("days")
		daysToSubtract := 0
		if daysStr != "" {
			parsedDays, err := strconv.Atoi(daysStr)
			if err == nil && parsedDays > 0 {
				daysToSubtract = parsedDays
				log.Info("Discovering historical matches", "days", daysToSubtract)
			} else {
				log.Warn("Invalid 'days' parameter provided. Defaulting to 0.", "days_param", daysStr)
			}
		}
		sportID := r.URL.Query().Get("sport")
		if sportID == "" {
			sportID = "PADEL"
		}

		startDate := time.Now().AddDate(0, 0, -daysToSubtract)
		params := &discovery.SearchParams{
			SportID:       sportID,
			HasPlayers:    true,
			Sort:          "start_date,ASC",
			FromStartDate: startDate.Format("2006-01-02") + "T00:00:00",
		}
		matches, err := s.Discovery.FindOpenMatches(params)
		if err != nil {
			log.Error("Error discovering open matches", "error", err)
			http.Error(w, "Failed to discover matches", http.StatusInternalServerError)
			return
		}

		log.Info("Open match discovery finished.", "count", len(matches))
		respondJSON(w, matches)
	}
}

func (s *Server) StartSessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			UserID        string        `json:"userId"`
			UserName      string        `json:"userName"`
			UserImage     string        `json:"userImage"`
			VenueID       string        `json:"venueId"`
			CourtID       string        `json:"courtId"`
			BookingDate   string        `json:"bookingDate"`
			Sport         scoring.Sport `json:"game"`
			Slots         []string      `json:"bookingSlots"`
			TotalPrice    int64         `json:"totalPrice"`
			AskToJoin     bool          `json:"askToJoin"`
			IsCompetitive bool          `json:"isCompetitive"`
			SkillRequired float64       `json:"skillRequired"`
		}
		if !decodeBody(w, r, &req) {
			return
		}

		self := booking.Seat{ID: req.UserID, Name: req.UserName, Image: req.UserImage, Type: booking.SeatUser}
		sess, err := s.Flows.StartSession(flows.StartSessionParams{
			UserID:        req.UserID,
			VenueID:       req.VenueID,
			CourtID:       req.CourtID,
			BookingDate:   req.BookingDate,
			Sport:         req.Sport,
			Slots:         req.Slots,
			TotalPrice:    req.TotalPrice,
			AskToJoin:     req.AskToJoin,
			IsCompetitive: req.IsCompetitive,
			SkillRequired: req.SkillRequired,
		}, self)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, sess)
	}
}

func (s *Server) GetSessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.URL.Query().Get("sessionId")
		userID := r.URL.Query().Get("userId")

		var sess *session.Session
		var err error
		switch {
		case sessionID != "":
			sess, err = s.Sessions.GetSession(sessionID)
		case userID != "":
			sess, err = s.Sessions.GetOpenSessionForUser(userID)
		default:
			http.Error(w, "sessionId or userId is required", http.StatusBadRequest)
			return
		}
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, sess)
	}
}

func (s *Server) AssignSeatHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			SessionID string       `json:"sessionId"`
			Team      int          `json:"team"`
			Seat      int          `json:"seat"`
			Player    booking.Seat `json:"player"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Player.Type == "" {
			req.Player.Type = booking.SeatGuest
		}
		if err := s.Sessions.AssignSeat(req.SessionID, req.Team, req.Seat, req.Player); err != nil {
			respondError(w, err)
			return
		}
		w.Write([]byte("OK"))
	}
}

func (s *Server) ClearSeatHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			SessionID string `json:"sessionId"`
			Team      int    `json:"team"`
			Seat      int    `json:"seat"`
			Vacate    bool   `json:"vacate"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		var err error
		if req.Vacate {
			err = s.Sessions.VacateSeat(req.SessionID, req.Team, req.Seat)
		} else {
			err = s.Sessions.ClearSeat(req.SessionID, req.Team, req.Seat)
		}
		if err != nil {
			respondError(w, err)
			return
		}
		w.Write([]byte("OK"))
	}
}

func (s *Server) SetEquipmentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			SessionID string            `json:"sessionId"`
			Rackets   booking.Selection `json:"rackets"`
			Balls     booking.Selection `json:"balls"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		eq := booking.Equipment{Rackets: req.Rackets, Balls: req.Balls}
		if err := s.Sessions.SetEquipment(req.SessionID, eq); err != nil {
			respondError(w, err)
			return
		}
		w.Write([]byte("OK"))
	}
}

func (s *Server) SetPaymentMethodHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			SessionID string                `json:"sessionId"`
			Method    booking.PaymentMethod `json:"method"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		if err := s.Sessions.SetPaymentMethod(req.SessionID, req.Method); err != nil {
			respondError(w, err)
			return
		}
		w.Write([]byte("OK"))
	}
}

func (s *Server) ConfirmBookingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			SessionID string `json:"sessionId"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		isDryRun := isDryRunFromContext(r)

		result, err := s.Flows.ConfirmBooking(r.Context(), req.SessionID, isDryRun)
		if err != nil {
			respondError(w, err)
			return
		}
		if result.State == session.StateConfirmed && !isDryRun {
			s.Counters.Increment("bookings_confirmed")
		}
		if result.State == session.StateAwaitingPayment {
			// The gateway handoff needs the public key to open checkout.
			respondJSON(w, struct {
				*flows.ConfirmResult
				RazorpayKeyID string `json:"razorpayKeyId"`
			}{result, s.Cfg.Razorpay.KeyID})
			return
		}
		respondJSON(w, result)
	}
}

func (s *Server) CompletePaymentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			SessionID string `json:"sessionId"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		isDryRun := isDryRunFromContext(r)
		if err := s.Flows.CompletePayment(r.Context(), req.SessionID, isDryRun); err != nil {
			respondError(w, err)
			return
		}
		if !isDryRun {
			s.Counters.Increment("bookings_confirmed")
		}
		w.Write([]byte("OK"))
	}
}

func (s *Server) AbandonPaymentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			SessionID string `json:"sessionId"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		if err := s.Flows.AbandonPayment(req.SessionID); err != nil {
			respondError(w, err)
			return
		}
		w.Write([]byte("OK"))
	}
}

func (s *Server) CancelSessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			SessionID string `json:"sessionId"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		if err := s.Flows.Cancel(req.SessionID); err != nil {
			respondError(w, err)
			return
		}
		w.Write([]byte("OK"))
	}
}

func (s *Server) JoinMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			UserID    string `json:"userId"`
			UserName  string `json:"userName"`
			BookingID string `json:"bookingId"`
			Team      int    `json:"team"`
			Seat      int    `json:"seat"`
			Rackets   int    `json:"rackets"`
			Balls     int    `json:"balls"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		isDryRun := isDryRunFromContext(r)

		var eq booking.Equipment
		if req.Rackets > 0 {
			eq.Rackets = booking.Select(req.Rackets)
		}
		if req.Balls > 0 {
			eq.Balls = booking.Select(req.Balls)
		}
		err := s.Flows.JoinOpenMatch(r.Context(), flows.JoinParams{
			UserID:    req.UserID,
			UserName:  req.UserName,
			BookingID: req.BookingID,
			Team:      req.Team,
			Seat:      req.Seat,
			Equipment: eq,
		}, isDryRun)
		if err != nil {
			respondError(w, err)
			return
		}
		w.Write([]byte("OK"))
	}
}

func (s *Server) ListBookingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("userId")
		if userID == "" {
			http.Error(w, "userId is required", http.StatusBadRequest)
			return
		}
		bookings, err := s.Sessions.ListBookings(userID)
		if err != nil {
			http.Error(w, "Failed to get bookings", http.StatusInternalServerError)
			log.Error("Failed to get bookings from store", "error", err)
			return
		}
		respondJSON(w, bookings)
	}
}

func (s *Server) UploadScoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			BookingID string           `json:"bookingId"`
			Set1      scoring.SetScore `json:"set1"`
			Set2      scoring.SetScore `json:"set2"`
			Set3      scoring.SetScore `json:"set3"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		isDryRun := isDryRunFromContext(r)

		form := scoring.MatchScoreForm{Set1: req.Set1, Set2: req.Set2, Set3: req.Set3}
		if err := s.Flows.UploadScore(r.Context(), req.BookingID, form, isDryRun); err != nil {
			respondError(w, err)
			return
		}
		if !isDryRun {
			s.Counters.Increment("scores_uploaded")
		}
		w.Write([]byte("OK"))
	}
}

func (s *Server) NotifySpotFilledHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received spot filled message", "body", string(bodyBytes))
		// Define a small struct to decode the incoming JSON's `data` field
		var pubsubMsg struct {
			Subscription string `json:"subscription"`
			Message      struct {
				Data string `json:"data"` // base64-encoded message payload
			} `json:"message"`
		}

		// Parse the outer JSON to get `data`
		if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		// Decode base64 to raw MessagePack bytes
		rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}
		isDryRun := isDryRunFromContext(r)
		event := pubsub.SpotFilledEvent{}
		s.pubsub.ProcessMessage(rawData, &event)

		match, err := s.Backend.GetOpenMatch(r.Context(), event.BookingID)
		if err != nil {
			log.Error("Failed to fetch open match", "error", err, "bookingID", event.BookingID)
			http.Error(w, "Failed to fetch open match", http.StatusInternalServerError)
			return
		}
		if match.Roster.OpenSpots(false) > 0 {
			if err := s.Notifier.SendOpenSpotInvite(&match, isDryRun); err != nil {
				log.Error("Failed to send open spot invite", "error", err, "bookingID", event.BookingID)
				http.Error(w, "Failed to send open spot invite", http.StatusInternalServerError)
				return
			}
		}
		w.Write([]byte("OK"))
	}
}
