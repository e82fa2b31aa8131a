package flows

import (
	"context"
	"time"

	"github.com/auspicious-soft/courtside/internal/backend"
	"github.com/auspicious-soft/courtside/internal/booking"
	"github.com/auspicious-soft/courtside/internal/metrics"
	"github.com/auspicious-soft/courtside/internal/pubsub"
	"github.com/auspicious-soft/courtside/internal/scoring"
	"github.com/auspicious-soft/courtside/internal/session"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Catalog resolves cached venue details for booking records.
type Catalog interface {
	GetVenue(venueID string) (*backend.Venue, error)
}

// New creates a new Flows orchestrator.
func New(store Store, api backend.BookingAPI, catalog Catalog, notifier Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient) *Flows {
	return &Flows{
		store:    store,
		api:      api,
		catalog:  catalog,
		notifier: notifier,
		metrics:  metrics,
		pubsub:   pubsub,
	}
}

// StartSession opens a fresh booking session for the user and seats them in
// the first position of team one.
func (f *Flows) StartSession(params StartSessionParams, self booking.Seat) (*session.Session, error) {
	if !scoring.KnownSport(params.Sport) {
		return nil, &ValidationError{Message: "Invalid game type"}
	}

	sess := &session.Session{
		ID:            uuid.NewString(),
		UserID:        params.UserID,
		State:         session.StateOpen,
		VenueID:       params.VenueID,
		CourtID:       params.CourtID,
		BookingDate:   params.BookingDate,
		Sport:         params.Sport,
		Slots:         params.Slots,
		TotalPrice:    params.TotalPrice,
		AskToJoin:     params.AskToJoin,
		IsCompetitive: params.IsCompetitive,
		SkillRequired: params.SkillRequired,
	}
	if err := sess.Roster.Assign(1, 0, self); err != nil {
		return nil, err
	}
	if err := f.store.CreateSession(sess); err != nil {
		return nil, err
	}
	log.Info("Opened booking session", "sessionID", sess.ID, "userID", params.UserID, "court", params.CourtID)
	return sess, nil
}

// ConfirmBooking runs the confirm flow: eligibility checks, booking creation
// and payment. A session can only have one confirm in flight; a duplicate
// confirm finds the session already SUBMITTING and is rejected.
func (f *Flows) ConfirmBooking(ctx context.Context, sessionID string, dryRun bool) (*ConfirmResult, error) {
	start := time.Now()
	defer func() {
		f.metrics.ObserveConfirmDuration(time.Since(start).Seconds())
	}()

	sess, err := f.store.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	// The method check happens before any network call.
	if sess.PaymentMethod == "" {
		return nil, booking.ErrNoPaymentMethod
	}

	profile, err := f.api.GetUser(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	options := booking.EligibleMethods(sess.TotalPrice, profile.PlayCoins)
	if !options.Allows(sess.PaymentMethod) {
		return nil, booking.ErrMethodNotEligible
	}
	payable, err := booking.Payable(sess.TotalPrice, profile.PlayCoins, sess.PaymentMethod)
	if err != nil {
		return nil, err
	}

	if dryRun {
		log.Info("[Dry Run] Would confirm booking", "sessionID", sessionID, "method", sess.PaymentMethod, "payable", payable)
		return &ConfirmResult{State: sess.State, AmountDue: payable, WalletBalance: profile.PlayCoins}, nil
	}

	if err := f.store.TransitionState(sessionID, session.StateOpen, session.StateSubmitting); err != nil {
		return nil, err
	}

	team1, team2 := booking.TeamPayloads(sess.Roster, sess.UserID, sess.Equipment)
	bookResp, err := f.api.BookCourt(ctx, backend.BookCourtRequest{
		BookingDate:   sess.BookingDate,
		CourtID:       sess.CourtID,
		BookingSlots:  sess.Slots,
		AskToJoin:     sess.AskToJoin,
		IsCompetitive: sess.IsCompetitive,
		SkillRequired: sess.SkillRequired,
		Team1:         team1,
		Team2:         team2,
	})
	if err != nil {
		f.reopen(sessionID)
		return nil, err
	}
	f.metrics.IncBookingCreated()
	if err := f.store.SetSubmission(sessionID, bookResp.TransactionID, ""); err != nil {
		log.Error("Failed to record transaction reference", "error", err, "sessionID", sessionID)
	}

	f.metrics.IncPaymentInitiated()
	payResp, err := f.api.CreatePayment(ctx, backend.PaymentRequest{
		TransactionID: bookResp.TransactionID,
		Method:        sess.PaymentMethod,
	})
	if err != nil {
		// No automatic retry. The session reopens and the user decides.
		f.metrics.IncPaymentFailed()
		f.reopen(sessionID)
		return nil, err
	}

	if !payResp.Settled {
		if err := f.store.TransitionState(sessionID, session.StateSubmitting, session.StateAwaitingPayment); err != nil {
			log.Error("Failed to move session to awaiting payment", "error", err, "sessionID", sessionID)
		}
		if err := f.store.SetSubmission(sessionID, bookResp.TransactionID, payResp.OrderID); err != nil {
			log.Error("Failed to record payment order", "error", err, "sessionID", sessionID)
		}
		log.Info("Handing off to payment gateway", "sessionID", sessionID, "orderID", payResp.OrderID, "amount", payResp.Amount)
		return &ConfirmResult{
			State:         session.StateAwaitingPayment,
			TransactionID: bookResp.TransactionID,
			OrderID:       payResp.OrderID,
			AmountDue:     payResp.Amount,
			WalletBalance: profile.PlayCoins,
		}, nil
	}

	// Wallet covered the full amount; the booking is settled in one step.
	f.metrics.IncPaymentSettled()
	if err := f.store.TransitionState(sessionID, session.StateSubmitting, session.StateConfirmed); err != nil {
		log.Error("Failed to move session to confirmed", "error", err, "sessionID", sessionID)
	}
	rec := f.finalizeBooking(sess, bookResp.TransactionID, dryRun)

	// The wallet balance shown after settling always comes from a fresh
	// profile fetch, never from local arithmetic.
	balance := profile.PlayCoins
	if fresh, err := f.api.GetUser(ctx, sess.UserID); err == nil {
		balance = fresh.PlayCoins
	} else {
		log.Error("Failed to refresh wallet balance", "error", err, "userID", sess.UserID)
	}

	return &ConfirmResult{
		State:         session.StateConfirmed,
		BookingID:     rec.ID,
		TransactionID: bookResp.TransactionID,
		AmountDue:     0,
		WalletBalance: balance,
	}, nil
}

// CompletePayment resolves a session whose gateway payment settled.
func (f *Flows) CompletePayment(ctx context.Context, sessionID string, dryRun bool) error {
	sess, err := f.store.GetSession(sessionID)
	if err != nil {
		return err
	}
	if err := f.store.TransitionState(sessionID, session.StateAwaitingPayment, session.StateConfirmed); err != nil {
		return err
	}
	f.metrics.IncPaymentSettled()

	if !dryRun {
		f.pubsub.SendMessage(pubsub.EventPaymentSettled, pubsub.PaymentSettledEvent{
			TransactionID: sess.TransactionID,
			OrderID:       sess.OrderID,
			Amount:        sess.TotalPrice,
		})
	}
	f.finalizeBooking(sess, sess.TransactionID, dryRun)
	return nil
}

// AbandonPayment reopens a session whose gateway payment failed or was
// dismissed. Nothing is retried automatically.
func (f *Flows) AbandonPayment(sessionID string) error {
	if err := f.store.TransitionState(sessionID, session.StateAwaitingPayment, session.StateOpen); err != nil {
		return err
	}
	f.metrics.IncPaymentFailed()
	log.Info("Payment abandoned, session reopened", "sessionID", sessionID)
	return nil
}

// Cancel abandons the session entirely, rolling back any pending seat claim.
func (f *Flows) Cancel(sessionID string) error {
	return f.store.CancelSession(sessionID)
}

// finalizeBooking records the confirmed booking and fans out notifications.
func (f *Flows) finalizeBooking(sess *session.Session, transactionID string, dryRun bool) *session.BookingRecord {
	venueName := sess.VenueID
	if v, err := f.catalog.GetVenue(sess.VenueID); err == nil && v != nil {
		venueName = v.Name
	}

	rec := &session.BookingRecord{
		ID:            uuid.NewString(),
		SessionID:     sess.ID,
		UserID:        sess.UserID,
		VenueName:     venueName,
		CourtName:     sess.CourtID,
		Sport:         sess.Sport,
		BookingDate:   sess.BookingDate,
		Slots:         sess.Slots,
		AmountPaid:    sess.TotalPrice,
		PaymentMethod: sess.PaymentMethod,
	}
	if err := f.store.RecordBooking(rec); err != nil {
		log.Error("Failed to record booking", "error", err, "sessionID", sess.ID)
	}

	if err := f.notifier.SendBookingConfirmation(rec, dryRun); err != nil {
		log.Error("Failed to send booking confirmation", "error", err, "bookingID", rec.ID)
	}
	if !dryRun {
		f.pubsub.SendMessage(pubsub.EventBookingConfirmed, pubsub.BookingConfirmedEvent{
			BookingID:   rec.ID,
			UserID:      rec.UserID,
			VenueName:   rec.VenueName,
			CourtName:   rec.CourtName,
			BookingDate: rec.BookingDate,
			AmountPaid:  rec.AmountPaid,
		})
	}
	log.Info("Booking confirmed", "bookingID", rec.ID, "transactionID", transactionID)
	return rec
}

func (f *Flows) reopen(sessionID string) {
	if err := f.store.TransitionState(sessionID, session.StateSubmitting, session.StateOpen); err != nil {
		log.Error("Failed to reopen session after failure", "error", err, "sessionID", sessionID)
	}
}

// JoinOpenMatch requests a seat on an ask-to-join booking. The seat is
// checked against the latest roster before the network call so an obviously
// taken seat fails fast.
func (f *Flows) JoinOpenMatch(ctx context.Context, params JoinParams, dryRun bool) error {
	position := booking.PositionLabel(params.Team, params.Seat)
	if position == "" {
		return booking.ErrInvalidPosition
	}

	match, err := f.api.GetOpenMatch(ctx, params.BookingID)
	if err != nil {
		return err
	}
	if match.Roster.At(params.Team, params.Seat).Occupied() {
		return booking.ErrSeatTaken
	}

	rackets, balls := params.Equipment.Counts()
	if dryRun {
		log.Info("[Dry Run] Would join open match", "bookingID", params.BookingID, "position", position)
		return nil
	}

	err = f.api.JoinOpenMatch(ctx, backend.JoinMatchRequest{
		BookingID:         params.BookingID,
		RequestedPosition: position,
		RequestedTeam:     booking.TeamLabel(params.Team),
		Rackets:           rackets,
		Balls:             balls,
	})
	if err != nil {
		return err
	}

	f.metrics.IncJoinRequest()
	f.pubsub.SendMessage(pubsub.EventSpotFilled, pubsub.SpotFilledEvent{
		BookingID: params.BookingID,
		UserID:    params.UserID,
		Position:  position,
	})
	log.Info("Joined open match", "bookingID", params.BookingID, "position", position)
	return nil
}

// UploadScore validates the score sheet and submits it. An invalid sheet is
// rejected locally with the first violation message and never reaches the
// backend.
func (f *Flows) UploadScore(ctx context.Context, bookingID string, form scoring.MatchScoreForm, dryRun bool) error {
	rec, err := f.store.GetBooking(bookingID)
	if err != nil {
		return err
	}

	if !form.IsValid(rec.Sport) {
		reason, _ := form.FirstViolation(rec.Sport)
		f.metrics.IncScoreValidationFailure()
		log.Info("Score sheet rejected", "bookingID", bookingID, "reason", reason)
		return &ValidationError{Message: reason}
	}

	if dryRun {
		log.Info("[Dry Run] Would upload score", "bookingID", bookingID)
		return nil
	}

	sets := form.Sets()
	err = f.api.UploadScore(ctx, backend.UploadScoreRequest{
		BookingID: bookingID,
		Set1:      sets[0],
		Set2:      sets[1],
		Set3:      sets[2],
	})
	if err != nil {
		return err
	}

	if err := f.store.SetScore(bookingID, form); err != nil {
		log.Error("Failed to store score", "error", err, "bookingID", bookingID)
	}
	f.metrics.IncScoreUpload()

	if err := f.notifier.SendScoreUploaded(rec, form, dryRun); err != nil {
		log.Error("Failed to send score notification", "error", err, "bookingID", bookingID)
	}
	f.pubsub.SendMessage(pubsub.EventScoreUploaded, pubsub.ScoreUploadedEvent{
		BookingID: bookingID,
		UserID:    rec.UserID,
		Sport:     string(rec.Sport),
	})
	return nil
}
