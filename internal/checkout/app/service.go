package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/dwikikusuma/storefront/internal/checkout/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartLine struct {
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

type CartReader interface {
	Lines(ctx context.Context, sessionID string) ([]CartLine, decimal.Decimal, error)
	Clear(ctx context.Context, sessionID string) error
}

type PlacedOrder struct {
	SessionID string
	Lines     []CartLine
	Totals    domain.OrderTotals
	ShipTo    domain.ShippingDetails
}

type OrderPlacer interface {
	Place(ctx context.Context, o PlacedOrder) (string, error)
}

var (
	ErrEmptyCart = errors.New("cart is empty")
	ErrNoAttempt = errors.New("no active checkout attempt")
	ErrWrongStep = errors.New("operation not valid in current step")
)

// Attempt is a read-only view of a checkout attempt.
type Attempt struct {
	ID       string
	Step     domain.Step
	Shipping domain.ShippingDetails
	Payment  domain.PaymentDetails
	Settling bool
}

// CompletedOrder is the completion signal payload, delivered exactly
// once per settled attempt.
type CompletedOrder struct {
	SessionID string
	AttemptID string
	OrderID   string
	Totals    domain.OrderTotals
}

type attempt struct {
	id       string
	step     domain.Step
	shipping domain.ShippingDetails
	payment  domain.PaymentDetails
	settling bool
	timer    *time.Timer
}

// Service sequences the two-step checkout per session: shipping input,
// payment input, then a simulated settlement after a fixed delay. The
// settlement continuation is keyed by attempt id, so an attempt
// abandoned mid-delay settles as a no-op and cannot clear a cart it no
// longer owns.
type Service struct {
	cart   CartReader
	orders OrderPlacer
	delay  time.Duration
	log    *slog.Logger

	mu       sync.Mutex
	attempts map[string]*attempt
	notify   func(CompletedOrder)
}

func NewService(cart CartReader, orders OrderPlacer, delay time.Duration, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		cart:     cart,
		orders:   orders,
		delay:    delay,
		log:      log,
		attempts: make(map[string]*attempt),
	}
}

// SetNotify registers the completion signal sink. Must be set before
// the first payment submission that should be observed.
func (s *Service) SetNotify(fn func(CompletedOrder)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notify = fn
}

// Begin starts a fresh attempt for the session, replacing any previous
// one. The prefill (typically derived from the signed-in identity) only
// seeds the shipping draft; validation happens at submission.
func (s *Service) Begin(ctx context.Context, sessionID string, prefill domain.ShippingDetails) (Attempt, error) {
	lines, _, err := s.cart.Lines(ctx, sessionID)
	if err != nil {
		return Attempt{}, err
	}
	if len(lines) == 0 {
		return Attempt{}, ErrEmptyCart
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.attempts[sessionID]; ok && prev.timer != nil {
		prev.timer.Stop()
	}
	at := &attempt{
		id:       uuid.NewString(),
		step:     domain.StepShipping,
		shipping: prefill,
	}
	s.attempts[sessionID] = at
	s.log.Debug("checkout started", slog.String("session", sessionID), slog.String("attempt", at.id))
	return at.view(), nil
}

func (s *Service) Current(sessionID string) (Attempt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	at, ok := s.attempts[sessionID]
	if !ok {
		return Attempt{}, false
	}
	return at.view(), true
}

// SubmitShipping validates and stores the shipping draft, advancing to
// the payment step. A rejected submission leaves the step unchanged.
func (s *Service) SubmitShipping(sessionID string, d domain.ShippingDetails) (Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	at, ok := s.attempts[sessionID]
	if !ok {
		return Attempt{}, ErrNoAttempt
	}
	if at.step != domain.StepShipping {
		return at.view(), ErrWrongStep
	}
	if err := d.Validate(); err != nil {
		return at.view(), err
	}
	at.shipping = d
	at.step = domain.StepPayment
	return at.view(), nil
}

// Back returns from the payment step to the shipping step with both
// drafts preserved.
func (s *Service) Back(sessionID string) (Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	at, ok := s.attempts[sessionID]
	if !ok {
		return Attempt{}, ErrNoAttempt
	}
	if at.step != domain.StepPayment || at.settling {
		return at.view(), ErrWrongStep
	}
	at.step = domain.StepShipping
	return at.view(), nil
}

// SubmitPayment validates the payment draft and schedules settlement
// after the configured delay. It returns immediately; the clear and
// completion effects run when the delay elapses, and only if this
// attempt is still the active one.
func (s *Service) SubmitPayment(sessionID string, d domain.PaymentDetails) (Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	at, ok := s.attempts[sessionID]
	if !ok {
		return Attempt{}, ErrNoAttempt
	}
	if at.step != domain.StepPayment || at.settling {
		return at.view(), ErrWrongStep
	}
	if err := d.Validate(); err != nil {
		return at.view(), err
	}
	at.payment = d
	at.settling = true

	attemptID := at.id
	at.timer = time.AfterFunc(s.delay, func() {
		if err := s.settle(context.Background(), sessionID, attemptID); err != nil {
			s.log.Error("settlement failed", slog.String("session", sessionID), slog.Any("err", err))
		}
	})
	s.log.Debug("payment submitted", slog.String("session", sessionID), slog.String("attempt", attemptID))
	return at.view(), nil
}

// Abandon drops the session's attempt and cancels any pending
// settlement. Dropping a non-existent attempt is a no-op.
func (s *Service) Abandon(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	at, ok := s.attempts[sessionID]
	if !ok {
		return
	}
	if at.timer != nil {
		at.timer.Stop()
	}
	delete(s.attempts, sessionID)
	s.log.Debug("checkout abandoned", slog.String("session", sessionID), slog.String("attempt", at.id))
}

type Summary struct {
	Lines  []CartLine
	Totals domain.OrderTotals
}

// Summary computes the order summary from the cart's current state.
// Totals are derived fresh on every call, never stored.
func (s *Service) Summary(ctx context.Context, sessionID string) (Summary, error) {
	lines, subtotal, err := s.cart.Lines(ctx, sessionID)
	if err != nil {
		return Summary{}, err
	}
	if len(lines) == 0 {
		return Summary{}, ErrEmptyCart
	}
	return Summary{Lines: lines, Totals: domain.ComputeTotals(subtotal)}, nil
}

// settle runs the delayed completion. A stale attempt id, a missing
// attempt, or an attempt not waiting on settlement all make it a
// silent no-op.
func (s *Service) settle(ctx context.Context, sessionID, attemptID string) error {
	s.mu.Lock()
	at, ok := s.attempts[sessionID]
	if !ok || at.id != attemptID || !at.settling || at.step != domain.StepPayment {
		s.mu.Unlock()
		return nil
	}
	at.step = domain.StepCompleted
	shipping := at.shipping
	s.mu.Unlock()

	lines, subtotal, err := s.cart.Lines(ctx, sessionID)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		s.dropAttempt(sessionID, attemptID)
		return ErrEmptyCart
	}

	totals := domain.ComputeTotals(subtotal)
	orderID, err := s.orders.Place(ctx, PlacedOrder{
		SessionID: sessionID,
		Lines:     lines,
		Totals:    totals,
		ShipTo:    shipping,
	})
	if err != nil {
		return err
	}

	if err := s.cart.Clear(ctx, sessionID); err != nil {
		return err
	}

	s.mu.Lock()
	notify := s.notify
	s.mu.Unlock()
	s.dropAttempt(sessionID, attemptID)

	s.log.Info("order completed",
		slog.String("session", sessionID),
		slog.String("order", orderID),
		slog.String("total", totals.GrandTotal.StringFixed(2)),
	)
	if notify != nil {
		notify(CompletedOrder{
			SessionID: sessionID,
			AttemptID: attemptID,
			OrderID:   orderID,
			Totals:    totals,
		})
	}
	return nil
}

func (s *Service) dropAttempt(sessionID, attemptID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if at, ok := s.attempts[sessionID]; ok && at.id == attemptID {
		delete(s.attempts, sessionID)
	}
}

func (a *attempt) view() Attempt {
	return Attempt{
		ID:       a.id,
		Step:     a.step,
		Shipping: a.shipping,
		Payment:  a.payment,
		Settling: a.settling,
	}
}
