// Package session orchestrates one user's account: portfolio, order book,
// price feed subscription, and the command/query API consumed by the
// presentation layer.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"paper-exchange/internal/config"
	"paper-exchange/internal/engine"
	"paper-exchange/internal/market"
	"paper-exchange/internal/models"
	"paper-exchange/internal/orders"
	"paper-exchange/internal/portfolio"
	"paper-exchange/internal/store"
)

// MarketFeed is the session's view of the price feed.
type MarketFeed interface {
	Tick() []market.PriceChange
	Prices() map[string]float64
	Quote(symbol string) (*models.Quote, bool)
	Quotes() []models.Quote
	Sector(symbol string) string
}

// Session owns the portfolio/order-book pair for one user. A single mutex
// serializes ticks and user commands, so no mutation ever observes another
// mid-flight: the cooperative, tick-driven model made concrete.
type Session struct {
	mu sync.Mutex

	key  string
	cfg  config.SimulationConfig
	feed MarketFeed
	book *orders.Book
	pf   *portfolio.Portfolio
	eng  *engine.Engine
	db   store.Store
	log  zerolog.Logger
}

// New creates a session with a fresh portfolio at the configured starting
// capital. db may be nil to run without persistence.
func New(key string, cfg config.SimulationConfig, feed MarketFeed, db store.Store, logger zerolog.Logger) *Session {
	logger = logger.With().Str("session", key).Logger()
	pf := portfolio.New(cfg.StartingCash)
	return &Session{
		key:  key,
		cfg:  cfg,
		feed: feed,
		book: orders.NewBook(logger),
		pf:   pf,
		eng:  engine.New(pf, cfg, logger),
		db:   db,
		log:  logger,
	}
}

// Restore loads the persisted snapshot for this session, if one exists.
func (s *Session) Restore(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	state, err := s.db.Load(ctx, s.key)
	if err != nil {
		return fmt.Errorf("restoring session %s: %w", s.key, err)
	}
	if state == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pf.Restore(state.Cash, state.Positions)
	s.book.Restore(state.Orders)
	s.eng.Restore(state.Transactions)
	s.log.Info().Float64("cash", state.Cash).Int("positions", len(state.Positions)).
		Int("orders", len(state.Orders)).Msg("Session restored")
	return nil
}

// Run drives the session on the configured tick cadence until the context
// is cancelled.
func (s *Session) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick advances the market by one step and then evaluates the order book
// against the settled quotes. All quotes mutate before any order is looked
// at; each fill is applied before the next order is considered.
func (s *Session) Tick(ctx context.Context) []market.PriceChange {
	s.mu.Lock()
	defer s.mu.Unlock()

	changes := s.feed.Tick()

	filled := 0
	s.book.Evaluate(s.feed.Prices(), func(o *models.Order, price float64) error {
		if _, err := s.eng.Apply(o.Symbol, o.Side, o.Product, o.Quantity, price); err != nil {
			return err
		}
		filled++
		return nil
	})

	if filled > 0 {
		s.snapshot(ctx)
	}
	return changes
}

// PlaceOrder validates a draft and routes it: MARKET orders execute
// synchronously against the current quote; LIMIT and STOP_LIMIT orders rest
// in the book until the feed satisfies them. Returns the order id.
func (s *Session) PlaceOrder(ctx context.Context, draft models.OrderDraft) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	quote, err := s.validateDraft(draft)
	if err != nil {
		return "", err
	}

	o := &models.Order{
		ID:        uuid.NewString(),
		Symbol:    draft.Symbol,
		Side:      draft.Side,
		Terms:     draft.Terms,
		Product:   draft.Product,
		Quantity:  draft.Quantity,
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now(),
	}

	if draft.Terms.Kind() == models.OrderKindMarket {
		// Market orders never rest: fill now or fail outright.
		if _, err := s.eng.Apply(o.Symbol, o.Side, o.Product, o.Quantity, quote.LastPrice); err != nil {
			return "", err
		}
		o.Status = models.OrderStatusExecuted
		if err := s.book.Submit(o); err != nil {
			return "", err
		}
		s.snapshot(ctx)
		return o.ID, nil
	}

	// Advisory affordability pre-check for resting buys, against the
	// requested limit price as the worst-case capital need. The
	// authoritative check re-runs in the engine at fill time.
	if draft.Side == models.OrderSideBuy {
		limit, _ := o.LimitPrice()
		required := s.eng.RequiredCapital(limit*float64(draft.Quantity), draft.Product)
		if s.pf.Cash() < required {
			return "", fmt.Errorf("placing order: %w", models.ErrInsufficientFunds)
		}
	}

	if err := s.book.Submit(o); err != nil {
		return "", err
	}
	s.log.Info().Str("order_id", o.ID).Str("symbol", o.Symbol).
		Str("side", string(o.Side)).Str("kind", string(draft.Terms.Kind())).
		Int("quantity", o.Quantity).Msg("Order placed")
	s.snapshot(ctx)
	return o.ID, nil
}

// validateDraft rejects malformed drafts at the boundary and resolves the
// symbol's quote.
func (s *Session) validateDraft(draft models.OrderDraft) (*models.Quote, error) {
	if draft.Quantity <= 0 {
		return nil, &models.ValidationError{Field: "quantity", Reason: "must be positive"}
	}
	if draft.Side != models.OrderSideBuy && draft.Side != models.OrderSideSell {
		return nil, &models.ValidationError{Field: "side", Reason: "must be BUY or SELL"}
	}
	if draft.Product != models.ProductCash && draft.Product != models.ProductMargin {
		return nil, &models.ValidationError{Field: "product", Reason: "must be CASH or MARGIN"}
	}
	switch t := draft.Terms.(type) {
	case models.MarketTerms:
	case models.LimitTerms:
		if t.LimitPrice <= 0 {
			return nil, &models.ValidationError{Field: "limitPrice", Reason: "must be positive"}
		}
	case models.StopLimitTerms:
		if t.LimitPrice <= 0 {
			return nil, &models.ValidationError{Field: "limitPrice", Reason: "must be positive"}
		}
		if t.TriggerPrice <= 0 {
			return nil, &models.ValidationError{Field: "triggerPrice", Reason: "must be positive"}
		}
	default:
		return nil, &models.ValidationError{Field: "terms", Reason: "missing order terms"}
	}

	quote, ok := s.feed.Quote(draft.Symbol)
	if !ok {
		return nil, fmt.Errorf("symbol %s: %w", draft.Symbol, models.ErrUnknownSymbol)
	}
	return quote, nil
}

// CancelOrder cancels a PENDING or TRIGGERED order. Terminal orders report
// a no-op failure.
func (s *Session) CancelOrder(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.book.Cancel(id); err != nil {
		return err
	}
	s.snapshot(ctx)
	return nil
}

// Reset idempotently restores the starting capital and clears positions,
// orders, and transactions. Quotes keep ticking; the market does not care.
func (s *Session) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pf.Reset(s.cfg.StartingCash)
	s.book.Reset()
	s.eng.Reset()
	s.log.Info().Float64("cash", s.cfg.StartingCash).Msg("Account reset")
	s.snapshot(ctx)
	return nil
}

// snapshot persists the current state. Called only after a command fully
// completed; a failed write is logged and dropped, never propagated, since
// the state is re-derivable from memory at the next command.
func (s *Session) snapshot(ctx context.Context) {
	if s.db == nil {
		return
	}
	state := models.AccountState{
		Cash:         s.pf.Cash(),
		Positions:    s.pf.Positions(),
		Orders:       s.book.All(),
		Transactions: s.eng.Ledger(),
	}
	if err := s.db.Save(ctx, s.key, state); err != nil {
		s.log.Warn().Err(err).Msg("Snapshot write failed")
	}
}

// Quotes returns the current quote list.
func (s *Session) Quotes() []models.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feed.Quotes()
}

// Cash returns the current cash balance.
func (s *Session) Cash() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pf.Cash()
}

// Positions returns all open positions with derived P&L at current prices.
func (s *Session) Positions() []portfolio.PositionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pf.Views(s.feed.Prices())
}

// OpenOrders returns PENDING and TRIGGERED orders in submission order.
func (s *Session) OpenOrders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.Open()
}

// Orders returns every order ever placed, in submission order.
func (s *Session) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.All()
}

// Order returns one order by id.
func (s *Session) Order(id string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.Get(id)
}

// Transactions returns the transaction history, newest first.
func (s *Session) Transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.Transactions()
}

// NetWorth returns cash plus the market value of all open positions.
func (s *Session) NetWorth() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pf.NetWorth(s.feed.Prices())
}

// UnrealizedPnL returns the total paper gain/loss across open positions.
func (s *Session) UnrealizedPnL() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pf.UnrealizedPnL(s.feed.Prices())
}

// SectorAllocation returns position market value grouped by sector,
// descending by value.
func (s *Session) SectorAllocation() []portfolio.SectorWeight {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pf.SectorAllocation(s.feed.Prices(), s.feed.Sector)
}
