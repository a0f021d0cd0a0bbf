// Package orders provides the order book and its status lifecycle.
package orders

import (
	"fmt"

	"github.com/rs/zerolog"

	"paper-exchange/internal/models"
)

// Executor applies a fill to the portfolio. It is invoked for each
// executable order before the next order is considered. A non-nil error
// leaves the order open for re-evaluation on a later tick.
type Executor func(o *models.Order, execPrice float64) error

// Book holds every order ever placed for one session, keyed by id, and is
// the sole writer of order status. It is not goroutine safe: the account
// session serializes all access.
type Book struct {
	orders map[string]*models.Order
	seq    []string // ids in submission order, fixes evaluation order
	log    zerolog.Logger
}

// NewBook creates an empty order book.
func NewBook(logger zerolog.Logger) *Book {
	return &Book{
		orders: make(map[string]*models.Order),
		log:    logger,
	}
}

// Submit records an order. The draft was validated by the session; the book
// only rejects duplicate ids.
func (b *Book) Submit(o *models.Order) error {
	if _, exists := b.orders[o.ID]; exists {
		return fmt.Errorf("duplicate order id %s", o.ID)
	}
	b.orders[o.ID] = o
	b.seq = append(b.seq, o.ID)
	return nil
}

// Cancel marks an order CANCELLED. Only PENDING and TRIGGERED orders can be
// cancelled; terminal orders report ErrNotCancellable with no state change.
func (b *Book) Cancel(id string) error {
	o, ok := b.orders[id]
	if !ok {
		return fmt.Errorf("cancel %s: %w", id, models.ErrOrderNotFound)
	}
	if o.Status.Terminal() {
		return fmt.Errorf("cancel %s in status %s: %w", id, o.Status, models.ErrNotCancellable)
	}
	o.Status = models.OrderStatusCancelled
	b.log.Info().Str("order_id", id).Str("symbol", o.Symbol).Msg("Order cancelled")
	return nil
}

// Evaluate walks every open order exactly once against the quoted prices,
// checking stop triggers first and then limit execution. Each fill is
// handed to exec before the next order is considered. Orders for symbols
// missing from prices are skipped and logged, never failed.
func (b *Book) Evaluate(prices map[string]float64, exec Executor) {
	for _, id := range b.seq {
		o := b.orders[id]
		if o.Status.Terminal() {
			continue
		}

		price, ok := prices[o.Symbol]
		if !ok {
			b.log.Warn().Str("order_id", o.ID).Str("symbol", o.Symbol).
				Msg("No quote for open order, skipping")
			continue
		}

		if o.Status == models.OrderStatusPending {
			if t, isStop := o.Terms.(models.StopLimitTerms); isStop {
				if triggerHit(o.Side, price, t.TriggerPrice) {
					o.Status = models.OrderStatusTriggered
					b.log.Info().Str("order_id", o.ID).Str("symbol", o.Symbol).
						Float64("trigger", t.TriggerPrice).Float64("price", price).
						Msg("Stop order triggered")
				}
			}
		}

		limit, active := executableLimit(o)
		if !active {
			continue
		}
		if !limitSatisfied(o.Side, price, limit) {
			continue
		}
		// Re-check right before mutating: exactly-once execution.
		if o.Status.Terminal() {
			continue
		}
		if err := exec(o, price); err != nil {
			// Resting orders stay open for a more favorable tick.
			b.log.Warn().Err(err).Str("order_id", o.ID).Str("symbol", o.Symbol).
				Float64("price", price).Msg("Fill rejected, order stays open")
			continue
		}
		o.Status = models.OrderStatusExecuted
		b.log.Info().Str("order_id", o.ID).Str("symbol", o.Symbol).
			Float64("price", price).Msg("Order executed")
	}
}

// executableLimit returns the limit price when the order is currently
// active: a PENDING limit order, or a TRIGGERED stop-limit.
func executableLimit(o *models.Order) (float64, bool) {
	switch t := o.Terms.(type) {
	case models.LimitTerms:
		if o.Status == models.OrderStatusPending {
			return t.LimitPrice, true
		}
	case models.StopLimitTerms:
		if o.Status == models.OrderStatusTriggered {
			return t.LimitPrice, true
		}
	}
	return 0, false
}

// triggerHit models breakout-buy / stop-loss-sell semantics.
func triggerHit(side models.OrderSide, price, trigger float64) bool {
	if side == models.OrderSideBuy {
		return price >= trigger
	}
	return price <= trigger
}

// limitSatisfied reports whether the current price is at least as favorable
// as the limit.
func limitSatisfied(side models.OrderSide, price, limit float64) bool {
	if side == models.OrderSideBuy {
		return price <= limit
	}
	return price >= limit
}

// Get returns a copy of the order with the given id.
func (b *Book) Get(id string) (models.Order, bool) {
	o, ok := b.orders[id]
	if !ok {
		return models.Order{}, false
	}
	return *o, true
}

// Open returns copies of all non-terminal orders in submission order.
func (b *Book) Open() []models.Order {
	var out []models.Order
	for _, id := range b.seq {
		if o := b.orders[id]; o.Open() {
			out = append(out, *o)
		}
	}
	return out
}

// All returns copies of every order in submission order.
func (b *Book) All() []models.Order {
	out := make([]models.Order, 0, len(b.seq))
	for _, id := range b.seq {
		out = append(out, *b.orders[id])
	}
	return out
}

// Restore rebuilds the book from a snapshot, preserving submission order.
func (b *Book) Restore(orders []models.Order) {
	b.orders = make(map[string]*models.Order, len(orders))
	b.seq = b.seq[:0]
	for i := range orders {
		o := orders[i]
		b.orders[o.ID] = &o
		b.seq = append(b.seq, o.ID)
	}
}

// Reset discards all orders.
func (b *Book) Reset() {
	b.orders = make(map[string]*models.Order)
	b.seq = nil
}
