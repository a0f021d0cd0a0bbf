// Package market provides the synthetic price feed over a fixed instrument
// universe.
package market

import (
	"math/rand"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"paper-exchange/internal/config"
	"paper-exchange/internal/models"
)

// PriceChange reports one instrument's move during a tick.
type PriceChange struct {
	Symbol   string
	OldPrice float64
	NewPrice float64
}

// Feed generates and mutates quotes for the instrument universe. It owns the
// quotes exclusively and knows nothing about orders or portfolios. The feed
// itself is not goroutine safe: the account session serializes all access.
type Feed struct {
	cfg         config.SimulationConfig
	instruments map[string]models.Instrument
	quotes      map[string]*models.Quote
	symbols     []string // sorted, fixes tick iteration order
	rng         *rand.Rand
	log         zerolog.Logger
}

// NewFeed seeds a feed over the given universe.
func NewFeed(cfg config.SimulationConfig, universe []models.Instrument, logger zerolog.Logger) *Feed {
	return NewFeedWithSource(cfg, universe, rand.NewSource(time.Now().UnixNano()), logger)
}

// NewFeedWithSource seeds a feed with an explicit randomness source, for
// deterministic replays and tests.
func NewFeedWithSource(cfg config.SimulationConfig, universe []models.Instrument, src rand.Source, logger zerolog.Logger) *Feed {
	f := &Feed{
		cfg:         cfg,
		instruments: make(map[string]models.Instrument, len(universe)),
		quotes:      make(map[string]*models.Quote, len(universe)),
		rng:         rand.New(src),
		log:         logger,
	}
	for _, inst := range universe {
		f.instruments[inst.Symbol] = inst
		f.quotes[inst.Symbol] = f.seedQuote(inst)
		f.symbols = append(f.symbols, inst.Symbol)
	}
	sort.Strings(f.symbols)
	return f
}

// seedQuote builds the session-open quote: high/low bracketing the reference
// price, a seeded volume, and a price window ending at the reference price.
func (f *Feed) seedQuote(inst models.Instrument) *models.Quote {
	q := &models.Quote{
		Symbol:        inst.Symbol,
		LastPrice:     inst.ReferencePrice,
		PreviousClose: inst.PreviousClose,
		SessionHigh:   inst.ReferencePrice * 1.01,
		SessionLow:    inst.ReferencePrice * 0.99,
		Volume:        100000 + f.rng.Int63n(5000000),
		History:       models.NewPriceWindow(f.cfg.WindowSize),
	}
	// Backfill the window with a short walk that lands on the reference
	// price, so charts have history from the first render.
	price := inst.ReferencePrice
	for i := 0; i < f.cfg.WindowSize-1; i++ {
		price = price * (1 + (f.rng.Float64()-0.5)*0.015)
		q.History.Push(price)
	}
	q.History.Push(inst.ReferencePrice)
	return q
}

// Tick advances every quote by one step and reports the moves. Relative step
// size depends on the price tier: cheap instruments move with higher
// relative volatility. Prices never fall below the configured floor.
func (f *Feed) Tick() []PriceChange {
	changes := make([]PriceChange, 0, len(f.symbols))
	for _, symbol := range f.symbols {
		q := f.quotes[symbol]
		old := q.LastPrice

		vol := f.cfg.BaseVolatility
		if old < f.cfg.LowPriceThreshold {
			vol = f.cfg.LowPriceVolatility
		}
		step := (f.rng.Float64()*2 - 1) * vol
		price := old * (1 + step)
		if price < f.cfg.PriceFloor {
			price = f.cfg.PriceFloor
		}

		q.LastPrice = price
		if price > q.SessionHigh {
			q.SessionHigh = price
		}
		if price < q.SessionLow {
			q.SessionLow = price
		}
		q.Volume += f.rng.Int63n(f.cfg.MaxVolumeIncrement)
		q.History.Push(price)

		changes = append(changes, PriceChange{Symbol: symbol, OldPrice: old, NewPrice: price})
	}
	return changes
}

// Quote returns the live quote for a symbol.
func (f *Feed) Quote(symbol string) (*models.Quote, bool) {
	q, ok := f.quotes[symbol]
	return q, ok
}

// LastPrice returns the current price for a symbol.
func (f *Feed) LastPrice(symbol string) (float64, bool) {
	q, ok := f.quotes[symbol]
	if !ok {
		return 0, false
	}
	return q.LastPrice, true
}

// Prices returns a snapshot of current prices keyed by symbol.
func (f *Feed) Prices() map[string]float64 {
	prices := make(map[string]float64, len(f.quotes))
	for symbol, q := range f.quotes {
		prices[symbol] = q.LastPrice
	}
	return prices
}

// Quotes returns copies of all quotes in symbol order, with the price window
// materialized for rendering.
func (f *Feed) Quotes() []models.Quote {
	out := make([]models.Quote, 0, len(f.symbols))
	for _, symbol := range f.symbols {
		out = append(out, *f.quotes[symbol])
	}
	return out
}

// Instrument returns reference data for a symbol.
func (f *Feed) Instrument(symbol string) (models.Instrument, bool) {
	inst, ok := f.instruments[symbol]
	return inst, ok
}

// Sector returns the sector tag for a symbol, or "Other" when unknown.
func (f *Feed) Sector(symbol string) string {
	if inst, ok := f.instruments[symbol]; ok && inst.Sector != "" {
		return inst.Sector
	}
	return "Other"
}
