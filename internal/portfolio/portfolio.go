// Package portfolio provides the portfolio aggregate and its derived read
// models.
package portfolio

import (
	"sort"

	"paper-exchange/internal/models"
)

// Portfolio is the mutable aggregate of cash balance and the position set.
// It is mutated exclusively by the execution engine; read models are pure
// functions recomputed per query, never stored.
type Portfolio struct {
	cash      float64
	positions map[string]*models.Position
}

// New creates a portfolio with the given opening cash balance.
func New(cash float64) *Portfolio {
	return &Portfolio{
		cash:      cash,
		positions: make(map[string]*models.Position),
	}
}

// Cash returns the current cash balance.
func (p *Portfolio) Cash() float64 { return p.cash }

// Debit reduces the cash balance. Affordability is gated by the execution
// engine before any debit.
func (p *Portfolio) Debit(amount float64) { p.cash -= amount }

// Credit increases the cash balance.
func (p *Portfolio) Credit(amount float64) { p.cash += amount }

// Position returns the position for a symbol and product.
func (p *Portfolio) Position(symbol string, product models.ProductType) (models.Position, bool) {
	pos, ok := p.positions[models.PositionKey(symbol, product)]
	if !ok {
		return models.Position{}, false
	}
	return *pos, true
}

// Upsert stores a position. A zero-quantity position is removed instead:
// closed positions are never retained.
func (p *Portfolio) Upsert(pos models.Position) {
	key := models.PositionKey(pos.Symbol, pos.Product)
	if pos.Quantity == 0 {
		delete(p.positions, key)
		return
	}
	p.positions[key] = &pos
}

// Positions returns copies of all open positions in stable key order.
func (p *Portfolio) Positions() []models.Position {
	keys := make([]string, 0, len(p.positions))
	for k := range p.positions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]models.Position, 0, len(keys))
	for _, k := range keys {
		out = append(out, *p.positions[k])
	}
	return out
}

// Restore replaces the portfolio contents from a snapshot.
func (p *Portfolio) Restore(cash float64, positions []models.Position) {
	p.cash = cash
	p.positions = make(map[string]*models.Position, len(positions))
	for i := range positions {
		pos := positions[i]
		if pos.Quantity == 0 {
			continue
		}
		p.positions[models.PositionKey(pos.Symbol, pos.Product)] = &pos
	}
}

// Reset restores the opening cash balance and clears all positions.
func (p *Portfolio) Reset(cash float64) {
	p.cash = cash
	p.positions = make(map[string]*models.Position)
}

// PositionView is a position enriched with market-derived figures.
type PositionView struct {
	models.Position
	LastPrice     float64
	MarketValue   float64
	CostBasis     float64
	UnrealizedPnL float64
	PnLPercent    float64
}

// marketPrice resolves the valuation price for a position, falling back to
// the average cost when the symbol has no quote.
func marketPrice(pos models.Position, prices map[string]float64) float64 {
	if price, ok := prices[pos.Symbol]; ok {
		return price
	}
	return pos.AverageCost
}

// View computes the derived figures for one position at current prices.
func View(pos models.Position, prices map[string]float64) PositionView {
	price := marketPrice(pos, prices)
	abs := float64(pos.AbsQuantity())
	market := price * abs
	basis := pos.AverageCost * abs

	pnl := market - basis
	if pos.Short() {
		pnl = basis - market
	}
	pct := 0.0
	if basis > 0 {
		pct = pnl / basis * 100
	}
	return PositionView{
		Position:      pos,
		LastPrice:     price,
		MarketValue:   market,
		CostBasis:     basis,
		UnrealizedPnL: pnl,
		PnLPercent:    pct,
	}
}

// Views computes the derived figures for every open position.
func (p *Portfolio) Views(prices map[string]float64) []PositionView {
	positions := p.Positions()
	out := make([]PositionView, 0, len(positions))
	for _, pos := range positions {
		out = append(out, View(pos, prices))
	}
	return out
}

// NetWorth is cash plus the market value of every open position.
func (p *Portfolio) NetWorth(prices map[string]float64) float64 {
	total := p.cash
	for _, pos := range p.positions {
		total += marketPrice(*pos, prices) * float64(pos.AbsQuantity())
	}
	return total
}

// UnrealizedPnL sums the paper gain/loss across all open positions.
func (p *Portfolio) UnrealizedPnL(prices map[string]float64) float64 {
	var total float64
	for _, pos := range p.positions {
		total += View(*pos, prices).UnrealizedPnL
	}
	return total
}

// SectorWeight is one sector's share of the portfolio by market value.
type SectorWeight struct {
	Sector string
	Value  float64
}

// SectorAllocation groups position market value by instrument sector,
// descending by value. sectorOf maps a symbol to its sector.
func (p *Portfolio) SectorAllocation(prices map[string]float64, sectorOf func(symbol string) string) []SectorWeight {
	bySector := make(map[string]float64)
	for _, pos := range p.positions {
		value := marketPrice(*pos, prices) * float64(pos.AbsQuantity())
		bySector[sectorOf(pos.Symbol)] += value
	}
	out := make([]SectorWeight, 0, len(bySector))
	for sector, value := range bySector {
		out = append(out, SectorWeight{Sector: sector, Value: value})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Sector < out[j].Sector
	})
	return out
}
