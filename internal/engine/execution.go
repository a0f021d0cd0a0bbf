// Package engine provides the execution engine: the single path through
// which trades mutate the portfolio and the transaction ledger.
package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"paper-exchange/internal/config"
	"paper-exchange/internal/models"
	"paper-exchange/internal/portfolio"
)

// Engine applies executed trades to the portfolio and appends transaction
// records. All checks run before any field is mutated: a rejected trade
// leaves both portfolio and ledger untouched.
type Engine struct {
	pf           *portfolio.Portfolio
	feeRate      float64
	marginFrac   float64
	transactions []models.Transaction
	log          zerolog.Logger
}

// New creates an execution engine over the given portfolio.
func New(pf *portfolio.Portfolio, cfg config.SimulationConfig, logger zerolog.Logger) *Engine {
	return &Engine{
		pf:         pf,
		feeRate:    cfg.FeeRate,
		marginFrac: cfg.MarginFraction,
		log:        logger,
	}
}

// RequiredCapital returns the capital blocked for a trade of the given gross
// value: the full notional for CASH, the margin fraction for MARGIN.
func (e *Engine) RequiredCapital(gross float64, product models.ProductType) float64 {
	if product == models.ProductMargin {
		return gross * e.marginFrac
	}
	return gross
}

// Fee returns the synthetic brokerage fee on a gross value.
func (e *Engine) Fee(gross float64) float64 {
	return gross * e.feeRate
}

// Apply executes a trade at the given price and commits its effects:
// position update, cash movement, transaction append. It returns the new
// transaction's id, or an error with no state change at all.
func (e *Engine) Apply(symbol string, side models.OrderSide, product models.ProductType, quantity int, execPrice float64) (string, error) {
	if quantity <= 0 {
		return "", &models.ValidationError{Field: "quantity", Reason: "must be positive"}
	}
	if execPrice <= 0 {
		return "", &models.ValidationError{Field: "price", Reason: "must be positive"}
	}

	gross := execPrice * float64(quantity)
	required := e.RequiredCapital(gross, product)
	fee := e.Fee(gross)

	pos, exists := e.pf.Position(symbol, product)

	var err error
	if side == models.OrderSideBuy {
		err = e.applyBuy(symbol, product, quantity, execPrice, required, fee, pos, exists)
	} else {
		err = e.applySell(symbol, product, quantity, execPrice, gross, required, fee, pos, exists)
	}
	if err != nil {
		return "", err
	}

	tx := models.Transaction{
		ID:         uuid.NewString(),
		Timestamp:  time.Now(),
		Symbol:     symbol,
		Side:       side,
		Product:    product,
		Quantity:   quantity,
		Price:      execPrice,
		GrossValue: gross,
	}
	e.transactions = append(e.transactions, tx)

	e.log.Info().
		Str("event", "trade").
		Str("tx_id", tx.ID).
		Str("symbol", symbol).
		Str("side", string(side)).
		Str("product", string(product)).
		Int("quantity", quantity).
		Float64("price", execPrice).
		Float64("cash", e.pf.Cash()).
		Msg("Trade executed")

	return tx.ID, nil
}

// applyBuy handles the two BUY cases: covering an existing short, or
// opening/adding to a long. Both debit requiredCapital + fee.
func (e *Engine) applyBuy(symbol string, product models.ProductType, quantity int, price, required, fee float64, pos models.Position, exists bool) error {
	if exists && pos.Short() {
		// Covering more than the short size is rejected, never flipped.
		if quantity > pos.AbsQuantity() {
			return fmt.Errorf("cover %d against short %d: %w", quantity, pos.AbsQuantity(), models.ErrOverCover)
		}
		if err := e.checkFunds(required + fee); err != nil {
			return err
		}
		e.pf.Debit(required + fee)
		pos.Quantity += quantity // cost basis per unit unchanged on reduce
		e.pf.Upsert(models.Position{Symbol: symbol, Product: product, Quantity: pos.Quantity, AverageCost: pos.AverageCost})
		return nil
	}

	if err := e.checkFunds(required + fee); err != nil {
		return err
	}
	e.pf.Debit(required + fee)

	oldQty := 0
	oldAvg := 0.0
	if exists {
		oldQty = pos.Quantity
		oldAvg = pos.AverageCost
	}
	newQty := oldQty + quantity
	avg := (float64(oldQty)*oldAvg + float64(quantity)*price) / float64(newQty)
	e.pf.Upsert(models.Position{Symbol: symbol, Product: product, Quantity: newQty, AverageCost: avg})
	return nil
}

// applySell handles the two SELL cases: reducing an existing long (credits
// the full notional less fee, since delivery was fully funded), or
// opening/adding to a short (blocks margin like a buy).
func (e *Engine) applySell(symbol string, product models.ProductType, quantity int, price, gross, required, fee float64, pos models.Position, exists bool) error {
	if exists && pos.Quantity > 0 {
		if quantity > pos.Quantity {
			return &models.ValidationError{Field: "quantity", Reason: "exceeds held quantity"}
		}
		e.pf.Credit(gross - fee)
		pos.Quantity -= quantity
		e.pf.Upsert(models.Position{Symbol: symbol, Product: product, Quantity: pos.Quantity, AverageCost: pos.AverageCost})
		return nil
	}

	if err := e.checkFunds(required + fee); err != nil {
		return err
	}
	e.pf.Debit(required + fee)

	absOld := 0
	oldAvg := 0.0
	if exists {
		absOld = pos.AbsQuantity()
		oldAvg = pos.AverageCost
	}
	newAbs := absOld + quantity
	avg := (float64(absOld)*oldAvg + float64(quantity)*price) / float64(newAbs)
	e.pf.Upsert(models.Position{Symbol: symbol, Product: product, Quantity: -newAbs, AverageCost: avg})
	return nil
}

// checkFunds gates every cash-debiting branch before any mutation.
func (e *Engine) checkFunds(needed float64) error {
	if e.pf.Cash() < needed {
		return fmt.Errorf("need %.2f, have %.2f: %w", needed, e.pf.Cash(), models.ErrInsufficientFunds)
	}
	return nil
}

// Transactions returns the ledger newest-first.
func (e *Engine) Transactions() []models.Transaction {
	out := make([]models.Transaction, len(e.transactions))
	for i, tx := range e.transactions {
		out[len(e.transactions)-1-i] = tx
	}
	return out
}

// Ledger returns the ledger in append order, for snapshots.
func (e *Engine) Ledger() []models.Transaction {
	out := make([]models.Transaction, len(e.transactions))
	copy(out, e.transactions)
	return out
}

// Restore replaces the ledger from a snapshot (append order).
func (e *Engine) Restore(transactions []models.Transaction) {
	e.transactions = make([]models.Transaction, len(transactions))
	copy(e.transactions, transactions)
}

// Reset clears the ledger.
func (e *Engine) Reset() {
	e.transactions = nil
}
