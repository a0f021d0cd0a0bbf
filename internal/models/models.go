// Package models provides domain models for the exchange simulator.
package models

import (
	"fmt"
	"time"
)

// OrderSide represents the side of an order.
type OrderSide string

const (
	OrderSideBuy  OrderSide = "BUY"
	OrderSideSell OrderSide = "SELL"
)

// ProductType represents the funding product of an order or position.
type ProductType string

const (
	ProductCash   ProductType = "CASH"   // fully funded, no leverage
	ProductMargin ProductType = "MARGIN" // leveraged, fraction of notional blocked
)

// OrderKind represents the kind of an order.
type OrderKind string

const (
	OrderKindMarket    OrderKind = "MARKET"
	OrderKindLimit     OrderKind = "LIMIT"
	OrderKindStopLimit OrderKind = "STOP_LIMIT"
)

// OrderStatus represents the lifecycle status of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusTriggered OrderStatus = "TRIGGERED"
	OrderStatusExecuted  OrderStatus = "EXECUTED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Terminal reports whether the status admits no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusExecuted || s == OrderStatusCancelled
}

// Instrument represents immutable reference data for a tradeable instrument,
// seeded once at session start.
type Instrument struct {
	Symbol         string
	Name           string
	Sector         string
	ReferencePrice float64 // price at session open
	PreviousClose  float64
}

// Quote represents the mutable market state of one instrument. It is owned
// and mutated exclusively by the price feed.
type Quote struct {
	Symbol        string
	LastPrice     float64
	PreviousClose float64
	SessionHigh   float64
	SessionLow    float64
	Volume        int64
	History       *PriceWindow
}

// Change returns the absolute change versus the previous close.
func (q *Quote) Change() float64 {
	return q.LastPrice - q.PreviousClose
}

// ChangePercent returns the percentage change versus the previous close.
func (q *Quote) ChangePercent() float64 {
	if q.PreviousClose == 0 {
		return 0
	}
	return (q.LastPrice - q.PreviousClose) / q.PreviousClose * 100
}

// Position represents an open position. Quantity is signed: positive is a
// long holding, negative a short. Zero-quantity positions are removed, not
// retained. AverageCost is the per-unit cost basis of |Quantity|.
type Position struct {
	Symbol      string
	Product     ProductType
	Quantity    int
	AverageCost float64
}

// AbsQuantity returns the unsigned position size.
func (p Position) AbsQuantity() int {
	if p.Quantity < 0 {
		return -p.Quantity
	}
	return p.Quantity
}

// Short reports whether the position is a short.
func (p Position) Short() bool { return p.Quantity < 0 }

// CostBasis returns the total capital committed to the position.
func (p Position) CostBasis() float64 {
	return p.AverageCost * float64(p.AbsQuantity())
}

// PositionKey builds the map key for a position. Positions are keyed by
// symbol and product so a CASH holding and a MARGIN position in the same
// symbol stay independent.
func PositionKey(symbol string, product ProductType) string {
	return fmt.Sprintf("%s:%s", symbol, product)
}

// Transaction is an immutable record of an executed trade. Transactions are
// append-only and form the sole audit trail.
type Transaction struct {
	ID         string
	Timestamp  time.Time
	Symbol     string
	Side       OrderSide
	Product    ProductType
	Quantity   int
	Price      float64 // price actually applied, never the limit/trigger price
	GrossValue float64
}

// AccountState is the persistence snapshot shape: everything needed to
// restore a session, keyed externally by a session identifier.
type AccountState struct {
	Cash         float64
	Positions    []Position
	Orders       []Order
	Transactions []Transaction
}
