package models

import "time"

// OrderTerms is the sealed variant over order kinds. Using a closed
// interface instead of optional price fields keeps illegal combinations
// (a LIMIT order without a limit price, a trigger on a MARKET order)
// unrepresentable.
type OrderTerms interface {
	Kind() OrderKind
}

// MarketTerms describes a market order: executes at the current quote.
type MarketTerms struct{}

// Kind implements OrderTerms.
func (MarketTerms) Kind() OrderKind { return OrderKindMarket }

// LimitTerms describes a limit order. The limit is a ceiling for buys and a
// floor for sells, not a guaranteed price.
type LimitTerms struct {
	LimitPrice float64
}

// Kind implements OrderTerms.
func (LimitTerms) Kind() OrderKind { return OrderKindLimit }

// StopLimitTerms describes a stop-limit order: inert until the trigger is
// crossed, then behaves as a limit order.
type StopLimitTerms struct {
	TriggerPrice float64
	LimitPrice   float64
}

// Kind implements OrderTerms.
func (StopLimitTerms) Kind() OrderKind { return OrderKindStopLimit }

// Order represents a trading order. Once EXECUTED or CANCELLED it is
// terminal and immutable.
type Order struct {
	ID        string
	Symbol    string
	Side      OrderSide
	Terms     OrderTerms
	Product   ProductType
	Quantity  int
	Status    OrderStatus
	CreatedAt time.Time
}

// LimitPrice returns the limit price and whether the order carries one.
func (o *Order) LimitPrice() (float64, bool) {
	switch t := o.Terms.(type) {
	case LimitTerms:
		return t.LimitPrice, true
	case StopLimitTerms:
		return t.LimitPrice, true
	}
	return 0, false
}

// TriggerPrice returns the trigger price and whether the order carries one.
func (o *Order) TriggerPrice() (float64, bool) {
	if t, ok := o.Terms.(StopLimitTerms); ok {
		return t.TriggerPrice, true
	}
	return 0, false
}

// Open reports whether the order can still transition (PENDING or TRIGGERED).
func (o *Order) Open() bool {
	return !o.Status.Terminal()
}

// OrderDraft is the placement command consumed by the account session. It is
// validated and turned into an Order; it never enters the order book raw.
type OrderDraft struct {
	Symbol   string
	Side     OrderSide
	Terms    OrderTerms
	Product  ProductType
	Quantity int
}
