package orders

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/rs/zerolog"

	"paper-exchange/internal/models"
)

// Property: across any price path, an order transitions into EXECUTED at
// most once, no matter how often the execution condition re-holds.
func TestProperty_AtMostOnceExecution(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	pricesGen := gen.SliceOfN(40, gen.Float64Range(50, 150))
	limitGen := gen.Float64Range(60, 140)
	sideGen := gen.OneConstOf(models.OrderSideBuy, models.OrderSideSell)

	properties.Property("limit orders execute at most once", prop.ForAll(
		func(prices []float64, limit float64, side models.OrderSide) bool {
			b := NewBook(zerolog.Nop())
			b.Submit(&models.Order{
				ID:       "o1",
				Symbol:   "SYM",
				Side:     side,
				Terms:    models.LimitTerms{LimitPrice: limit},
				Product:  models.ProductCash,
				Quantity: 1,
				Status:   models.OrderStatusPending,
			})

			executions := 0
			for _, p := range prices {
				b.Evaluate(map[string]float64{"SYM": p}, func(o *models.Order, price float64) error {
					executions++
					return nil
				})
			}
			return executions <= 1
		},
		pricesGen,
		limitGen,
		sideGen,
	))

	properties.Property("stop-limit orders execute at most once", prop.ForAll(
		func(prices []float64, trigger, limit float64, side models.OrderSide) bool {
			b := NewBook(zerolog.Nop())
			b.Submit(&models.Order{
				ID:       "o1",
				Symbol:   "SYM",
				Side:     side,
				Terms:    models.StopLimitTerms{TriggerPrice: trigger, LimitPrice: limit},
				Product:  models.ProductCash,
				Quantity: 1,
				Status:   models.OrderStatusPending,
			})

			executions := 0
			for _, p := range prices {
				b.Evaluate(map[string]float64{"SYM": p}, func(o *models.Order, price float64) error {
					executions++
					return nil
				})
			}
			return executions <= 1
		},
		pricesGen,
		gen.Float64Range(60, 140),
		limitGen,
		sideGen,
	))

	properties.TestingRun(t)
}

// Property: a triggered stop-limit never reverts to PENDING, and terminal
// statuses never change, across any price path.
func TestProperty_StatusTransitionsAreMonotone(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	rank := map[models.OrderStatus]int{
		models.OrderStatusPending:   0,
		models.OrderStatusTriggered: 1,
		models.OrderStatusExecuted:  2,
		models.OrderStatusCancelled: 2,
	}

	properties.Property("status rank never decreases", prop.ForAll(
		func(prices []float64, trigger, limit float64) bool {
			b := NewBook(zerolog.Nop())
			b.Submit(&models.Order{
				ID:       "o1",
				Symbol:   "SYM",
				Side:     models.OrderSideSell,
				Terms:    models.StopLimitTerms{TriggerPrice: trigger, LimitPrice: limit},
				Product:  models.ProductCash,
				Quantity: 1,
				Status:   models.OrderStatusPending,
			})

			prev := 0
			for _, p := range prices {
				b.Evaluate(map[string]float64{"SYM": p}, func(o *models.Order, price float64) error {
					return nil
				})
				o, _ := b.Get("o1")
				if rank[o.Status] < prev {
					return false
				}
				prev = rank[o.Status]
			}
			return true
		},
		gen.SliceOfN(40, gen.Float64Range(50, 150)),
		gen.Float64Range(60, 140),
		gen.Float64Range(60, 140),
	))

	properties.TestingRun(t)
}
