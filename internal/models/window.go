package models

// PriceWindow is a fixed-capacity ring buffer over recent prices. Once full,
// each push evicts the oldest entry. Values are always readable in insertion
// order.
type PriceWindow struct {
	buf  []float64
	head int // index of the oldest entry
	n    int
}

// NewPriceWindow creates a window holding at most capacity prices.
func NewPriceWindow(capacity int) *PriceWindow {
	if capacity <= 0 {
		capacity = 1
	}
	return &PriceWindow{buf: make([]float64, capacity)}
}

// Push appends a price, evicting the oldest entry when full.
func (w *PriceWindow) Push(price float64) {
	if w.n < len(w.buf) {
		w.buf[(w.head+w.n)%len(w.buf)] = price
		w.n++
		return
	}
	w.buf[w.head] = price
	w.head = (w.head + 1) % len(w.buf)
}

// Values returns the window contents oldest-first.
func (w *PriceWindow) Values() []float64 {
	out := make([]float64, w.n)
	for i := 0; i < w.n; i++ {
		out[i] = w.buf[(w.head+i)%len(w.buf)]
	}
	return out
}

// Last returns the most recently pushed price, or 0 when empty.
func (w *PriceWindow) Last() float64 {
	if w.n == 0 {
		return 0
	}
	return w.buf[(w.head+w.n-1)%len(w.buf)]
}

// Len returns the number of prices currently held.
func (w *PriceWindow) Len() int { return w.n }

// Capacity returns the fixed window capacity.
func (w *PriceWindow) Capacity() int { return len(w.buf) }
