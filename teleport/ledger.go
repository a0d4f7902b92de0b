package teleport

// Ledger records the teleporters consumed during one query, in the order they
// were consumed. The zero value is an empty ledger.
//
// Ledger is a value type: With returns an updated copy and never modifies
// the receiver, so ledgers may be passed between calls freely.
type Ledger struct {
	bits  []uint64
	order []int
}

// Used reports whether teleporter i has been consumed.
func (l Ledger) Used(i int) bool {
	w := i / 64
	if i < 0 || w >= len(l.bits) {
		return false
	}
	return l.bits[w]&(1<<(uint(i)%64)) != 0
}

// With returns a copy of l with teleporter i marked used.
func (l Ledger) With(i int) Ledger {
	if l.Used(i) || i < 0 {
		return l
	}
	w := i / 64
	bits := make([]uint64, max(len(l.bits), w+1))
	copy(bits, l.bits)
	bits[w] |= 1 << (uint(i) % 64)

	order := make([]int, len(l.order), len(l.order)+1)
	copy(order, l.order)

	return Ledger{bits: bits, order: append(order, i)}
}

// Len returns the number of consumed teleporters.
func (l Ledger) Len() int { return len(l.order) }

// Order returns the consumed teleporter indices in consumption order.
func (l Ledger) Order() []int {
	out := make([]int, len(l.order))
	copy(out, l.order)
	return out
}
