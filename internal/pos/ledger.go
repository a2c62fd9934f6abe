package pos

import "context"

// Ledger accumulates completed orders within a single customer
// transaction and tracks the running grand total. The total is updated
// incrementally by builder deltas, never recomputed on read.
type Ledger struct {
	orders  []CompletedOrder
	running Cents
}

// Charge applies a builder delta to the running total. Negative deltas
// unwind earlier charges.
func (l *Ledger) Charge(delta Cents) { l.running += delta }

func (l *Ledger) Record(order CompletedOrder) {
	l.orders = append(l.orders, order)
}

func (l *Ledger) Total() Cents { return l.running }

// Orders returns a copy of the recorded orders in submission order.
func (l *Ledger) Orders() []CompletedOrder {
	out := make([]CompletedOrder, len(l.orders))
	copy(out, l.orders)
	return out
}

func (l *Ledger) Empty() bool { return len(l.orders) == 0 }

func (l *Ledger) Clear() {
	l.orders = nil
	l.running = 0
}

// Finalization is the payload handed to the persistence endpoint when a
// transaction is finished.
type Finalization struct {
	EmployeeID string
	Orders     []CompletedOrder
	TotalPrice Cents
}

// TransactionStore is the external persistence endpoint. Save returns
// an opaque transaction identifier on success; any error means the
// transaction was not recorded and the caller keeps its state.
type TransactionStore interface {
	Save(ctx context.Context, f Finalization) (transactionID string, err error)
}
