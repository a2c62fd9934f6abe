package pos

import (
	"context"
	"sync"
	"time"
)

const defaultFinalizeTimeout = 10 * time.Second

// Session is the single controller for one operator's builder and
// ledger. Every intent runs to completion under its lock, so two
// mutations can never interleave; finalize holds the lock for the whole
// persistence call, which keeps the ledger logically locked while the
// call is outstanding.
type Session struct {
	mu              sync.Mutex
	builder         Builder
	ledger          Ledger
	store           TransactionStore
	finalizeTimeout time.Duration
}

func NewSession(store TransactionStore) *Session {
	return &Session{
		store:           store,
		finalizeTimeout: defaultFinalizeTimeout,
	}
}

// OrderView is a completed order as rendered to the adapter layer.
type OrderView struct {
	Size     MealSize       `json:"size"`
	Items    []SelectedItem `json:"items"`
	Subtotal float64        `json:"subtotal"`
}

// State is the full observable state of a session.
type State struct {
	Orders          []OrderView    `json:"orders"`
	CurrentSize     MealSize       `json:"currentSize,omitempty"`
	CurrentItems    []SelectedItem `json:"currentItems"`
	CurrentSubtotal float64        `json:"currentSubtotal"`
	Total           float64        `json:"total"`
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) SelectSize(size MealSize) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger.Charge(s.builder.SelectSize(size))
	return s.snapshot()
}

func (s *Session) AddItem(item MenuItem) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delta, err := s.builder.AddItem(item)
	if err != nil {
		return s.snapshot(), err
	}
	s.ledger.Charge(delta)
	return s.snapshot(), nil
}

func (s *Session) SubmitOrder() (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.builder.Submit()
	if err != nil {
		return s.snapshot(), err
	}
	s.ledger.Record(order)
	return s.snapshot(), nil
}

func (s *Session) ResetOrder() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger.Charge(s.builder.Reset())
	return s.snapshot()
}

// FinishTransaction submits the full transaction, folding in the open
// order if a size is chosen, and on acknowledged success clears the
// ledger and resets the builder. On failure nothing changes, so a retry
// sees the exact same pending transaction. A bare size selection with
// no items and no completed orders is not a transaction; it is
// rejected, not persisted.
func (s *Session) FinishTransaction(ctx context.Context, employeeID string) (string, State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if employeeID == "" {
		return "", s.snapshot(), ErrMissingEmployeeID
	}

	if s.ledger.Empty() && len(s.builder.items) == 0 {
		return "", s.snapshot(), ErrNothingPending
	}

	orders := s.ledger.Orders()
	if s.builder.Building() {
		size, _ := s.builder.Size()
		orders = append(orders, CompletedOrder{
			Size:     size,
			Items:    s.builder.Items(),
			Subtotal: s.builder.Subtotal(),
		})
	}

	ctx, cancel := context.WithTimeout(ctx, s.finalizeTimeout)
	defer cancel()

	id, err := s.store.Save(ctx, Finalization{
		EmployeeID: employeeID,
		Orders:     orders,
		TotalPrice: s.ledger.Total(),
	})
	if err != nil {
		return "", s.snapshot(), &PersistenceError{Err: err}
	}

	s.ledger.Clear()
	s.builder.clear()
	return id, s.snapshot(), nil
}

// RecomputeTotal derives the grand total from scratch. The externally
// observed Total must equal it at every observation point; tests
// compare the two.
func (s *Session) RecomputeTotal() Cents {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total Cents
	for _, o := range s.ledger.Orders() {
		total += o.Subtotal
	}
	if s.builder.Building() {
		total += s.builder.Subtotal()
	}
	return total
}

func (s *Session) snapshot() State {
	st := State{
		Orders:          make([]OrderView, 0, len(s.ledger.orders)),
		CurrentItems:    s.builder.Items(),
		CurrentSubtotal: s.builder.Subtotal().Dollars(),
		Total:           s.ledger.Total().Dollars(),
	}
	for _, o := range s.ledger.orders {
		st.Orders = append(st.Orders, OrderView{
			Size:     o.Size,
			Items:    o.Items,
			Subtotal: o.Subtotal.Dollars(),
		})
	}
	if size, ok := s.builder.Size(); ok {
		st.CurrentSize = size
	}
	return st
}
