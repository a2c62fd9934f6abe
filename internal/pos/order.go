package pos

// MenuItem is the catalog's view of a selectable item, as handed to the
// builder. The builder never holds on to it; it snapshots what it needs.
type MenuItem struct {
	Name     string
	Category Category
	Premium  bool
}

// SelectedItem is an add-time snapshot of a MenuItem. Later catalog
// changes cannot retroactively alter an order that already holds one.
type SelectedItem struct {
	Name     string   `json:"name"`
	Category Category `json:"type"`
	Premium  bool     `json:"premium"`
}

// CompletedOrder is the immutable record produced by submitting an
// in-progress order.
type CompletedOrder struct {
	Size     MealSize       `json:"size"`
	Items    []SelectedItem `json:"items"`
	Subtotal Cents          `json:"-"`
}

// Builder is the order-composition state machine. It moves between
// NoSizeSelected and Building, and reports every charge it makes as a
// ledger delta so the running total stays in lockstep.
type Builder struct {
	building bool
	size     MealSize
	items    []SelectedItem
	subtotal Cents
}

func (b *Builder) Building() bool { return b.building }

// Size reports the selected size; ok is false in NoSizeSelected.
func (b *Builder) Size() (size MealSize, ok bool) { return b.size, b.building }

func (b *Builder) Subtotal() Cents { return b.subtotal }

// Items returns a copy; callers cannot mutate the in-progress order.
func (b *Builder) Items() []SelectedItem {
	out := make([]SelectedItem, len(b.items))
	copy(out, b.items)
	return out
}

// SelectSize chooses a meal size. From Building it acts as a reset
// transition: the current order is cleared and its subtotal unwound
// before the new base price is charged. The returned delta is the net
// change to the ledger running total.
func (b *Builder) SelectSize(size MealSize) (delta Cents) {
	delta = BasePrice(size) - b.subtotal
	b.building = true
	b.size = size
	b.items = nil
	b.subtotal = BasePrice(size)
	return delta
}

// AddItem snapshots the item into the order and returns its surcharge
// as the ledger delta. Capacity is checked against items already added;
// a rejection leaves the order untouched.
func (b *Builder) AddItem(item MenuItem) (delta Cents, err error) {
	if !b.building {
		return 0, ErrNoMealSize
	}

	limits := Limits(b.size)
	switch item.Category {
	case CategorySide:
		if b.countOf(CategorySide) >= limits.Sides {
			return 0, ErrCapacityExceeded
		}
	case CategoryEntree:
		if b.countOf(CategoryEntree) >= limits.Entrees {
			return 0, ErrCapacityExceeded
		}
	case CategoryAppetizer:
		// no count cap, surcharged per item
	default:
		return 0, ErrCapacityExceeded
	}

	cost := Surcharge(item.Category, item.Premium)
	b.items = append(b.items, SelectedItem{
		Name:     item.Name,
		Category: item.Category,
		Premium:  item.Premium,
	})
	b.subtotal += cost
	return cost, nil
}

// Reset abandons the in-progress order. The returned delta unwinds
// exactly what was charged for it, base price included. Outside
// Building it is a no-op.
func (b *Builder) Reset() (delta Cents) {
	delta = -b.subtotal
	b.clear()
	return delta
}

// Submit turns the in-progress order into a CompletedOrder and returns
// the builder to NoSizeSelected. The ledger running total is untouched:
// the order's contribution was already accounted incrementally.
func (b *Builder) Submit() (CompletedOrder, error) {
	if !b.building {
		return CompletedOrder{}, ErrNoMealSize
	}
	if len(b.items) == 0 {
		return CompletedOrder{}, ErrEmptyOrder
	}

	order := CompletedOrder{
		Size:     b.size,
		Items:    b.items,
		Subtotal: b.subtotal,
	}
	b.clear()
	return order, nil
}

func (b *Builder) clear() {
	b.building = false
	b.size = ""
	b.items = nil
	b.subtotal = 0
}

func (b *Builder) countOf(c Category) int {
	n := 0
	for _, it := range b.items {
		if it.Category == c {
			n++
		}
	}
	return n
}
