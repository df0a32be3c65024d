// Package cart implements the client-side cart aggregate as a pure
// reducer: Reduce(state, action) returns a new state and never mutates
// its input. A cart line is keyed by (product id, size); the total is
// recomputed from scratch after every transition, never patched
// incrementally, so it cannot drift from the underlying items.
package cart

import (
	"github.com/sokobo/storefront/internal/domain"
)

// Item is one cart line: a full product snapshot plus the chosen size
// and quantity.
type Item struct {
	Product  domain.Product
	Size     string
	Quantity int
}

// State is the cart aggregate value. Total is a decimal string derived
// from Items; it is never set independently.
type State struct {
	Items []Item
	Total string
}

// Empty returns the initial cart state.
func Empty() State {
	return State{Items: []Item{}, Total: "0.00"}
}

// Action is the closed set of cart transitions.
type Action interface {
	isAction()
}

// AddItem appends a line or, when a line with the same (product id, size)
// exists, increments its quantity. Quantity values below one count as one.
type AddItem struct {
	Product  domain.Product
	Size     string
	Quantity int
}

// RemoveItem drops the matching line. A miss is a no-op.
type RemoveItem struct {
	ProductID string
	Size      string
}

// UpdateQuantity sets the matching line's quantity to an absolute value.
// A quantity of zero or less removes the line.
type UpdateQuantity struct {
	ProductID string
	Size      string
	Quantity  int
}

// ClearCart resets to the empty state.
type ClearCart struct{}

func (AddItem) isAction()        {}
func (RemoveItem) isAction()     {}
func (UpdateQuantity) isAction() {}
func (ClearCart) isAction()      {}

// Reduce applies an action to a state and returns the next state.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case AddItem:
		quantity := a.Quantity
		if quantity < 1 {
			quantity = 1
		}

		items := copyItems(state.Items)
		merged := false
		for i := range items {
			if items[i].Product.ID == a.Product.ID && items[i].Size == a.Size {
				items[i].Quantity += quantity
				merged = true
				break
			}
		}
		if !merged {
			items = append(items, Item{Product: a.Product, Size: a.Size, Quantity: quantity})
		}
		return State{Items: items, Total: totalOf(items)}

	case RemoveItem:
		items := make([]Item, 0, len(state.Items))
		for _, item := range state.Items {
			if item.Product.ID == a.ProductID && item.Size == a.Size {
				continue
			}
			items = append(items, item)
		}
		return State{Items: items, Total: totalOf(items)}

	case UpdateQuantity:
		if a.Quantity <= 0 {
			return Reduce(state, RemoveItem{ProductID: a.ProductID, Size: a.Size})
		}

		items := copyItems(state.Items)
		for i := range items {
			if items[i].Product.ID == a.ProductID && items[i].Size == a.Size {
				items[i].Quantity = a.Quantity
			}
		}
		return State{Items: items, Total: totalOf(items)}

	case ClearCart:
		return Empty()
	}

	return state
}

// Count returns the number of units across all lines.
func (s State) Count() int {
	count := 0
	for _, item := range s.Items {
		count += item.Quantity
	}
	return count
}

// totalOf recomputes the cart total as the exact cent sum of unit price
// times quantity over all lines. Unparseable prices contribute nothing.
func totalOf(items []Item) string {
	var cents int64
	for _, item := range items {
		price, err := domain.ParseAmount(item.Product.Price)
		if err != nil {
			continue
		}
		cents += price * int64(item.Quantity)
	}
	return domain.FormatAmount(cents)
}

func copyItems(items []Item) []Item {
	return append([]Item(nil), items...)
}
