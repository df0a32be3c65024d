package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokobo/storefront/internal/domain"
)

func testProduct(id, price string) domain.Product {
	return domain.Product{
		ID:       id,
		Name:     "Tee",
		Category: domain.CategoryTShirts,
		Price:    price,
		Stock:    2,
		Sizes:    []string{"M"},
		Images:   []string{"x.png"},
	}
}

// requireTotalInvariant checks that the stored total equals the sum of
// unit price times quantity recomputed independently.
func requireTotalInvariant(t *testing.T, s State) {
	t.Helper()
	var cents int64
	for _, item := range s.Items {
		price, err := domain.ParseAmount(item.Product.Price)
		require.NoError(t, err)
		cents += price * int64(item.Quantity)
	}
	require.Equal(t, domain.FormatAmount(cents), s.Total)
}

func TestReduce_AddItemMergesSameProductAndSize(t *testing.T) {
	tee := testProduct("p1", "100.00")

	state := Empty()
	state = Reduce(state, AddItem{Product: tee, Size: "M", Quantity: 1})
	requireTotalInvariant(t, state)
	state = Reduce(state, AddItem{Product: tee, Size: "M", Quantity: 1})
	requireTotalInvariant(t, state)

	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].Quantity)
	assert.Equal(t, "200.00", state.Total)
}

func TestReduce_AddItemDifferentSizeAddsLine(t *testing.T) {
	tee := testProduct("p1", "100.00")

	state := Reduce(Empty(), AddItem{Product: tee, Size: "M"})
	state = Reduce(state, AddItem{Product: tee, Size: "L"})
	requireTotalInvariant(t, state)

	require.Len(t, state.Items, 2)
	assert.Equal(t, "200.00", state.Total)
}

func TestReduce_AddItemDefaultsQuantityToOne(t *testing.T) {
	state := Reduce(Empty(), AddItem{Product: testProduct("p1", "50.00"), Size: "M"})
	require.Len(t, state.Items, 1)
	assert.Equal(t, 1, state.Items[0].Quantity)
	assert.Equal(t, "50.00", state.Total)
}

func TestReduce_TotalInvariantAcrossTransitionSequence(t *testing.T) {
	tee := testProduct("p1", "350.00")
	hoodie := testProduct("p2", "650.00")

	state := Empty()
	actions := []Action{
		AddItem{Product: tee, Size: "M", Quantity: 2},
		AddItem{Product: hoodie, Size: "L", Quantity: 1},
		AddItem{Product: tee, Size: "M", Quantity: 1},
		UpdateQuantity{ProductID: "p2", Size: "L", Quantity: 3},
		RemoveItem{ProductID: "p1", Size: "M"},
		AddItem{Product: tee, Size: "S", Quantity: 1},
		UpdateQuantity{ProductID: "p1", Size: "S", Quantity: 0},
		ClearCart{},
		AddItem{Product: hoodie, Size: "XL"},
	}
	for _, action := range actions {
		state = Reduce(state, action)
		requireTotalInvariant(t, state)
	}

	require.Len(t, state.Items, 1)
	assert.Equal(t, "650.00", state.Total)
}

func TestReduce_UpdateQuantityZeroOrNegativeRemovesLine(t *testing.T) {
	tee := testProduct("p1", "100.00")

	for _, quantity := range []int{0, -3} {
		state := Reduce(Empty(), AddItem{Product: tee, Size: "M", Quantity: 2})
		before := len(state.Items)

		state = Reduce(state, UpdateQuantity{ProductID: "p1", Size: "M", Quantity: quantity})
		requireTotalInvariant(t, state)

		assert.Len(t, state.Items, before-1)
		assert.Equal(t, "0.00", state.Total)
	}
}

func TestReduce_UpdateQuantityIsAbsolute(t *testing.T) {
	state := Reduce(Empty(), AddItem{Product: testProduct("p1", "100.00"), Size: "M", Quantity: 5})
	state = Reduce(state, UpdateQuantity{ProductID: "p1", Size: "M", Quantity: 2})

	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].Quantity)
	assert.Equal(t, "200.00", state.Total)
}

func TestReduce_RemoveMissingItemIsNoOp(t *testing.T) {
	state := Reduce(Empty(), AddItem{Product: testProduct("p1", "100.00"), Size: "M"})

	next := Reduce(state, RemoveItem{ProductID: "missing", Size: "M"})
	assert.Equal(t, state, next)

	next = Reduce(state, RemoveItem{ProductID: "p1", Size: "L"})
	assert.Equal(t, state, next)
}

func TestReduce_ClearCart(t *testing.T) {
	state := Reduce(Empty(), AddItem{Product: testProduct("p1", "100.00"), Size: "M", Quantity: 4})
	state = Reduce(state, ClearCart{})

	assert.Empty(t, state.Items)
	assert.Equal(t, "0.00", state.Total)
}

func TestReduce_DoesNotMutateInputState(t *testing.T) {
	tee := testProduct("p1", "100.00")
	original := Reduce(Empty(), AddItem{Product: tee, Size: "M", Quantity: 1})

	_ = Reduce(original, AddItem{Product: tee, Size: "M", Quantity: 5})
	_ = Reduce(original, UpdateQuantity{ProductID: "p1", Size: "M", Quantity: 9})

	require.Len(t, original.Items, 1)
	assert.Equal(t, 1, original.Items[0].Quantity)
	assert.Equal(t, "100.00", original.Total)
}

func TestCount(t *testing.T) {
	tee := testProduct("p1", "100.00")
	state := Reduce(Empty(), AddItem{Product: tee, Size: "M", Quantity: 2})
	state = Reduce(state, AddItem{Product: tee, Size: "L", Quantity: 3})

	assert.Equal(t, 5, state.Count())
	assert.Equal(t, 0, Empty().Count())
}

func TestCheckout_SnapshotsProductFields(t *testing.T) {
	tee := testProduct("p1", "350.00")
	tee.Images = []string{"front.jpg", "back.jpg"}

	state := Reduce(Empty(), AddItem{Product: tee, Size: "M", Quantity: 2})
	draft := state.Checkout(domain.ShippingAddress{
		Name: "Thabo M", Street: "12 Vilakazi St", City: "Soweto", PostalCode: "1804", Phone: "0821234567",
	})

	require.Len(t, draft.Items, 1)
	line := draft.Items[0]
	assert.Equal(t, "p1", line.ProductID)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, "M", line.Size)
	assert.Equal(t, "350.00", line.Price)
	assert.Equal(t, "Tee", line.Name)
	assert.Equal(t, "front.jpg", line.Image)
	assert.Equal(t, "700.00", draft.Total)
	assert.Equal(t, "Soweto", draft.ShippingAddress.City)
}
