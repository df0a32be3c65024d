package cart

import (
	"github.com/sokobo/storefront/internal/domain"
)

// Draft is a cart converted into the shape an order-create call expects:
// per-line snapshots of name, image and unit price plus the cart total.
type Draft struct {
	Items           []domain.OrderItem
	Total           string
	ShippingAddress domain.ShippingAddress
}

// Checkout turns the cart into an order draft. Product name, primary
// image and price are captured by value so the resulting order is immune
// to later catalog edits.
func (s State) Checkout(address domain.ShippingAddress) Draft {
	items := make([]domain.OrderItem, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, domain.OrderItem{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Price:     item.Product.Price,
			Name:      item.Product.Name,
			Image:     item.Product.PrimaryImage(),
		})
	}
	return Draft{Items: items, Total: s.Total, ShippingAddress: address}
}
