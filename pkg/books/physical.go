package books

import "github.com/agentstation/bookstore/pkg/errors"

// Physical is a printed book with a stock count.
type Physical struct {
	item
	stock     int
	shippable bool
}

// NewPhysical creates a printed book. Shippable copies are sent to the
// order address, the rest are picked up in store.
func NewPhysical(id string, details Details, stock int, shippable bool) (*Physical, error) {
	if err := details.validate(id); err != nil {
		return nil, err
	}
	if stock < 0 {
		return nil, errors.NewValidationError("stock", stock, "cannot be negative")
	}
	return &Physical{
		item:      item{id: id, details: details},
		stock:     stock,
		shippable: shippable,
	}, nil
}

// Kind returns KindPhysical.
func (p *Physical) Kind() Kind { return KindPhysical }

// Stock returns the copies on hand.
func (p *Physical) Stock() int { return p.stock }

// Shippable reports whether purchases are shipped.
func (p *Physical) Shippable() bool { return p.shippable }

// IsAvailable reports whether stock covers quantity. It does not validate
// quantity: IsAvailable(0) is true, yet Buy rejects quantities below one.
func (p *Physical) IsAvailable(quantity int) bool {
	return p.stock >= quantity
}

// Buy removes order.Quantity copies from stock.
func (p *Physical) Buy(order Order) (Delivery, error) {
	if order.Quantity < 1 {
		return Delivery{}, p.purchaseError(order.Quantity, p.stock, errors.ErrInvalidQuantity)
	}
	if !p.IsAvailable(order.Quantity) {
		return Delivery{}, p.purchaseError(order.Quantity, p.stock, errors.ErrInsufficientStock)
	}

	p.stock -= order.Quantity

	if p.shippable {
		d := p.delivery(DeliveryShipping, order)
		d.Address = order.Address
		return d, nil
	}
	d := p.delivery(DeliveryPickup, order)
	d.Contact = order.Contact
	return d, nil
}
