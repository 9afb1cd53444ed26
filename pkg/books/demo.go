package books

import (
	"github.com/shopspring/decimal"

	"github.com/agentstation/bookstore/pkg/errors"
)

// Demo is a showcase copy. Its price is always zero and it is never sold.
type Demo struct {
	item
}

// NewDemo creates a showcase book. Any price in details is ignored.
func NewDemo(id string, details Details) (*Demo, error) {
	details.Price = decimal.Zero
	if err := details.validate(id); err != nil {
		return nil, err
	}
	return &Demo{item: item{id: id, details: details}}, nil
}

// Kind returns KindDemo.
func (d *Demo) Kind() Kind { return KindDemo }

// IsAvailable always returns false.
func (d *Demo) IsAvailable(int) bool {
	return false
}

// Buy always fails with ErrNotForSale.
func (d *Demo) Buy(order Order) (Delivery, error) {
	return Delivery{}, d.purchaseError(order.Quantity, 0, errors.ErrNotForSale)
}
