package books

import "github.com/agentstation/bookstore/pkg/errors"

// Digital is a downloadable book. One copy is sold per transaction.
type Digital struct {
	item
	format string
}

// NewDigital creates a downloadable book in the given file format.
func NewDigital(id string, details Details, format string) (*Digital, error) {
	if err := details.validate(id); err != nil {
		return nil, err
	}
	if format == "" {
		return nil, &errors.ValidationError{Field: "format", Message: "cannot be empty"}
	}
	return &Digital{
		item:   item{id: id, details: details},
		format: format,
	}, nil
}

// Kind returns KindDigital.
func (d *Digital) Kind() Kind { return KindDigital }

// Format returns the file format, e.g. PDF.
func (d *Digital) Format() string { return d.format }

// IsAvailable reports whether quantity is exactly one.
func (d *Digital) IsAvailable(quantity int) bool {
	return quantity == 1
}

// Buy sends the file to order.Contact.
func (d *Digital) Buy(order Order) (Delivery, error) {
	if !d.IsAvailable(order.Quantity) {
		return Delivery{}, d.purchaseError(order.Quantity, 1, errors.ErrInvalidQuantity)
	}

	delivery := d.delivery(DeliveryFile, order)
	delivery.Contact = order.Contact
	delivery.Format = d.format
	return delivery, nil
}
