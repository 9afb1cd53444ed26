package books

import "github.com/shopspring/decimal"

// Order describes a purchase request.
type Order struct {
	// Contact receives notices and files, e.g. an email address.
	Contact string
	// Address is the shipping destination for shippable books.
	Address string
	// Quantity is the number of copies requested.
	Quantity int
}

// DeliveryKind says how a purchased book reaches the buyer.
type DeliveryKind string

const (
	// DeliveryShipping sends a physical copy to Address.
	DeliveryShipping DeliveryKind = "shipping"
	// DeliveryPickup notifies Contact that the copy waits in store.
	DeliveryPickup DeliveryKind = "pickup"
	// DeliveryFile sends the file to Contact.
	DeliveryFile DeliveryKind = "file"
)

// String returns the string representation of a DeliveryKind.
func (k DeliveryKind) String() string {
	return string(k)
}

// Delivery is the outcome of a successful purchase.
type Delivery struct {
	Kind     DeliveryKind    `json:"kind" yaml:"kind"`
	BookID   string          `json:"book_id" yaml:"book_id"`
	Title    string          `json:"title" yaml:"title"`
	Contact  string          `json:"contact,omitempty" yaml:"contact,omitempty"`
	Address  string          `json:"address,omitempty" yaml:"address,omitempty"`
	Format   string          `json:"format,omitempty" yaml:"format,omitempty"`
	Quantity int             `json:"quantity" yaml:"quantity"`
	Amount   decimal.Decimal `json:"amount" yaml:"amount"`
}
