package errors_test

import (
	"fmt"

	"github.com/agentstation/bookstore/pkg/errors"
)

// Example demonstrates basic error creation and checking.
func Example() {
	err := &errors.NotFoundError{
		Resource: "book",
		ID:       "PB-1001",
	}

	if errors.IsNotFound(err) {
		fmt.Println("Book not found")
	}

	// Output: Book not found
}

// Example_purchaseError shows how callers branch on purchase rule violations.
func Example_purchaseError() {
	err := errors.NewPurchaseError("DB-1001", "Quantum Showcase", 1, 0, errors.ErrNotForSale)

	switch {
	case errors.IsNotForSale(err):
		fmt.Println("demo copy, skip")
	case errors.IsInsufficientStock(err):
		fmt.Println("restock needed")
	case errors.IsInvalidQuantity(err):
		fmt.Println("fix quantity")
	}

	// Output: demo copy, skip
}

// Example_storageError shows that storage failures are distinct from rule violations.
func Example_storageError() {
	err := errors.WrapStorage("write", "isbn_counter.txt", errors.New("read-only file system"))

	fmt.Println(errors.IsStorage(err), errors.IsPurchaseError(err))

	// Output: true false
}
