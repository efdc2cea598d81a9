package domain

import "errors"

// Domain errors as sentinel values
var (
	// ErrIncompleteProduct rejects an add whose candidate is missing its
	// id, name, or a positive price.
	ErrIncompleteProduct = errors.New("product data is incomplete")

	// ErrInvalidPrice rejects negative monetary amounts.
	ErrInvalidPrice = errors.New("price must not be negative")

	// ErrQuantityOutOfRange rejects a requested quantity outside the
	// per-add [1, 10] bound.
	ErrQuantityOutOfRange = errors.New("quantity must be between 1 and 10")

	// ErrItemNotFound signals a lookup for an id not present in the cart.
	ErrItemNotFound = errors.New("item not found in cart")

	// ErrEmptyCart rejects checkout when there is nothing to buy.
	ErrEmptyCart = errors.New("cart is empty")
)
