package domain

import "errors"

// Validation failures: malformed or out-of-range input.
var (
	ErrEmptyOrder       = errors.New("order must contain at least one item")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrInvalidPrice     = errors.New("price must not be negative")
	ErrCustomerRequired = errors.New("customer name is required")
	ErrNameRequired     = errors.New("name is required")
	ErrInvalidPayment   = errors.New("payment method must be cash, qris or transfer")
	ErrInsufficientCash = errors.New("cash received is less than the order total")
	ErrMenuUnavailable  = errors.New("menu item is not available")
)

// Conflicts: a state-transition precondition was violated.
var (
	ErrOrderPaid      = errors.New("order already paid")
	ErrOrderCancelled = errors.New("order already cancelled")
	ErrItemVoided     = errors.New("item already voided")
	ErrOrderChanged   = errors.New("order total changed since it was quoted")
)

// Not found: a referenced record does not exist.
var (
	ErrMenuNotFound     = errors.New("menu item not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrItemNotFound     = errors.New("order item not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// IsValidation reports whether err is caused by bad input.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrEmptyOrder, ErrInvalidQuantity, ErrInvalidPrice, ErrCustomerRequired,
		ErrNameRequired, ErrInvalidPayment, ErrInsufficientCash, ErrMenuUnavailable,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsConflict reports whether err is a violated state-transition precondition.
func IsConflict(err error) bool {
	return errors.Is(err, ErrOrderPaid) ||
		errors.Is(err, ErrOrderCancelled) ||
		errors.Is(err, ErrItemVoided) ||
		errors.Is(err, ErrOrderChanged)
}

// IsNotFound reports whether err refers to a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrMenuNotFound) ||
		errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrItemNotFound) ||
		errors.Is(err, ErrCategoryNotFound)
}

// ClosedOrderError maps a terminal order status to the matching conflict
// error so callers can tell "already paid" from "already cancelled".
func ClosedOrderError(status string) error {
	if status == StatusCancelled {
		return ErrOrderCancelled
	}
	return ErrOrderPaid
}
