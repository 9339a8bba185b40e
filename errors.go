package main

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrSupplierNotFound   = errors.New("supplier not found")
	ErrPurchaseNotFound   = errors.New("purchase not found")
	ErrSaleNotFound       = errors.New("sale not found")
	ErrAdjustmentNotFound = errors.New("inventory adjustment not found")
	ErrLinkNotFound       = errors.New("supplier is not linked to this product")

	// ErrAlreadyLinked is returned when linking a supplier to a product that
	// already carries that supplier.
	ErrAlreadyLinked = errors.New("supplier already linked to this product")

	// ErrProductReferenced guards catalog deletes: a product referenced by
	// purchase or sale line items cannot be removed.
	ErrProductReferenced = errors.New("product is referenced by existing records")

	// ErrConflict surfaces a concurrent-update conflict (serialization
	// failure, deadlock, or an idempotency-key race). Callers may retry the
	// whole workflow.
	ErrConflict = errors.New("concurrent update conflict, retry the request")
)

// ValidationError rejects malformed input before any write happens.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is one of the entity not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrSupplierNotFound) ||
		errors.Is(err, ErrPurchaseNotFound) ||
		errors.Is(err, ErrSaleNotFound) ||
		errors.Is(err, ErrAdjustmentNotFound) ||
		errors.Is(err, ErrLinkNotFound)
}
