package domain

import (
	"errors"
	"fmt"
)

// Error kinds the handlers translate into user-facing messages. Anything
// not matching these is treated as an infrastructure fault.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

// ErrQuantityMismatch: food_item and number lists were not parallel.
var ErrQuantityMismatch = fmt.Errorf("%w: item and quantity counts differ", ErrValidation)

// UnknownItemError: a requested item has no menu match. Carries the raw
// name so the reply can echo it back.
type UnknownItemError struct {
	Name string
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("menu item %q not found", e.Name)
}

func (e *UnknownItemError) Unwrap() error { return ErrValidation }
