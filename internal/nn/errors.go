package nn

import (
	"errors"
	"fmt"

	"github.com/born-ml/ffnet/internal/tensor"
)

// Common errors.
var (
	// ErrShapeMismatch is returned (wrapped) when tensors with incompatible
	// shapes meet in Forward, Backward or SetParams.
	ErrShapeMismatch = tensor.ErrShapeMismatch

	// ErrInvalidConstruction is returned (wrapped) when a layer or network
	// is built with invalid arguments.
	ErrInvalidConstruction = errors.New("invalid construction")
)

// ConstructionError reports which constructor check failed.
type ConstructionError struct {
	Component string // "linear" or "network"
	Details   string
}

// Error implements the error interface.
func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Component, ErrInvalidConstruction, e.Details)
}

// Unwrap returns ErrInvalidConstruction.
func (e *ConstructionError) Unwrap() error {
	return ErrInvalidConstruction
}
