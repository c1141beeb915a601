package tensor

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors.
var (
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrInvalidShape  = errors.New("invalid shape")
)

// ShapeError reports an operation that received incompatible shapes.
//
// It matches ErrShapeMismatch under errors.Is.
type ShapeError struct {
	Op      string  // Operation that failed (e.g., "matmul", "linear.forward")
	Shapes  []Shape // Offending operand shapes, in argument order
	Details string  // Which check failed
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	parts := make([]string, len(e.Shapes))
	for i, s := range e.Shapes {
		parts[i] = s.String()
	}
	msg := fmt.Sprintf("%s: %v", e.Op, ErrShapeMismatch)
	if len(parts) > 0 {
		msg += " " + strings.Join(parts, " vs ")
	}
	if e.Details != "" {
		msg += ": " + e.Details
	}
	return msg
}

// Unwrap returns ErrShapeMismatch.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

// NewShapeError builds a ShapeError. Shapes are copied.
func NewShapeError(op, details string, shapes ...Shape) *ShapeError {
	cloned := make([]Shape, len(shapes))
	for i, s := range shapes {
		cloned[i] = s.Clone()
	}
	return &ShapeError{Op: op, Shapes: cloned, Details: details}
}
