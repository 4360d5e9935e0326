// Package arith holds the pure integer operations of the module.
package arith

import (
	apperrors "go-testing-examples/pkg/errors"
)

// Add returns the sum of two integers. Overflow wraps around.
func Add(a, b int) int {
	return a + b
}

// Multiply returns the product of two integers. Overflow wraps around.
func Multiply(a, b int) int {
	return a * b
}

// Divide returns a / b truncated toward zero.
// A zero divisor yields a *apperrors.DivisionByZeroError, which matches
// apperrors.ErrDivisionByZero under errors.Is.
func Divide(a, b int) (int, error) {
	if b == 0 {
		return 0, apperrors.NewDivisionByZeroError()
	}
	return a / b, nil
}
