package calculator

import "context"

// Usecase defines the arithmetic operations offered to callers.
type Usecase interface {
	Add(ctx context.Context, in BinaryRequest) (*ResultResponse, error)
	Multiply(ctx context.Context, in BinaryRequest) (*ResultResponse, error)
	Divide(ctx context.Context, in BinaryRequest) (*ResultResponse, error)
}
