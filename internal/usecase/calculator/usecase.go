package calculator

import (
	"context"

	"go.uber.org/zap"

	"go-testing-examples/internal/domain/arith"
	apperrors "go-testing-examples/pkg/errors"
	"go-testing-examples/pkg/logger"
)

// Service exposes the arithmetic operations with request logging.
type Service struct {
	log *zap.Logger
}

var _ Usecase = (*Service)(nil)

// New creates a new calculator Service.
func New(log *zap.Logger) *Service {
	return &Service{log: log}
}

// Add returns in.A + in.B.
func (uc *Service) Add(ctx context.Context, in BinaryRequest) (*ResultResponse, error) {
	v := arith.Add(in.A, in.B)
	logger.WithContext(ctx, uc.log).Debug("add", zap.Int("a", in.A), zap.Int("b", in.B), zap.Int("result", v))
	return &ResultResponse{Value: v}, nil
}

// Multiply returns in.A * in.B.
func (uc *Service) Multiply(ctx context.Context, in BinaryRequest) (*ResultResponse, error) {
	v := arith.Multiply(in.A, in.B)
	logger.WithContext(ctx, uc.log).Debug("multiply", zap.Int("a", in.A), zap.Int("b", in.B), zap.Int("result", v))
	return &ResultResponse{Value: v}, nil
}

// Divide returns in.A / in.B. The division by zero error is returned as is.
func (uc *Service) Divide(ctx context.Context, in BinaryRequest) (*ResultResponse, error) {
	log := logger.WithContext(ctx, uc.log)

	v, err := arith.Divide(in.A, in.B)
	if err != nil {
		log.Warn("divide failed",
			zap.Int("a", in.A),
			zap.Int("b", in.B),
			zap.Stringer("code", apperrors.Code(err)),
			zap.Error(err),
		)
		return nil, err
	}

	log.Debug("divide", zap.Int("a", in.A), zap.Int("b", in.B), zap.Int("result", v))
	return &ResultResponse{Value: v}, nil
}
