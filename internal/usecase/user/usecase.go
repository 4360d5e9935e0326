package user

import (
	"context"

	"go.uber.org/zap"

	domain "go-testing-examples/internal/domain/user"
	"go-testing-examples/pkg/logger"
)

// Service implements the user record checks.
type Service struct {
	log *zap.Logger
}

var _ Usecase = (*Service)(nil)

// New creates a new user Service.
func New(log *zap.Logger) *Service {
	return &Service{log: log}
}

// Inspect builds a user from the request and evaluates both predicates.
// It never rejects input: an invalid email only shows up as EmailValid=false.
func (uc *Service) Inspect(ctx context.Context, in InspectUserRequest) (*InspectUserResponse, error) {
	u := domain.NewUser(in.Name, in.Email, in.Age)

	resp := &InspectUserResponse{
		Name:       u.Name,
		Email:      u.Email,
		Age:        u.Age,
		IsAdult:    u.IsAdult(),
		EmailValid: u.ValidateEmail(),
	}

	log := logger.WithContext(ctx, uc.log)
	if !resp.EmailValid {
		log.Warn("user email failed check", zap.String("name", u.Name), zap.String("email", u.Email))
	}
	log.Info("user inspected",
		zap.String("name", u.Name),
		zap.Uint32("age", u.Age),
		zap.Bool("adult", resp.IsAdult),
		zap.Bool("email_valid", resp.EmailValid),
	)

	return resp, nil
}
