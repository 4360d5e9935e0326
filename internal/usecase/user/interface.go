package user

import "context"

// Usecase defines the user record checks offered to callers.
type Usecase interface {
	Inspect(ctx context.Context, in InspectUserRequest) (*InspectUserResponse, error)
}
