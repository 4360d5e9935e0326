package user

// InspectUserRequest carries the fields of the user to inspect.
type InspectUserRequest struct {
	Name  string
	Email string
	Age   uint32
}

// InspectUserResponse reports the user as built and its predicate results.
type InspectUserResponse struct {
	Name       string
	Email      string
	Age        uint32
	IsAdult    bool
	EmailValid bool
}
