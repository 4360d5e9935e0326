package user

import "strings"

// AdultAge is the age from which a user counts as an adult.
const AdultAge = 18

// User represents a user record. Fields are stored as given; nothing is
// validated until one of the predicates is asked.
type User struct {
	Name  string // Name is the display name of the user
	Email string // Email is the email address, unchecked
	Age   uint32 // Age is the age in years
}

// NewUser creates a User from the given fields verbatim.
func NewUser(name, email string, age uint32) User {
	return User{
		Name:  name,
		Email: email,
		Age:   age,
	}
}

// IsAdult reports whether the user is at least AdultAge years old.
func (u User) IsAdult() bool {
	return u.Age >= AdultAge
}

// ValidateEmail reports whether the email contains both '@' and '.'.
// This is a loose check, not address validation: "a.b@" passes.
func (u User) ValidateEmail() bool {
	return strings.Contains(u.Email, "@") && strings.Contains(u.Email, ".")
}
