package models

import (
	"strings"

	dErrors "picnic/pkg/domain-errors"
)

const maxAge = 150

// User is a person who can register for picnics.
//
// Invariants:
//   - Name and Surname are non-empty after trimming
//   - Age, when present, is within 0..150
//
// Duplicate (name, surname) pairs are allowed.
type User struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Age     *int   `json:"age"`
}

func NewUser(name, surname string, age *int) (*User, error) {
	name = strings.TrimSpace(name)
	surname = strings.TrimSpace(surname)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "name is required")
	}
	if surname == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "surname is required")
	}
	if age != nil && (*age < 0 || *age > maxAge) {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "age must be between 0 and 150")
	}
	return &User{Name: name, Surname: surname, Age: age}, nil
}

// UserOrder selects how ListUsers sorts its result.
type UserOrder int

const (
	UserOrderNatural UserOrder = iota
	UserOrderAgeAsc
	UserOrderAgeDesc
)

// ParseUserOrder maps the public sort parameter to an order. "min"/"asc" sort
// by ascending age, "max"/"desc" by descending age; anything else keeps store order.
func ParseUserOrder(value string) UserOrder {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "min", "asc":
		return UserOrderAgeAsc
	case "max", "desc":
		return UserOrderAgeDesc
	default:
		return UserOrderNatural
	}
}
