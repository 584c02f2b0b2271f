// Package sentinel holds the infrastructure facts stores report. Services
// translate them into coded domain errors; handlers never see them.
package sentinel

import "errors"

var (
	// ErrNotFound means the row, or a row it references, does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyUsed means a unique value such as a city name is taken.
	ErrAlreadyUsed = errors.New("already used")
)
