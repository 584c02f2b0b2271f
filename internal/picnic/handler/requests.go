package handler

import (
	"strconv"
	"strings"
	"time"

	dErrors "picnic/pkg/domain-errors"
)

// Accepted timestamp layouts. Layouts without an offset are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func parseTimestamp(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, dErrors.New(dErrors.CodeValidation, field+" is required")
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, dErrors.New(dErrors.CodeValidation, field+" must be an RFC 3339 timestamp")
}

// parseQueryTimestamp reads a timestamp from a query string. An offset sent
// with an unencoded "+" arrives as a space and is restored.
func parseQueryTimestamp(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if i := strings.LastIndexByte(value, ' '); i > len("2006-01-02") && isClockOffset(value[i+1:]) {
		value = value[:i] + "+" + value[i+1:]
	}
	return parseTimestamp(field, value)
}

func isClockOffset(s string) bool {
	if len(s) != len("07:00") || s[2] != ':' {
		return false
	}
	for i, c := range s {
		if i != 2 && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

func parseBool(field, value string, fallback bool) (bool, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, dErrors.New(dErrors.CodeValidation, field+" must be true or false")
	}
	return b, nil
}

// parseID accepts any integer. Ids that cannot exist are left to the store
// and come back as not found.
func parseID(field, value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeValidation, field+" must be an integer")
	}
	return id, nil
}

// CreateCityRequest is the body of POST /create-city/.
type CreateCityRequest struct {
	Name string `json:"name"`
}

func (r *CreateCityRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	return nil
}

// RegisterUserRequest is the body of POST /register-user/.
type RegisterUserRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Age     *int   `json:"age"`
}

func (r *RegisterUserRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Surname = strings.TrimSpace(r.Surname)
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	if r.Surname == "" {
		return dErrors.New(dErrors.CodeValidation, "surname is required")
	}
	return nil
}

// SchedulePicnicRequest is the body of POST /picnic-add/.
type SchedulePicnicRequest struct {
	CityID   int64  `json:"city_id"`
	Datetime string `json:"datetime"`

	parsedTime time.Time
}

func (r *SchedulePicnicRequest) Validate() error {
	t, err := parseTimestamp("datetime", r.Datetime)
	if err != nil {
		return err
	}
	r.parsedTime = t
	return nil
}

// ParsedTime returns the validated picnic time.
func (r *SchedulePicnicRequest) ParsedTime() time.Time {
	return r.parsedTime
}

// RegisterForPicnicRequest is the body of POST /picnic-register/.
type RegisterForPicnicRequest struct {
	UserID   int64 `json:"user_id"`
	PicnicID int64 `json:"picnic_id"`
}

// Validate accepts any ids; unknown users and picnics are reported as not found.
func (r *RegisterForPicnicRequest) Validate() error {
	return nil
}
