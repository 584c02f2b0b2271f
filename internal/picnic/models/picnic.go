package models

import (
	"time"

	dErrors "picnic/pkg/domain-errors"
)

// Picnic is a gathering scheduled in a city at a given time. Past times are
// accepted; a picnic is immutable once created.
type Picnic struct {
	ID     int64     `json:"id"`
	CityID int64     `json:"city_id"`
	Time   time.Time `json:"time"`
}

// NormalizeTime converts t to UTC at microsecond precision, the resolution
// PostgreSQL stores, so equality filters match in every store.
func NormalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// NewPicnic builds an unsaved picnic. The city reference is checked by the
// store, so an id that cannot exist surfaces as not found.
func NewPicnic(cityID int64, at time.Time) (*Picnic, error) {
	if at.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "time is required")
	}
	return &Picnic{CityID: cityID, Time: NormalizeTime(at)}, nil
}

// PicnicFilter narrows ListPicnics. At matches an exact time; From keeps
// picnics at or after the given instant. Nil fields do not filter.
type PicnicFilter struct {
	At   *time.Time
	From *time.Time
}

// Matches reports whether p passes the filter.
func (f PicnicFilter) Matches(p *Picnic) bool {
	if f.At != nil && !p.Time.Equal(*f.At) {
		return false
	}
	if f.From != nil && p.Time.Before(*f.From) {
		return false
	}
	return true
}

// PicnicDetails is a picnic with its city resolved and its attendees listed.
type PicnicDetails struct {
	ID       int64     `json:"id"`
	CityID   int64     `json:"city_id"`
	CityName string    `json:"city"`
	Time     time.Time `json:"time"`
	Users    []User    `json:"users"`
}
