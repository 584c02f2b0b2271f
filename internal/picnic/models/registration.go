package models

// Registration links a user to a picnic. The same pair may be registered more
// than once.
type Registration struct {
	ID       int64 `json:"id"`
	UserID   int64 `json:"user_id"`
	PicnicID int64 `json:"picnic_id"`
}

// NewRegistration builds an unsaved registration. Both references are
// resolved by the caller and enforced again by the store.
func NewRegistration(userID, picnicID int64) *Registration {
	return &Registration{UserID: userID, PicnicID: picnicID}
}

// RegistrationConfirmation is returned after a user registers for a picnic.
// Weather reflects the picnic city at registration time.
type RegistrationConfirmation struct {
	RegistrationID   int64  `json:"registration_id"`
	UserID           int64  `json:"user_id"`
	UserName         string `json:"user_name"`
	PicnicID         int64  `json:"picnic_id"`
	CityName         string `json:"city_name"`
	Weather          string `json:"weather"`
	WeatherAvailable bool   `json:"weather_available"`
}
