package service

import (
	"context"
	"errors"
	"time"

	"picnic/internal/picnic/models"
	dErrors "picnic/pkg/domain-errors"
	"picnic/pkg/platform/sentinel"
	"picnic/pkg/requestcontext"
)

// SchedulePicnic creates a picnic in an existing city. Past times are allowed.
func (s *Service) SchedulePicnic(ctx context.Context, cityID int64, at time.Time) (*models.PicnicDetails, error) {
	picnic, err := models.NewPicnic(cityID, at)
	if err != nil {
		return nil, toValidation(err)
	}

	city, err := s.GetCity(ctx, cityID)
	if err != nil {
		return nil, err
	}

	if err := s.picnics.CreatePicnic(ctx, picnic); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "city not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create picnic")
	}

	s.logInfo(ctx, "picnic scheduled",
		"picnic_id", picnic.ID,
		"city_id", city.ID,
		"time", picnic.Time,
	)
	if s.metrics != nil {
		s.metrics.IncrementPicnicsScheduled()
	}

	return &models.PicnicDetails{
		ID:       picnic.ID,
		CityID:   city.ID,
		CityName: city.Name,
		Time:     picnic.Time,
		Users:    []models.User{},
	}, nil
}

// ListPicnics returns picnics with their city names and attendees. A non-nil at
// keeps only picnics at exactly that time; includePast=false drops picnics
// before the request time.
func (s *Service) ListPicnics(ctx context.Context, at *time.Time, includePast bool) ([]models.PicnicDetails, error) {
	var filter models.PicnicFilter
	if at != nil {
		t := models.NormalizeTime(*at)
		filter.At = &t
	}
	if !includePast {
		now := models.NormalizeTime(requestcontext.Now(ctx))
		filter.From = &now
	}

	picnics, err := s.picnics.ListPicnics(ctx, filter)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list picnics")
	}
	if len(picnics) == 0 {
		return []models.PicnicDetails{}, nil
	}

	picnicIDs := make([]int64, 0, len(picnics))
	cityIDs := make([]int64, 0, len(picnics))
	seenCity := make(map[int64]struct{}, len(picnics))
	for _, p := range picnics {
		picnicIDs = append(picnicIDs, p.ID)
		if _, ok := seenCity[p.CityID]; !ok {
			seenCity[p.CityID] = struct{}{}
			cityIDs = append(cityIDs, p.CityID)
		}
	}

	cities, err := s.cities.FindCitiesByIDs(ctx, cityIDs)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve picnic cities")
	}
	attendees, err := s.picnics.ListAttendees(ctx, picnicIDs)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list attendees")
	}

	result := make([]models.PicnicDetails, 0, len(picnics))
	for _, p := range picnics {
		details := models.PicnicDetails{
			ID:     p.ID,
			CityID: p.CityID,
			Time:   p.Time,
			Users:  attendees[p.ID],
		}
		if city, ok := cities[p.CityID]; ok {
			details.CityName = city.Name
		}
		if details.Users == nil {
			details.Users = []models.User{}
		}
		result = append(result, details)
	}
	return result, nil
}

// RegisterForPicnic registers a user for a picnic and reports the current
// weather in the picnic's city.
func (s *Service) RegisterForPicnic(ctx context.Context, userID, picnicID int64) (*models.RegistrationConfirmation, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
	}
	picnic, err := s.picnics.FindPicnicByID(ctx, picnicID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "picnic not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load picnic")
	}
	city, err := s.cities.FindCityByID(ctx, picnic.CityID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load picnic city")
	}

	reg := models.NewRegistration(user.ID, picnic.ID)
	if err := s.picnics.CreateRegistration(ctx, reg); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "user or picnic not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to register for picnic")
	}

	s.logInfo(ctx, "user registered for picnic",
		"registration_id", reg.ID,
		"user_id", user.ID,
		"picnic_id", picnic.ID,
	)
	if s.metrics != nil {
		s.metrics.IncrementPicnicRegistrations()
	}

	weather := s.withWeather(ctx, *city)
	return &models.RegistrationConfirmation{
		RegistrationID:   reg.ID,
		UserID:           user.ID,
		UserName:         user.Name,
		PicnicID:         picnic.ID,
		CityName:         city.Name,
		Weather:          weather.Weather,
		WeatherAvailable: weather.WeatherAvailable,
	}, nil
}
