package handler

import (
	"time"

	"picnic/internal/picnic/models"
)

type CityResponse struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Weather          string `json:"weather"`
	WeatherAvailable bool   `json:"weather_available"`
}

type UserResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Age     *int   `json:"age"`
}

type ScheduledPicnicResponse struct {
	ID   int64     `json:"id"`
	City string    `json:"city"`
	Time time.Time `json:"time"`
}

type PicnicResponse struct {
	ID    int64          `json:"id"`
	City  string         `json:"city"`
	Time  time.Time      `json:"time"`
	Users []UserResponse `json:"users"`
}

type RegistrationResponse struct {
	RegistrationID   int64  `json:"registration_id"`
	UserID           int64  `json:"user_id"`
	UserName         string `json:"user_name"`
	PicnicID         int64  `json:"picnic_id"`
	CityName         string `json:"city_name"`
	Weather          string `json:"weather"`
	WeatherAvailable bool   `json:"weather_available"`
}

func toCityResponse(c models.CityWithWeather) CityResponse {
	return CityResponse{
		ID:               c.ID,
		Name:             c.Name,
		Weather:          c.Weather,
		WeatherAvailable: c.WeatherAvailable,
	}
}

func toUserResponse(u models.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Surname: u.Surname, Age: u.Age}
}

func toPicnicResponse(p models.PicnicDetails) PicnicResponse {
	users := make([]UserResponse, 0, len(p.Users))
	for _, u := range p.Users {
		users = append(users, toUserResponse(u))
	}
	return PicnicResponse{ID: p.ID, City: p.CityName, Time: p.Time.UTC(), Users: users}
}

func toRegistrationResponse(c *models.RegistrationConfirmation) RegistrationResponse {
	return RegistrationResponse{
		RegistrationID:   c.RegistrationID,
		UserID:           c.UserID,
		UserName:         c.UserName,
		PicnicID:         c.PicnicID,
		CityName:         c.CityName,
		Weather:          c.Weather,
		WeatherAvailable: c.WeatherAvailable,
	}
}
