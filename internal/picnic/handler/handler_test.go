package handler_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"picnic/internal/picnic/handler"
	"picnic/internal/picnic/handler/mocks"
	"picnic/internal/picnic/models"
	dErrors "picnic/pkg/domain-errors"
	"picnic/pkg/testutil"
)

func newPicnicRouter(t *testing.T) (http.Handler, *mocks.MockService) {
	t.Helper()
	return newPicnicRouterWithLogger(t, slog.New(slog.DiscardHandler))
}

func newPicnicRouterWithLogger(t *testing.T, logger *slog.Logger) (http.Handler, *mocks.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	r := chi.NewRouter()
	handler.New(svc, logger).Register(r)
	return r, svc
}

func kazan() *models.CityWithWeather {
	c := models.City{ID: 1, Name: "Kazan"}.WithWeather("clear sky, 21.5°C")
	return &c
}

func TestHandleCreateCity(t *testing.T) {
	testutil.Given(t, "a valid city name", func(t *testing.T) {
		router, svc := newPicnicRouter(t)
		svc.EXPECT().CreateCity(gomock.Any(), "kazan").Return(kazan(), nil)

		testutil.When(t, "the city is created", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/create-city/", map[string]string{"name": " kazan "}))

			testutil.Then(t, "the city is returned with weather", func(t *testing.T) {
				testutil.AssertStatusOK(t, rr)
				resp := testutil.UnmarshalResponse[handler.CityResponse](t, rr)
				assert.Equal(t, int64(1), resp.ID)
				assert.Equal(t, "Kazan", resp.Name)
				assert.Equal(t, "clear sky, 21.5°C", resp.Weather)
				assert.True(t, resp.WeatherAvailable)
			})
		})
	})

	testutil.Given(t, "a malformed body", func(t *testing.T) {
		router, _ := newPicnicRouter(t)
		rr := testutil.DoRequest(router, testutil.NewRequestWithBody(t, http.MethodPost, "/create-city/", "{"))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
	})

	testutil.Given(t, "a blank name", func(t *testing.T) {
		router, _ := newPicnicRouter(t)
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/create-city/", map[string]string{"name": "  "}))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_error")
	})

	testutil.Given(t, "a city the registry does not know", func(t *testing.T) {
		router, svc := newPicnicRouter(t)
		svc.EXPECT().CreateCity(gomock.Any(), "Atlantis").
			Return(nil, dErrors.New(dErrors.CodeUnknownCity, "city not found in registry"))

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/create-city/", map[string]string{"name": "Atlantis"}))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "unknown_city")
	})

	testutil.Given(t, "the registry is down", func(t *testing.T) {
		router, svc := newPicnicRouter(t)
		svc.EXPECT().CreateCity(gomock.Any(), "Kazan").
			Return(nil, dErrors.New(dErrors.CodeExternalUnavailable, "city registry unavailable"))

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/create-city/", map[string]string{"name": "Kazan"}))
		testutil.AssertStatusAndError(t, rr, http.StatusServiceUnavailable, "external_unavailable")
	})
}

func TestHandleListCities(t *testing.T) {
	t.Run("passes the filter and returns an array", func(t *testing.T) {
		router, svc := newPicnicRouter(t)
		svc.EXPECT().ListCities(gomock.Any(), "Kazan").Return([]models.CityWithWeather{*kazan()}, nil)

		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/get-cities/?q=Kazan"))
		testutil.AssertStatusOK(t, rr)
		resp := testutil.UnmarshalResponse[[]handler.CityResponse](t, rr)
		require.Len(t, *resp, 1)
		assert.Equal(t, "Kazan", (*resp)[0].Name)
	})

	t.Run("empty store yields an empty array", func(t *testing.T) {
		router, svc := newPicnicRouter(t)
		svc.EXPECT().ListCities(gomock.Any(), "").Return(nil, nil)

		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/get-cities/"))
		testutil.AssertStatusOK(t, rr)
		assert.JSONEq(t, "[]", rr.Body.String())
	})

	t.Run("degraded weather is reported", func(t *testing.T) {
		router, svc := newPicnicRouter(t)
		city := models.City{ID: 2, Name: "Moscow"}.WithWeather("")
		svc.EXPECT().ListCities(gomock.Any(), "").Return([]models.CityWithWeather{city}, nil)

		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/get-cities/"))
		resp := testutil.UnmarshalResponse[[]handler.CityResponse](t, rr)
		require.Len(t, *resp, 1)
		assert.Equal(t, models.WeatherUnavailable, (*resp)[0].Weather)
		assert.False(t, (*resp)[0].WeatherAvailable)
	})
}

func TestHandleGetCity(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router, svc := newPicnicRouter(t)
		svc.EXPECT().GetCityWithWeather(gomock.Any(), int64(1)).Return(kazan(), nil)

		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/cities/1"))
		testutil.AssertStatusOK(t, rr)
		testutil.AssertJSONContains(t, rr, "name", "Kazan")
	})

	t.Run("not found", func(t *testing.T) {
		router, svc := newPicnicRouter(t)
		svc.EXPECT().GetCityWithWeather(gomock.Any(), int64(9)).
			Return(nil, dErrors.New(dErrors.CodeNotFound, "city not found"))

		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/cities/9"))
		testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
	})

	t.Run("non-positive ids reach the service", func(t *testing.T) {
		for _, id := range []int64{0, -1} {
			router, svc := newPicnicRouter(t)
			svc.EXPECT().GetCityWithWeather(gomock.Any(), id).
				Return(nil, dErrors.New(dErrors.CodeNotFound, "city not found"))

			rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/cities/"+strconv.FormatInt(id, 10)))
			testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
		}
	})

	t.Run("non-numeric id", func(t *testing.T) {
		router, _ := newPicnicRouter(t)
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/cities/abc"))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_error")
	})
}

func TestHandleRegisterUser(t *testing.T) {
	t.Run("registers with optional age", func(t *testing.T) {
		router, svc := newPicnicRouter(t)
		age := 30
		svc.EXPECT().RegisterUser(gomock.Any(), "Ann", "Lee", gomock.Any()).
			DoAndReturn(func(_ any, name, surname string, got *int) (*models.User, error) {
				require.NotNil(t, got)
				assert.Equal(t, 30, *got)
				return &models.User{ID: 4, Name: name, Surname: surname, Age: &age}, nil
			})

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/register-user/",
			map[string]any{"name": "Ann", "surname": "Lee", "age": 30}))
		testutil.AssertStatusOK(t, rr)
		resp := testutil.UnmarshalResponse[handler.UserResponse](t, rr)
		assert.Equal(t, int64(4), resp.ID)
		require.NotNil(t, resp.Age)
	})

	t.Run("missing age is null", func(t *testing.T) {
		router, svc := newPicnicRouter(t)
		svc.EXPECT().RegisterUser(gomock.Any(), "Bob", "Ray", (*int)(nil)).
			Return(&models.User{ID: 5, Name: "Bob", Surname: "Ray"}, nil)

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/register-user/",
			map[string]any{"name": "Bob", "surname": "Ray"}))
		testutil.AssertStatusOK(t, rr)
		testutil.AssertJSONHasKey(t, rr, "age")
	})

	t.Run("missing surname", func(t *testing.T) {
		router, _ := newPicnicRouter(t)
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/register-user/",
			map[string]any{"name": "Bob"}))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_error")
	})
}

func TestHandleListUsers(t *testing.T) {
	tests := []struct {
		query string
		order models.UserOrder
	}{
		{"", models.UserOrderNatural},
		{"?q=min", models.UserOrderAgeAsc},
		{"?q=max", models.UserOrderAgeDesc},
		{"?q=sideways", models.UserOrderNatural},
	}
	for _, tt := range tests {
		t.Run("query "+tt.query, func(t *testing.T) {
			router, svc := newPicnicRouter(t)
			svc.EXPECT().ListUsers(gomock.Any(), tt.order).
				Return([]*models.User{{ID: 1, Name: "Ann", Surname: "Lee"}}, nil)

			rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/users-list/"+tt.query))
			testutil.AssertStatusOK(t, rr)
			resp := testutil.UnmarshalResponse[[]handler.UserResponse](t, rr)
			assert.Len(t, *resp, 1)
		})
	}
}

func TestHandleSchedulePicnic(t *testing.T) {
	at := time.Date(2030, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("naive timestamps are read as UTC", func(t *testing.T) {
		router, svc := newPicnicRouter(t)
		svc.EXPECT().SchedulePicnic(gomock.Any(), int64(1), at).
			Return(&models.PicnicDetails{ID: 3, CityID: 1, CityName: "Kazan", Time: at, Users: []models.User{}}, nil)

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/picnic-add/",
			map[string]any{"city_id": 1, "datetime": "2030-05-01T12:00:00"}))
		testutil.AssertStatusOK(t, rr)
		resp := testutil.UnmarshalResponse[handler.ScheduledPicnicResponse](t, rr)
		assert.Equal(t, int64(3), resp.ID)
		assert.Equal(t, "Kazan", resp.City)
		assert.True(t, resp.Time.Equal(at))
	})

	t.Run("offsets are converted to UTC", func(t *testing.T) {
		router, svc := newPicnicRouter(t)
		svc.EXPECT().SchedulePicnic(gomock.Any(), int64(1), at).
			Return(&models.PicnicDetails{ID: 3, CityID: 1, CityName: "Kazan", Time: at}, nil)

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/picnic-add/",
			map[string]any{"city_id": 1, "datetime": "2030-05-01T15:00:00+03:00"}))
		testutil.AssertStatusOK(t, rr)
	})

	t.Run("non-positive city ids are not found", func(t *testing.T) {
		for _, cityID := range []int64{0, -5} {
			router, svc := newPicnicRouter(t)
			svc.EXPECT().SchedulePicnic(gomock.Any(), cityID, at).
				Return(nil, dErrors.New(dErrors.CodeNotFound, "city not found"))

			rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/picnic-add/",
				map[string]any{"city_id": cityID, "datetime": "2030-05-01T12:00:00Z"}))
			testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
		}
	})

	t.Run("missing datetime is invalid", func(t *testing.T) {
		router, _ := newPicnicRouter(t)
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/picnic-add/",
			map[string]any{"city_id": 1}))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_error")
	})

	t.Run("unparseable datetime", func(t *testing.T) {
		router, _ := newPicnicRouter(t)
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/picnic-add/",
			map[string]any{"city_id": 1, "datetime": "next tuesday"}))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_error")
	})

	t.Run("unknown city", func(t *testing.T) {
		router, svc := newPicnicRouter(t)
		svc.EXPECT().SchedulePicnic(gomock.Any(), int64(8), at).
			Return(nil, dErrors.New(dErrors.CodeNotFound, "city not found"))

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/picnic-add/",
			map[string]any{"city_id": 8, "datetime": "2030-05-01T12:00:00Z"}))
		testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
	})
}

func TestHandleListPicnics(t *testing.T) {
	at := time.Date(2030, 5, 1, 12, 0, 0, 0, time.UTC)
	details := []models.PicnicDetails{{
		ID: 1, CityID: 1, CityName: "Kazan", Time: at,
		Users: []models.User{{ID: 2, Name: "Ann", Surname: "Lee"}},
	}}

	t.Run("defaults to including past picnics", func(t *testing.T) {
		router, svc := newPicnicRouter(t)
		svc.EXPECT().ListPicnics(gomock.Any(), (*time.Time)(nil), true).Return(details, nil)

		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/all-picnics/"))
		testutil.AssertStatusOK(t, rr)
		resp := testutil.UnmarshalResponse[[]handler.PicnicResponse](t, rr)
		require.Len(t, *resp, 1)
		assert.Equal(t, "Kazan", (*resp)[0].City)
		require.Len(t, (*resp)[0].Users, 1)
		assert.Equal(t, "Ann", (*resp)[0].Users[0].Name)
	})

	t.Run("passes the datetime and past filters", func(t *testing.T) {
		router, svc := newPicnicRouter(t)
		svc.EXPECT().ListPicnics(gomock.Any(), gomock.Any(), false).
			DoAndReturn(func(_ any, got *time.Time, _ bool) ([]models.PicnicDetails, error) {
				require.NotNil(t, got)
				assert.True(t, got.Equal(at))
				return nil, nil
			})

		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/all-picnics/?datetime=2030-05-01T12:00:00&past=false"))
		testutil.AssertStatusOK(t, rr)
		assert.JSONEq(t, "[]", rr.Body.String())
	})

	t.Run("offsets survive query decoding", func(t *testing.T) {
		for _, raw := range []string{"2030-05-01T15:00:00%2B03:00", "2030-05-01T15:00:00+03:00"} {
			router, svc := newPicnicRouter(t)
			svc.EXPECT().ListPicnics(gomock.Any(), gomock.Any(), true).
				DoAndReturn(func(_ any, got *time.Time, _ bool) ([]models.PicnicDetails, error) {
					require.NotNil(t, got)
					assert.True(t, got.Equal(at), "got %s", got)
					return nil, nil
				})

			rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/all-picnics/?datetime="+raw))
			testutil.AssertStatusOK(t, rr)
		}
	})

	t.Run("attendees are never null", func(t *testing.T) {
		router, svc := newPicnicRouter(t)
		svc.EXPECT().ListPicnics(gomock.Any(), gomock.Any(), true).
			Return([]models.PicnicDetails{{ID: 1, CityID: 1, CityName: "Kazan", Time: at}}, nil)

		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/all-picnics/"))
		assert.Contains(t, rr.Body.String(), `"users":[]`)
	})

	t.Run("invalid past flag", func(t *testing.T) {
		router, _ := newPicnicRouter(t)
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/all-picnics/?past=maybe"))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_error")
	})

	t.Run("invalid datetime", func(t *testing.T) {
		router, _ := newPicnicRouter(t)
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/all-picnics/?datetime=soon"))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_error")
	})
}

func TestHandleRegisterForPicnic(t *testing.T) {
	t.Run("returns the confirmation", func(t *testing.T) {
		router, svc := newPicnicRouter(t)
		svc.EXPECT().RegisterForPicnic(gomock.Any(), int64(2), int64(1)).
			Return(&models.RegistrationConfirmation{
				RegistrationID: 10, UserID: 2, UserName: "Ann", PicnicID: 1,
				CityName: "Kazan", Weather: models.WeatherUnavailable,
			}, nil)

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/picnic-register/",
			map[string]int64{"user_id": 2, "picnic_id": 1}))
		testutil.AssertStatusOK(t, rr)
		resp := testutil.UnmarshalResponse[handler.RegistrationResponse](t, rr)
		assert.Equal(t, int64(10), resp.RegistrationID)
		assert.Equal(t, "Ann", resp.UserName)
		assert.Equal(t, "Kazan", resp.CityName)
		assert.False(t, resp.WeatherAvailable)
	})

	t.Run("ids that cannot exist are not found", func(t *testing.T) {
		tests := []struct {
			name     string
			body     map[string]int64
			userID   int64
			picnicID int64
		}{
			{"missing picnic id", map[string]int64{"user_id": 2}, 2, 0},
			{"zero user id", map[string]int64{"user_id": 0, "picnic_id": 1}, 0, 1},
			{"negative picnic id", map[string]int64{"user_id": 2, "picnic_id": -1}, 2, -1},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				router, svc := newPicnicRouter(t)
				svc.EXPECT().RegisterForPicnic(gomock.Any(), tt.userID, tt.picnicID).
					Return(nil, dErrors.New(dErrors.CodeNotFound, "not found"))

				rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/picnic-register/", tt.body))
				testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
			})
		}
	})

	t.Run("internal errors hide their description", func(t *testing.T) {
		router, svc := newPicnicRouter(t)
		svc.EXPECT().RegisterForPicnic(gomock.Any(), int64(2), int64(1)).
			Return(nil, dErrors.New(dErrors.CodeInternal, "db exploded"))

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/picnic-register/",
			map[string]int64{"user_id": 2, "picnic_id": 1}))
		testutil.AssertStatus(t, rr, http.StatusInternalServerError)
		assert.NotContains(t, rr.Body.String(), "db exploded")
	})
}

func TestFailuresAreLoggedWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	router, svc := newPicnicRouterWithLogger(t, slog.New(slog.NewJSONHandler(&buf, nil)))
	svc.EXPECT().ListUsers(gomock.Any(), models.UserOrderNatural).
		Return(nil, dErrors.New(dErrors.CodeInternal, "store down"))

	req := testutil.WithRequestID(testutil.NewRequest(t, http.MethodGet, "/users-list/"), "req-42")
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatusAndError(t, rr, http.StatusInternalServerError, "internal_error")
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	assert.Contains(t, buf.String(), "list users failed")
}
