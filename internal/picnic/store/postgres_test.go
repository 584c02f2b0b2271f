package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"picnic/internal/picnic/models"
	"picnic/pkg/platform/sentinel"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewPostgres(db), mock
}

func TestPostgresCreateCity(t *testing.T) {
	insert := regexp.QuoteMeta(`INSERT INTO city (name) VALUES ($1) RETURNING id`)

	t.Run("assigns returned id", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(insert).WithArgs("Kazan").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

		city := &models.City{Name: "Kazan"}
		require.NoError(t, s.CreateCity(context.Background(), city))
		assert.Equal(t, int64(7), city.ID)
	})

	t.Run("unique violation becomes ErrAlreadyUsed", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(insert).WithArgs("Kazan").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "city_name_key"})

		err := s.CreateCity(context.Background(), &models.City{Name: "Kazan"})
		assert.ErrorIs(t, err, sentinel.ErrAlreadyUsed)
	})
}

func TestPostgresFindCity(t *testing.T) {
	query := regexp.QuoteMeta(`SELECT id, name FROM city WHERE id = $1`)

	t.Run("found", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(query).WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(1), "Kazan"))

		city, err := s.FindCityByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Kazan", city.Name)
	})

	t.Run("no rows becomes ErrNotFound", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(query).WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		_, err := s.FindCityByID(context.Background(), 2)
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})
}

func TestPostgresCreatePicnicForeignKey(t *testing.T) {
	s, mock := newMockStore(t)
	at := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO picnic (city_id, time) VALUES ($1, $2) RETURNING id`)).
		WithArgs(int64(9), at).
		WillReturnError(&pq.Error{Code: "23503"})

	err := s.CreatePicnic(context.Background(), &models.Picnic{CityID: 9, Time: at})
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestPostgresCreateRegistrationForeignKey(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO picnic_registration`)).
		WithArgs(int64(1), int64(2)).
		WillReturnError(&pq.Error{Code: "23503"})

	err := s.CreateRegistration(context.Background(), &models.Registration{UserID: 1, PicnicID: 2})
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestPostgresListUsersOrdering(t *testing.T) {
	tests := []struct {
		order  models.UserOrder
		clause string
	}{
		{models.UserOrderNatural, `ORDER BY id`},
		{models.UserOrderAgeAsc, `ORDER BY age ASC NULLS LAST, id`},
		{models.UserOrderAgeDesc, `ORDER BY age DESC NULLS LAST, id`},
	}
	for _, tt := range tests {
		t.Run(tt.clause, func(t *testing.T) {
			s, mock := newMockStore(t)
			mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, surname, age FROM "user" ` + tt.clause)).
				WillReturnRows(sqlmock.NewRows([]string{"id", "name", "surname", "age"}).
					AddRow(int64(1), "Ann", "Lee", int64(30)).
					AddRow(int64(2), "Bob", "Ray", nil))

			users, err := s.ListUsers(context.Background(), tt.order)
			require.NoError(t, err)
			require.Len(t, users, 2)
			require.NotNil(t, users[0].Age)
			assert.Equal(t, 30, *users[0].Age)
			assert.Nil(t, users[1].Age)
		})
	}
}

func TestPostgresListPicnicsNormalizesTime(t *testing.T) {
	s, mock := newMockStore(t)
	loc := time.FixedZone("MSK", 3*60*60)
	stored := time.Date(2030, 1, 1, 15, 0, 0, 0, loc)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, city_id, time FROM picnic`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "city_id", "time"}).AddRow(int64(1), int64(3), stored))

	picnics, err := s.ListPicnics(context.Background(), models.PicnicFilter{})
	require.NoError(t, err)
	require.Len(t, picnics, 1)
	assert.Equal(t, time.UTC, picnics[0].Time.Location())
	assert.True(t, picnics[0].Time.Equal(stored))
}

func TestPostgresListAttendees(t *testing.T) {
	t.Run("skips the query for an empty batch", func(t *testing.T) {
		s, _ := newMockStore(t)
		attendees, err := s.ListAttendees(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, attendees)
	})

	t.Run("groups users by picnic", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM picnic_registration r`)).
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"picnic_id", "id", "name", "surname", "age"}).
				AddRow(int64(1), int64(5), "Ann", "Lee", nil).
				AddRow(int64(2), int64(6), "Bob", "Ray", int64(40)).
				AddRow(int64(1), int64(6), "Bob", "Ray", int64(40)))

		attendees, err := s.ListAttendees(context.Background(), []int64{1, 2})
		require.NoError(t, err)
		require.Len(t, attendees[1], 2)
		assert.Equal(t, "Ann", attendees[1][0].Name)
		assert.Equal(t, "Bob", attendees[1][1].Name)
		require.Len(t, attendees[2], 1)
	})
}
