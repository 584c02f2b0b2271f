package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"picnic/internal/picnic/models"
	"picnic/pkg/platform/sentinel"
)

// PostgresStore persists cities, users, picnics and registrations in PostgreSQL.
// Name uniqueness and foreign keys are enforced by the schema; constraint
// violations are translated to sentinel errors.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed entity store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) CreateCity(ctx context.Context, city *models.City) error {
	if city == nil {
		return fmt.Errorf("city is required")
	}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO city (name) VALUES ($1) RETURNING id`,
		city.Name,
	).Scan(&city.ID)
	if err != nil {
		return fmt.Errorf("create city: %w", translate(err))
	}
	return nil
}

func (s *PostgresStore) FindCityByID(ctx context.Context, id int64) (*models.City, error) {
	var city models.City
	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM city WHERE id = $1`, id).
		Scan(&city.ID, &city.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find city by id: %w", err)
	}
	return &city, nil
}

func (s *PostgresStore) FindCityByName(ctx context.Context, name string) (*models.City, error) {
	var city models.City
	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM city WHERE name = $1`, name).
		Scan(&city.ID, &city.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find city by name: %w", err)
	}
	return &city, nil
}

func (s *PostgresStore) ListCities(ctx context.Context, name string) ([]*models.City, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name FROM city WHERE ($1 = '' OR name = $1) ORDER BY id`,
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	defer rows.Close()

	cities := make([]*models.City, 0)
	for rows.Next() {
		var city models.City
		if err := rows.Scan(&city.ID, &city.Name); err != nil {
			return nil, fmt.Errorf("scan city: %w", err)
		}
		cities = append(cities, &city)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	return cities, nil
}

func (s *PostgresStore) FindCitiesByIDs(ctx context.Context, ids []int64) (map[int64]*models.City, error) {
	result := make(map[int64]*models.City, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name FROM city WHERE id = ANY($1)`,
		pq.Array(ids),
	)
	if err != nil {
		return nil, fmt.Errorf("find cities by ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var city models.City
		if err := rows.Scan(&city.ID, &city.Name); err != nil {
			return nil, fmt.Errorf("scan city: %w", err)
		}
		result[city.ID] = &city
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find cities by ids: %w", err)
	}
	return result, nil
}

func (s *PostgresStore) CreateUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return fmt.Errorf("user is required")
	}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO "user" (name, surname, age) VALUES ($1, $2, $3) RETURNING id`,
		user.Name, user.Surname, nullInt(user.Age),
	).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("create user: %w", translate(err))
	}
	return nil
}

func (s *PostgresStore) FindUserByID(ctx context.Context, id int64) (*models.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, name, surname, age FROM "user" WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return user, nil
}

var userOrderClauses = map[models.UserOrder]string{
	models.UserOrderNatural: `ORDER BY id`,
	models.UserOrderAgeAsc:  `ORDER BY age ASC NULLS LAST, id`,
	models.UserOrderAgeDesc: `ORDER BY age DESC NULLS LAST, id`,
}

func (s *PostgresStore) ListUsers(ctx context.Context, order models.UserOrder) ([]*models.User, error) {
	clause, ok := userOrderClauses[order]
	if !ok {
		clause = userOrderClauses[models.UserOrderNatural]
	}
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, surname, age FROM "user" `+clause)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *PostgresStore) CreatePicnic(ctx context.Context, picnic *models.Picnic) error {
	if picnic == nil {
		return fmt.Errorf("picnic is required")
	}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO picnic (city_id, time) VALUES ($1, $2) RETURNING id`,
		picnic.CityID, picnic.Time,
	).Scan(&picnic.ID)
	if err != nil {
		return fmt.Errorf("create picnic: %w", translate(err))
	}
	return nil
}

func (s *PostgresStore) FindPicnicByID(ctx context.Context, id int64) (*models.Picnic, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, city_id, time FROM picnic WHERE id = $1`, id)
	picnic, err := scanPicnic(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find picnic by id: %w", err)
	}
	return picnic, nil
}

func (s *PostgresStore) ListPicnics(ctx context.Context, filter models.PicnicFilter) ([]*models.Picnic, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, city_id, time FROM picnic
		WHERE ($1::timestamptz IS NULL OR time = $1)
		  AND ($2::timestamptz IS NULL OR time >= $2)
		ORDER BY id`,
		nullTime(filter.At), nullTime(filter.From),
	)
	if err != nil {
		return nil, fmt.Errorf("list picnics: %w", err)
	}
	defer rows.Close()

	picnics := make([]*models.Picnic, 0)
	for rows.Next() {
		picnic, err := scanPicnic(rows)
		if err != nil {
			return nil, fmt.Errorf("scan picnic: %w", err)
		}
		picnics = append(picnics, picnic)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list picnics: %w", err)
	}
	return picnics, nil
}

func (s *PostgresStore) CreateRegistration(ctx context.Context, reg *models.Registration) error {
	if reg == nil {
		return fmt.Errorf("registration is required")
	}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO picnic_registration (user_id, picnic_id) VALUES ($1, $2) RETURNING id`,
		reg.UserID, reg.PicnicID,
	).Scan(&reg.ID)
	if err != nil {
		return fmt.Errorf("create registration: %w", translate(err))
	}
	return nil
}

func (s *PostgresStore) ListAttendees(ctx context.Context, picnicIDs []int64) (map[int64][]models.User, error) {
	result := make(map[int64][]models.User)
	if len(picnicIDs) == 0 {
		return result, nil
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.picnic_id, u.id, u.name, u.surname, u.age
		FROM picnic_registration r
		JOIN "user" u ON u.id = r.user_id
		WHERE r.picnic_id = ANY($1)
		ORDER BY r.id`,
		pq.Array(picnicIDs),
	)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			picnicID int64
			user     models.User
			age      sql.NullInt64
		)
		if err := rows.Scan(&picnicID, &user.ID, &user.Name, &user.Surname, &age); err != nil {
			return nil, fmt.Errorf("scan attendee: %w", err)
		}
		user.Age = intPtr(age)
		result[picnicID] = append(result[picnicID], user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*models.User, error) {
	var (
		user models.User
		age  sql.NullInt64
	)
	if err := row.Scan(&user.ID, &user.Name, &user.Surname, &age); err != nil {
		return nil, err
	}
	user.Age = intPtr(age)
	return &user, nil
}

func scanPicnic(row scanner) (*models.Picnic, error) {
	var picnic models.Picnic
	if err := row.Scan(&picnic.ID, &picnic.CityID, &picnic.Time); err != nil {
		return nil, err
	}
	picnic.Time = models.NormalizeTime(picnic.Time)
	return &picnic, nil
}

// translate maps constraint violations onto sentinel errors.
func translate(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code.Name() {
	case "unique_violation":
		return sentinel.ErrAlreadyUsed
	case "foreign_key_violation":
		return sentinel.ErrNotFound
	default:
		return err
	}
}

func nullInt(value *int) sql.NullInt64 {
	if value == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*value), Valid: true}
}

func intPtr(value sql.NullInt64) *int {
	if !value.Valid {
		return nil
	}
	v := int(value.Int64)
	return &v
}

func nullTime(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *value, Valid: true}
}
