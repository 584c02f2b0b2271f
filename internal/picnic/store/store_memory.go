package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"picnic/internal/picnic/models"
	"picnic/pkg/platform/sentinel"
)

// InMemory keeps all four tables behind a single lock so that uniqueness and
// foreign-key checks are atomic with the insert, as they are in PostgreSQL.
// Rows are stored by value; callers always receive copies.
type InMemory struct {
	mu sync.RWMutex

	cities        []models.City
	cityByName    map[string]int
	users         []models.User
	picnics       []models.Picnic
	registrations []models.Registration
}

// NewInMemory creates an empty in-memory store.
func NewInMemory() *InMemory {
	return &InMemory{cityByName: make(map[string]int)}
}

// CreateCity inserts a city and assigns its ID.
// Returns sentinel.ErrAlreadyUsed if a city with the same name exists.
func (s *InMemory) CreateCity(_ context.Context, city *models.City) error {
	if city == nil {
		return fmt.Errorf("city is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.cityByName[city.Name]; taken {
		return fmt.Errorf("city %q: %w", city.Name, sentinel.ErrAlreadyUsed)
	}
	city.ID = int64(len(s.cities) + 1)
	s.cities = append(s.cities, *city)
	s.cityByName[city.Name] = len(s.cities) - 1
	return nil
}

func (s *InMemory) FindCityByID(_ context.Context, id int64) (*models.City, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	city, ok := s.cityLocked(id)
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &city, nil
}

func (s *InMemory) FindCityByName(_ context.Context, name string) (*models.City, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.cityByName[name]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	city := s.cities[idx]
	return &city, nil
}

// ListCities returns cities in insertion order, optionally limited to an exact name.
func (s *InMemory) ListCities(_ context.Context, name string) ([]*models.City, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*models.City, 0, len(s.cities))
	for _, c := range s.cities {
		if name != "" && c.Name != name {
			continue
		}
		city := c
		result = append(result, &city)
	}
	return result, nil
}

// FindCitiesByIDs resolves a batch of city IDs. Unknown IDs are omitted.
func (s *InMemory) FindCitiesByIDs(_ context.Context, ids []int64) (map[int64]*models.City, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make(map[int64]*models.City, len(ids))
	for _, id := range ids {
		if city, ok := s.cityLocked(id); ok {
			result[id] = &city
		}
	}
	return result, nil
}

func (s *InMemory) CreateUser(_ context.Context, user *models.User) error {
	if user == nil {
		return fmt.Errorf("user is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = int64(len(s.users) + 1)
	s.users = append(s.users, copyUser(*user))
	return nil
}

func (s *InMemory) FindUserByID(_ context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.userLocked(id)
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &user, nil
}

// ListUsers returns users in the requested order. Users without an age sort
// last in both directions; ties keep ID order.
func (s *InMemory) ListUsers(_ context.Context, order models.UserOrder) ([]*models.User, error) {
	s.mu.RLock()
	result := make([]*models.User, 0, len(s.users))
	for _, u := range s.users {
		user := copyUser(u)
		result = append(result, &user)
	}
	s.mu.RUnlock()

	if order == models.UserOrderNatural {
		return result, nil
	}
	slices.SortStableFunc(result, func(a, b *models.User) int {
		switch {
		case a.Age == nil && b.Age == nil:
			return 0
		case a.Age == nil:
			return 1
		case b.Age == nil:
			return -1
		case order == models.UserOrderAgeDesc:
			return *b.Age - *a.Age
		default:
			return *a.Age - *b.Age
		}
	})
	return result, nil
}

// CreatePicnic inserts a picnic. Returns sentinel.ErrNotFound if the city does not exist.
func (s *InMemory) CreatePicnic(_ context.Context, picnic *models.Picnic) error {
	if picnic == nil {
		return fmt.Errorf("picnic is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cityLocked(picnic.CityID); !ok {
		return fmt.Errorf("picnic city %d: %w", picnic.CityID, sentinel.ErrNotFound)
	}
	picnic.ID = int64(len(s.picnics) + 1)
	s.picnics = append(s.picnics, *picnic)
	return nil
}

func (s *InMemory) FindPicnicByID(_ context.Context, id int64) (*models.Picnic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	picnic, ok := s.picnicLocked(id)
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &picnic, nil
}

func (s *InMemory) ListPicnics(_ context.Context, filter models.PicnicFilter) ([]*models.Picnic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*models.Picnic, 0, len(s.picnics))
	for _, p := range s.picnics {
		picnic := p
		if filter.Matches(&picnic) {
			result = append(result, &picnic)
		}
	}
	return result, nil
}

// CreateRegistration inserts a registration.
// Returns sentinel.ErrNotFound if the user or the picnic does not exist.
func (s *InMemory) CreateRegistration(_ context.Context, reg *models.Registration) error {
	if reg == nil {
		return fmt.Errorf("registration is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.userLocked(reg.UserID); !ok {
		return fmt.Errorf("registration user %d: %w", reg.UserID, sentinel.ErrNotFound)
	}
	if _, ok := s.picnicLocked(reg.PicnicID); !ok {
		return fmt.Errorf("registration picnic %d: %w", reg.PicnicID, sentinel.ErrNotFound)
	}
	reg.ID = int64(len(s.registrations) + 1)
	s.registrations = append(s.registrations, *reg)
	return nil
}

// ListAttendees returns the registered users of each picnic in registration order.
// Picnics without registrations are absent from the map.
func (s *InMemory) ListAttendees(_ context.Context, picnicIDs []int64) (map[int64][]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wanted := make(map[int64]struct{}, len(picnicIDs))
	for _, id := range picnicIDs {
		wanted[id] = struct{}{}
	}
	result := make(map[int64][]models.User)
	for _, reg := range s.registrations {
		if _, ok := wanted[reg.PicnicID]; !ok {
			continue
		}
		if user, ok := s.userLocked(reg.UserID); ok {
			result[reg.PicnicID] = append(result[reg.PicnicID], user)
		}
	}
	return result, nil
}

// IDs are assigned sequentially from 1 and rows are never deleted, so the
// row for id lives at index id-1.

func (s *InMemory) cityLocked(id int64) (models.City, bool) {
	if id <= 0 || id > int64(len(s.cities)) {
		return models.City{}, false
	}
	return s.cities[id-1], true
}

func (s *InMemory) userLocked(id int64) (models.User, bool) {
	if id <= 0 || id > int64(len(s.users)) {
		return models.User{}, false
	}
	return copyUser(s.users[id-1]), true
}

func (s *InMemory) picnicLocked(id int64) (models.Picnic, bool) {
	if id <= 0 || id > int64(len(s.picnics)) {
		return models.Picnic{}, false
	}
	return s.picnics[id-1], true
}

func copyUser(u models.User) models.User {
	if u.Age != nil {
		age := *u.Age
		u.Age = &age
	}
	return u
}
