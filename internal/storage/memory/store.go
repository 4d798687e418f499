// Package memory provides an in-process implementation of storage.Store.
// It mirrors the uniqueness and cascade rules of the Postgres schema.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hongminglow/devcamper-be/internal/models"
	"github.com/hongminglow/devcamper-be/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store keeps every record in maps guarded by a single mutex.
type Store struct {
	mu        sync.RWMutex
	now       func() time.Time
	nextID    int64
	users     map[int64]models.User
	bootcamps map[int64]models.Bootcamp
	courses   map[int64]models.Course
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		now:       time.Now,
		users:     make(map[int64]models.User),
		bootcamps: make(map[int64]models.Bootcamp),
		courses:   make(map[int64]models.Course),
	}
}

// Close is a no-op.
func (s *Store) Close() {}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *Store) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.Email = strings.ToLower(user.Email)
	for _, u := range s.users {
		if u.Email == user.Email {
			return models.User{}, fmt.Errorf("create user %q: %w", user.Email, storage.ErrAlreadyExists)
		}
	}
	user.ID = s.id()
	user.CreatedAt = s.now().UTC()
	s.users[user.ID] = user
	return user, nil
}

func (s *Store) FindUserByID(_ context.Context, id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	u.PasswordHash = ""
	return u, nil
}

func (s *Store) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	email = strings.ToLower(email)
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

func (s *Store) ListUsers(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		u.PasswordHash = ""
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) DeleteUser(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.users, id)
	for bid, b := range s.bootcamps {
		if b.UserID == id {
			s.deleteBootcampLocked(bid)
		}
	}
	for cid, c := range s.courses {
		if c.UserID == id {
			delete(s.courses, cid)
		}
	}
	return nil
}

func (s *Store) CreateBootcamp(_ context.Context, b models.Bootcamp) (models.Bootcamp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkBootcampLocked(b); err != nil {
		return models.Bootcamp{}, err
	}
	b.ID = s.id()
	b.CreatedAt = s.now().UTC()
	b.Careers = append([]string(nil), b.Careers...)
	s.bootcamps[b.ID] = b
	return b, nil
}

// checkBootcampLocked enforces the unique name and the one-bootcamp-per-user rule.
func (s *Store) checkBootcampLocked(b models.Bootcamp) error {
	for _, other := range s.bootcamps {
		if other.ID == b.ID {
			continue
		}
		if other.Name == b.Name {
			return fmt.Errorf("bootcamp name %q: %w", b.Name, storage.ErrAlreadyExists)
		}
		if b.OwnerRole != models.RoleAdmin && other.OwnerRole != models.RoleAdmin && other.UserID == b.UserID {
			return fmt.Errorf("bootcamp owner %d: %w", b.UserID, storage.ErrAlreadyExists)
		}
	}
	return nil
}

func (s *Store) FindBootcamp(_ context.Context, id int64) (models.Bootcamp, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bootcamps[id]
	if !ok {
		return models.Bootcamp{}, storage.ErrNotFound
	}
	b.Careers = append([]string(nil), b.Careers...)
	return b, nil
}

func (s *Store) ListBootcamps(_ context.Context) ([]models.Bootcamp, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Bootcamp, 0, len(s.bootcamps))
	for _, b := range s.bootcamps {
		b.Careers = append([]string(nil), b.Careers...)
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) CountBootcampsByUser(_ context.Context, userID int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, b := range s.bootcamps {
		if b.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (s *Store) UpdateBootcamp(_ context.Context, b models.Bootcamp) (models.Bootcamp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.bootcamps[b.ID]
	if !ok {
		return models.Bootcamp{}, storage.ErrNotFound
	}
	b.UserID = existing.UserID
	b.OwnerRole = existing.OwnerRole
	b.CreatedAt = existing.CreatedAt
	if err := s.checkBootcampLocked(b); err != nil {
		return models.Bootcamp{}, err
	}
	b.Careers = append([]string(nil), b.Careers...)
	s.bootcamps[b.ID] = b
	return b, nil
}

func (s *Store) DeleteBootcamp(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bootcamps[id]; !ok {
		return storage.ErrNotFound
	}
	s.deleteBootcampLocked(id)
	return nil
}

func (s *Store) deleteBootcampLocked(id int64) {
	delete(s.bootcamps, id)
	for cid, c := range s.courses {
		if c.BootcampID == id {
			delete(s.courses, cid)
		}
	}
}

func (s *Store) CreateCourse(_ context.Context, c models.Course) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bootcamps[c.BootcampID]; !ok {
		return models.Course{}, fmt.Errorf("course bootcamp %d: %w", c.BootcampID, storage.ErrNotFound)
	}
	c.ID = s.id()
	c.CreatedAt = s.now().UTC()
	c.Bootcamp = nil
	s.courses[c.ID] = c
	return c, nil
}

func (s *Store) FindCourse(_ context.Context, id int64) (models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.courses[id]
	if !ok {
		return models.Course{}, storage.ErrNotFound
	}
	return s.populateLocked(c), nil
}

func (s *Store) ListCourses(_ context.Context) ([]models.Course, error) {
	return s.listCourses(func(models.Course) bool { return true }), nil
}

func (s *Store) ListCoursesByBootcamp(_ context.Context, bootcampID int64) ([]models.Course, error) {
	return s.listCourses(func(c models.Course) bool { return c.BootcampID == bootcampID }), nil
}

func (s *Store) listCourses(keep func(models.Course) bool) []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Course, 0)
	for _, c := range s.courses {
		if keep(c) {
			out = append(out, s.populateLocked(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) populateLocked(c models.Course) models.Course {
	if b, ok := s.bootcamps[c.BootcampID]; ok {
		c.Bootcamp = &models.BootcampSummary{ID: b.ID, Name: b.Name, Description: b.Description}
	}
	return c
}

func (s *Store) UpdateCourse(_ context.Context, c models.Course) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.courses[c.ID]
	if !ok {
		return models.Course{}, storage.ErrNotFound
	}
	c.BootcampID = existing.BootcampID
	c.UserID = existing.UserID
	c.CreatedAt = existing.CreatedAt
	c.Bootcamp = nil
	s.courses[c.ID] = c
	return s.populateLocked(c), nil
}

func (s *Store) DeleteCourse(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.courses[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.courses, id)
	return nil
}
