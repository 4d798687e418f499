package storage

import (
	"context"
	"errors"

	"github.com/hongminglow/devcamper-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures persistence operations on users.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	// FindUserByEmail returns the user including its password hash.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// BootcampStore captures persistence operations on bootcamps.
type BootcampStore interface {
	CreateBootcamp(ctx context.Context, b models.Bootcamp) (models.Bootcamp, error)
	FindBootcamp(ctx context.Context, id int64) (models.Bootcamp, error)
	ListBootcamps(ctx context.Context) ([]models.Bootcamp, error)
	CountBootcampsByUser(ctx context.Context, userID int64) (int, error)
	UpdateBootcamp(ctx context.Context, b models.Bootcamp) (models.Bootcamp, error)
	// DeleteBootcamp removes the bootcamp and every course attached to it.
	DeleteBootcamp(ctx context.Context, id int64) error
}

// CourseStore captures persistence operations on courses.
type CourseStore interface {
	CreateCourse(ctx context.Context, c models.Course) (models.Course, error)
	FindCourse(ctx context.Context, id int64) (models.Course, error)
	// ListCourses returns every course with its bootcamp summary populated.
	ListCourses(ctx context.Context) ([]models.Course, error)
	ListCoursesByBootcamp(ctx context.Context, bootcampID int64) ([]models.Course, error)
	UpdateCourse(ctx context.Context, c models.Course) (models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
}

// Store is the full persistence surface used by the server.
type Store interface {
	UserStore
	BootcampStore
	CourseStore
	Close()
}
