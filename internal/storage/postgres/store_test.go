package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/devcamper-be/internal/models"
	"github.com/hongminglow/devcamper-be/internal/storage"
)

func newMockStore(t *testing.T) (*Store, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return newWithDB(mock), mock
}

var userCols = []string{"id", "name", "email", "role", "created_at"}

func TestCreateUser_LowercasesEmail(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Ann", "ann@x.com", "user", "hash").
		WillReturnRows(pgxmock.NewRows(userCols).AddRow(int64(1), "Ann", "ann@x.com", "user", now))

	got, err := s.CreateUser(context.Background(), models.User{Name: "Ann", Email: "Ann@X.com", Role: models.RoleUser, PasswordHash: "hash"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, models.RoleUser, got.Role)
	assert.Empty(t, got.PasswordHash)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Ann", "ann@x.com", "user", "hash").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_unique_idx"})

	_, err := s.CreateUser(context.Background(), models.User{Name: "Ann", Email: "ann@x.com", Role: models.RoleUser, PasswordHash: "hash"})
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByEmail_IncludesHash(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, name, email, role, created_at, password_hash FROM users WHERE email`).
		WithArgs("ann@x.com").
		WillReturnRows(pgxmock.NewRows(append(userCols, "password_hash")).
			AddRow(int64(3), "Ann", "ann@x.com", "admin", now, "$2a$10$hash"))

	got, err := s.FindUserByEmail(context.Background(), "ANN@x.com")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$hash", got.PasswordHash)
	assert.True(t, got.IsAdmin())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByID_NotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`FROM users WHERE id`).
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)

	_, err := s.FindUserByID(context.Background(), 9)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUser_NoRows(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(`DELETE FROM users`).
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.ErrorIs(t, s.DeleteUser(context.Background(), 5), storage.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

var bootcampCols = []string{"id", "name", "slug", "description", "website", "phone", "email", "address", "careers",
	"housing", "job_assistance", "job_guarantee", "accept_gi", "user_id", "owner_role", "created_at"}

func TestCreateBootcamp_SecondForUserConflicts(t *testing.T) {
	s, mock := newMockStore(t)
	b := models.Bootcamp{
		Name: "Devworks", Slug: "devworks", Description: "d", Address: "Boston",
		Careers: []string{"Web Development"}, UserID: 2, OwnerRole: models.RoleUser,
	}

	mock.ExpectQuery(`INSERT INTO bootcamps`).
		WithArgs("Devworks", "devworks", "d", "", "", "", "Boston", []string{"Web Development"},
			false, false, false, false, int64(2), "user").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "bootcamps_one_per_user_idx"})

	_, err := s.CreateBootcamp(context.Background(), b)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
	assert.Contains(t, err.Error(), "bootcamps_one_per_user_idx")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListBootcamps(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Now()

	mock.ExpectQuery(`FROM bootcamps ORDER BY id`).
		WillReturnRows(pgxmock.NewRows(bootcampCols).
			AddRow(int64(1), "Devworks", "devworks", "d", "", "", "", "Boston", []string{"UI/UX"},
				true, false, false, true, int64(2), "user", now))

	got, err := s.ListBootcamps(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"UI/UX"}, got[0].Careers)
	assert.Equal(t, models.RoleUser, got[0].OwnerRole)
	assert.True(t, got[0].AcceptGI)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountBootcampsByUser(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bootcamps WHERE user_id`).
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))

	n, err := s.CountBootcampsByUser(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCourse_MissingBootcamp(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`INSERT INTO courses`).
		WithArgs("Go", "d", 8, 1000.0, "beginner", false, int64(77), int64(2)).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "courses_bootcamp_id_fkey"})

	_, err := s.CreateCourse(context.Background(), models.Course{
		Title: "Go", Description: "d", Weeks: 8, Tuition: 1000, MinimumSkill: "beginner", BootcampID: 77, UserID: 2,
	})
	assert.ErrorIs(t, err, storage.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindCourse_PopulatesBootcamp(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Now()

	mock.ExpectQuery(`JOIN bootcamps b ON b.id = c.bootcamp_id WHERE c.id`).
		WithArgs(int64(4)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "description", "weeks", "tuition", "minimum_skill",
			"scholarship_available", "bootcamp_id", "user_id", "created_at", "name", "description"}).
			AddRow(int64(4), "Go", "d", 8, 1000.0, "beginner", true, int64(1), int64(2), now, "Devworks", "camp"))

	got, err := s.FindCourse(context.Background(), 4)
	require.NoError(t, err)
	require.NotNil(t, got.Bootcamp)
	assert.Equal(t, models.BootcampSummary{ID: 1, Name: "Devworks", Description: "camp"}, *got.Bootcamp)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListCourses_QueryError(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`ORDER BY c.id`).WillReturnError(errors.New("db down"))

	_, err := s.ListCourses(context.Background())
	assert.ErrorContains(t, err, "list courses: db down")
	require.NoError(t, mock.ExpectationsWereMet())
}
