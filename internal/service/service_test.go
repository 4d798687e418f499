package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hongminglow/devcamper-be/internal/auth"
	"github.com/hongminglow/devcamper-be/internal/models"
	"github.com/hongminglow/devcamper-be/internal/models/dto"
	"github.com/hongminglow/devcamper-be/internal/storage/memory"
)

type fixture struct {
	store     *memory.Store
	tokens    *auth.TokenManager
	auth      *AuthService
	bootcamps *BootcampService
	courses   *CourseService
	users     *UserService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.New()
	tokens := auth.NewTokenManager("test-secret", "devcamper-test", time.Hour)
	log := zap.NewNop()
	return &fixture{
		store:     store,
		tokens:    tokens,
		auth:      NewAuthService(store, tokens, true, log),
		bootcamps: NewBootcampService(store, log),
		courses:   NewCourseService(store, store, log),
		users:     NewUserService(store, log),
	}
}

func (f *fixture) register(t *testing.T, email string, role models.Role) models.User {
	t.Helper()
	u, _, err := f.auth.Register(context.Background(), dto.RegisterRequest{
		Name: "Test", Email: email, Password: "secret123", Role: string(role),
	})
	require.NoError(t, err)
	return u
}

func ptr[T any](v T) *T { return &v }

func bootcampReq(name string) dto.BootcampRequest {
	return dto.BootcampRequest{
		Name:        ptr(name),
		Description: ptr("Full stack web development"),
		Address:     ptr("233 Bay State Rd Boston MA 02215"),
		Careers:     ptr([]string{models.CareerWebDevelopment, models.CareerUIUX}),
		Website:     ptr("https://devworks.com"),
	}
}

func courseReq(title string) dto.CourseRequest {
	return dto.CourseRequest{
		Title:        ptr(title),
		Description:  ptr("Learn the basics"),
		Weeks:        ptr(8),
		Tuition:      ptr(8000.0),
		MinimumSkill: ptr(models.SkillBeginner),
	}
}
