package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/hongminglow/devcamper-be/internal/apperr"
	"github.com/hongminglow/devcamper-be/internal/auth"
	"github.com/hongminglow/devcamper-be/internal/models"
	"github.com/hongminglow/devcamper-be/internal/models/dto"
	"github.com/hongminglow/devcamper-be/internal/storage"
)

// CourseService implements course CRUD nested under bootcamps.
type CourseService struct {
	courses   storage.CourseStore
	bootcamps storage.BootcampStore
	validate  *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs the service.
func NewCourseService(courses storage.CourseStore, bootcamps storage.BootcampStore, logger *zap.Logger) *CourseService {
	return &CourseService{courses: courses, bootcamps: bootcamps, validate: newValidator(), logger: logger}
}

func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	out, err := s.courses.ListCourses(ctx)
	if err != nil {
		return nil, apperr.Internal("list courses", err)
	}
	return out, nil
}

// ListByBootcamp returns the courses of one bootcamp; an unknown bootcamp yields an empty list.
func (s *CourseService) ListByBootcamp(ctx context.Context, bootcampID int64) ([]models.Course, error) {
	out, err := s.courses.ListCoursesByBootcamp(ctx, bootcampID)
	if err != nil {
		return nil, apperr.Internal("list courses", err)
	}
	return out, nil
}

func (s *CourseService) Get(ctx context.Context, id int64) (models.Course, error) {
	c, err := s.courses.FindCourse(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Course{}, apperr.NotFound("No course with the id of %d", id)
		}
		return models.Course{}, apperr.Internal("find course", err)
	}
	return c, nil
}

// Add attaches a course to a bootcamp the actor owns (or any bootcamp, for admins).
func (s *CourseService) Add(ctx context.Context, actor models.User, bootcampID int64, req dto.CourseRequest) (models.Course, error) {
	b, err := s.bootcamps.FindBootcamp(ctx, bootcampID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Course{}, apperr.NotFound("No bootcamp with the id of %d", bootcampID)
		}
		return models.Course{}, apperr.Internal("find bootcamp", err)
	}
	if err := auth.RequireOwner(actor, b, "add a course to", "bootcamp", bootcampID); err != nil {
		return models.Course{}, err
	}

	c := models.Course{BootcampID: bootcampID, UserID: actor.ID}
	applyCourse(&c, req)
	if err := check(s.validate, c); err != nil {
		return models.Course{}, err
	}

	created, err := s.courses.CreateCourse(ctx, c)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Course{}, apperr.NotFound("No bootcamp with the id of %d", bootcampID)
		}
		return models.Course{}, apperr.Internal("create course", err)
	}
	return created, nil
}

// Update applies a partial update when actor owns the course or is an admin.
func (s *CourseService) Update(ctx context.Context, actor models.User, id int64, req dto.CourseRequest) (models.Course, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return models.Course{}, err
	}
	if err := auth.RequireOwner(actor, c, "update", "course", id); err != nil {
		return models.Course{}, err
	}

	applyCourse(&c, req)
	if err := check(s.validate, c); err != nil {
		return models.Course{}, err
	}

	updated, err := s.courses.UpdateCourse(ctx, c)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Course{}, apperr.NotFound("No course with the id of %d", id)
		}
		return models.Course{}, apperr.Internal("update course", err)
	}
	if updated.Bootcamp == nil {
		updated.Bootcamp = c.Bootcamp
	}
	return updated, nil
}

// Delete removes the course when actor owns it or is an admin.
func (s *CourseService) Delete(ctx context.Context, actor models.User, id int64) error {
	c, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.RequireOwner(actor, c, "delete", "course", id); err != nil {
		return err
	}
	if err := s.courses.DeleteCourse(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NotFound("No course with the id of %d", id)
		}
		return apperr.Internal("delete course", err)
	}
	s.logger.Info("course deleted", zap.Int64("course_id", id), zap.Int64("user_id", actor.ID))
	return nil
}

func applyCourse(c *models.Course, req dto.CourseRequest) {
	setIf(&c.Title, req.Title)
	setIf(&c.Description, req.Description)
	setIf(&c.Weeks, req.Weeks)
	setIf(&c.Tuition, req.Tuition)
	setIf(&c.MinimumSkill, req.MinimumSkill)
	setIf(&c.ScholarshipAvailable, req.ScholarshipAvailable)
}
