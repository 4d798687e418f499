package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hongminglow/devcamper-be/internal/models"
)

const courseColumns = `id, title, description, weeks, tuition, minimum_skill, scholarship_available,
	bootcamp_id, user_id, created_at`

const courseSelect = `
	SELECT c.id, c.title, c.description, c.weeks, c.tuition, c.minimum_skill, c.scholarship_available,
		c.bootcamp_id, c.user_id, c.created_at, b.name, b.description
	FROM courses c
	JOIN bootcamps b ON b.id = c.bootcamp_id`

// CreateCourse inserts a course. A missing bootcamp surfaces as storage.ErrNotFound.
func (s *Store) CreateCourse(ctx context.Context, c models.Course) (models.Course, error) {
	const query = `
		INSERT INTO courses (title, description, weeks, tuition, minimum_skill, scholarship_available, bootcamp_id, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + courseColumns
	row := s.db.QueryRow(ctx, query,
		c.Title, c.Description, c.Weeks, c.Tuition, c.MinimumSkill, c.ScholarshipAvailable, c.BootcampID, c.UserID)
	created, err := scanCourse(row)
	if err != nil {
		return models.Course{}, fmt.Errorf("create course: %w", translate(err))
	}
	return created, nil
}

// FindCourse fetches a course with its bootcamp summary.
func (s *Store) FindCourse(ctx context.Context, id int64) (models.Course, error) {
	c, err := scanPopulatedCourse(s.db.QueryRow(ctx, courseSelect+` WHERE c.id = $1`, id))
	if err != nil {
		return models.Course{}, translate(err)
	}
	return c, nil
}

// ListCourses returns every course with its bootcamp summary.
func (s *Store) ListCourses(ctx context.Context) ([]models.Course, error) {
	return s.listCourses(ctx, courseSelect+` ORDER BY c.id`)
}

// ListCoursesByBootcamp returns the courses attached to one bootcamp.
func (s *Store) ListCoursesByBootcamp(ctx context.Context, bootcampID int64) ([]models.Course, error) {
	return s.listCourses(ctx, courseSelect+` WHERE c.bootcamp_id = $1 ORDER BY c.id`, bootcampID)
}

func (s *Store) listCourses(ctx context.Context, query string, args ...any) ([]models.Course, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	out := make([]models.Course, 0)
	for rows.Next() {
		c, err := scanPopulatedCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("list courses: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return out, nil
}

// UpdateCourse overwrites the editable fields of a course.
func (s *Store) UpdateCourse(ctx context.Context, c models.Course) (models.Course, error) {
	const query = `
		UPDATE courses SET title = $2, description = $3, weeks = $4, tuition = $5,
			minimum_skill = $6, scholarship_available = $7
		WHERE id = $1
		RETURNING ` + courseColumns
	row := s.db.QueryRow(ctx, query,
		c.ID, c.Title, c.Description, c.Weeks, c.Tuition, c.MinimumSkill, c.ScholarshipAvailable)
	updated, err := scanCourse(row)
	if err != nil {
		return models.Course{}, fmt.Errorf("update course %d: %w", c.ID, translate(err))
	}
	return updated, nil
}

// DeleteCourse removes a course.
func (s *Store) DeleteCourse(ctx context.Context, id int64) error {
	return execAffecting(ctx, s.db, `DELETE FROM courses WHERE id = $1`, id)
}

func scanCourse(row pgx.Row) (models.Course, error) {
	var c models.Course
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.Weeks, &c.Tuition, &c.MinimumSkill,
		&c.ScholarshipAvailable, &c.BootcampID, &c.UserID, &c.CreatedAt)
	return c, err
}

func scanPopulatedCourse(row pgx.Row) (models.Course, error) {
	var (
		c       models.Course
		summary models.BootcampSummary
	)
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.Weeks, &c.Tuition, &c.MinimumSkill,
		&c.ScholarshipAvailable, &c.BootcampID, &c.UserID, &c.CreatedAt, &summary.Name, &summary.Description)
	if err != nil {
		return models.Course{}, err
	}
	summary.ID = c.BootcampID
	c.Bootcamp = &summary
	return c, nil
}
