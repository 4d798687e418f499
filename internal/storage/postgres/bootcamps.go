package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hongminglow/devcamper-be/internal/models"
)

const bootcampColumns = `id, name, slug, description, website, phone, email, address, careers,
	housing, job_assistance, job_guarantee, accept_gi, user_id, owner_role, created_at`

// CreateBootcamp inserts a bootcamp. The partial unique index on user_id rejects a
// second bootcamp for a non-admin owner.
func (s *Store) CreateBootcamp(ctx context.Context, b models.Bootcamp) (models.Bootcamp, error) {
	const query = `
		INSERT INTO bootcamps (name, slug, description, website, phone, email, address, careers,
			housing, job_assistance, job_guarantee, accept_gi, user_id, owner_role)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + bootcampColumns
	row := s.db.QueryRow(ctx, query,
		b.Name, b.Slug, b.Description, b.Website, b.Phone, b.Email, b.Address, b.Careers,
		b.Housing, b.JobAssistance, b.JobGuarantee, b.AcceptGI, b.UserID, string(b.OwnerRole))
	created, err := scanBootcamp(row)
	if err != nil {
		return models.Bootcamp{}, fmt.Errorf("create bootcamp: %w", translate(err))
	}
	return created, nil
}

// FindBootcamp fetches a bootcamp by id.
func (s *Store) FindBootcamp(ctx context.Context, id int64) (models.Bootcamp, error) {
	const query = `SELECT ` + bootcampColumns + ` FROM bootcamps WHERE id = $1`
	b, err := scanBootcamp(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return models.Bootcamp{}, translate(err)
	}
	return b, nil
}

// ListBootcamps returns every bootcamp ordered by id.
func (s *Store) ListBootcamps(ctx context.Context) ([]models.Bootcamp, error) {
	const query = `SELECT ` + bootcampColumns + ` FROM bootcamps ORDER BY id`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list bootcamps: %w", err)
	}
	defer rows.Close()

	out := make([]models.Bootcamp, 0)
	for rows.Next() {
		b, err := scanBootcamp(rows)
		if err != nil {
			return nil, fmt.Errorf("list bootcamps: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bootcamps: %w", err)
	}
	return out, nil
}

// CountBootcampsByUser returns how many bootcamps the user owns.
func (s *Store) CountBootcampsByUser(ctx context.Context, userID int64) (int, error) {
	var n int
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM bootcamps WHERE user_id = $1`, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count bootcamps: %w", err)
	}
	return n, nil
}

// UpdateBootcamp overwrites the editable fields of a bootcamp. Ownership is never changed.
func (s *Store) UpdateBootcamp(ctx context.Context, b models.Bootcamp) (models.Bootcamp, error) {
	const query = `
		UPDATE bootcamps SET name = $2, slug = $3, description = $4, website = $5, phone = $6,
			email = $7, address = $8, careers = $9, housing = $10, job_assistance = $11,
			job_guarantee = $12, accept_gi = $13
		WHERE id = $1
		RETURNING ` + bootcampColumns
	row := s.db.QueryRow(ctx, query,
		b.ID, b.Name, b.Slug, b.Description, b.Website, b.Phone, b.Email, b.Address, b.Careers,
		b.Housing, b.JobAssistance, b.JobGuarantee, b.AcceptGI)
	updated, err := scanBootcamp(row)
	if err != nil {
		return models.Bootcamp{}, fmt.Errorf("update bootcamp %d: %w", b.ID, translate(err))
	}
	return updated, nil
}

// DeleteBootcamp removes a bootcamp; its courses cascade.
func (s *Store) DeleteBootcamp(ctx context.Context, id int64) error {
	return execAffecting(ctx, s.db, `DELETE FROM bootcamps WHERE id = $1`, id)
}

func scanBootcamp(row pgx.Row) (models.Bootcamp, error) {
	var (
		b    models.Bootcamp
		role string
	)
	err := row.Scan(&b.ID, &b.Name, &b.Slug, &b.Description, &b.Website, &b.Phone, &b.Email, &b.Address,
		&b.Careers, &b.Housing, &b.JobAssistance, &b.JobGuarantee, &b.AcceptGI, &b.UserID, &role, &b.CreatedAt)
	if err != nil {
		return models.Bootcamp{}, err
	}
	b.OwnerRole = models.Role(role)
	return b, nil
}
