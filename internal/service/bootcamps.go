package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"github.com/hongminglow/devcamper-be/internal/apperr"
	"github.com/hongminglow/devcamper-be/internal/auth"
	"github.com/hongminglow/devcamper-be/internal/models"
	"github.com/hongminglow/devcamper-be/internal/models/dto"
	"github.com/hongminglow/devcamper-be/internal/storage"
)

// BootcampService implements bootcamp CRUD with ownership checks.
type BootcampService struct {
	store    storage.BootcampStore
	validate *validator.Validate
	logger   *zap.Logger
}

// NewBootcampService constructs the service.
func NewBootcampService(store storage.BootcampStore, logger *zap.Logger) *BootcampService {
	return &BootcampService{store: store, validate: newValidator(), logger: logger}
}

func (s *BootcampService) List(ctx context.Context) ([]models.Bootcamp, error) {
	out, err := s.store.ListBootcamps(ctx)
	if err != nil {
		return nil, apperr.Internal("list bootcamps", err)
	}
	return out, nil
}

func (s *BootcampService) Get(ctx context.Context, id int64) (models.Bootcamp, error) {
	b, err := s.store.FindBootcamp(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Bootcamp{}, apperr.NotFound("Bootcamp not found with id of %d", id)
		}
		return models.Bootcamp{}, apperr.Internal("find bootcamp", err)
	}
	return b, nil
}

// Create publishes a bootcamp owned by actor. A standard user may publish only one.
func (s *BootcampService) Create(ctx context.Context, actor models.User, req dto.BootcampRequest) (models.Bootcamp, error) {
	if !actor.IsAdmin() {
		if err := s.ensureNoBootcamp(ctx, actor); err != nil {
			return models.Bootcamp{}, err
		}
	}

	b := models.Bootcamp{UserID: actor.ID, OwnerRole: actor.Role}
	applyBootcamp(&b, req)
	if err := check(s.validate, b); err != nil {
		return models.Bootcamp{}, err
	}

	created, err := s.store.CreateBootcamp(ctx, b)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			// Lost a race with a concurrent create, or the name is taken.
			if !actor.IsAdmin() {
				if err := s.ensureNoBootcamp(ctx, actor); err != nil {
					return models.Bootcamp{}, err
				}
			}
			return models.Bootcamp{}, apperr.Validation("Duplicate field value entered")
		}
		return models.Bootcamp{}, apperr.Internal("create bootcamp", err)
	}
	s.logger.Info("bootcamp created", zap.Int64("bootcamp_id", created.ID), zap.Int64("user_id", actor.ID))
	return created, nil
}

func (s *BootcampService) ensureNoBootcamp(ctx context.Context, actor models.User) error {
	n, err := s.store.CountBootcampsByUser(ctx, actor.ID)
	if err != nil {
		return apperr.Internal("count bootcamps", err)
	}
	if n > 0 {
		return apperr.Validation(fmt.Sprintf("The user with ID %d has already published a bootcamp", actor.ID))
	}
	return nil
}

// Update applies a partial update when actor owns the bootcamp or is an admin.
func (s *BootcampService) Update(ctx context.Context, actor models.User, id int64, req dto.BootcampRequest) (models.Bootcamp, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return models.Bootcamp{}, err
	}
	if err := auth.RequireOwner(actor, b, "update", "bootcamp", id); err != nil {
		return models.Bootcamp{}, err
	}

	applyBootcamp(&b, req)
	if err := check(s.validate, b); err != nil {
		return models.Bootcamp{}, err
	}

	updated, err := s.store.UpdateBootcamp(ctx, b)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return models.Bootcamp{}, apperr.NotFound("Bootcamp not found with id of %d", id)
		case errors.Is(err, storage.ErrAlreadyExists):
			return models.Bootcamp{}, apperr.Validation("Duplicate field value entered")
		}
		return models.Bootcamp{}, apperr.Internal("update bootcamp", err)
	}
	return updated, nil
}

// Delete removes the bootcamp and its courses when actor owns it or is an admin.
func (s *BootcampService) Delete(ctx context.Context, actor models.User, id int64) error {
	b, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.RequireOwner(actor, b, "delete", "bootcamp", id); err != nil {
		return err
	}
	if err := s.store.DeleteBootcamp(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NotFound("Bootcamp not found with id of %d", id)
		}
		return apperr.Internal("delete bootcamp", err)
	}
	s.logger.Info("bootcamp deleted", zap.Int64("bootcamp_id", id), zap.Int64("user_id", actor.ID))
	return nil
}

func applyBootcamp(b *models.Bootcamp, req dto.BootcampRequest) {
	if req.Name != nil {
		b.Name = *req.Name
		b.Slug = bootcampSlug(b.Name)
	}
	setIf(&b.Description, req.Description)
	setIf(&b.Website, req.Website)
	setIf(&b.Phone, req.Phone)
	setIf(&b.Email, req.Email)
	setIf(&b.Address, req.Address)
	setIf(&b.Careers, req.Careers)
	setIf(&b.Housing, req.Housing)
	setIf(&b.JobAssistance, req.JobAssistance)
	setIf(&b.JobGuarantee, req.JobGuarantee)
	setIf(&b.AcceptGI, req.AcceptGI)
}

// fallbackSlug is used when a name has nothing that transliterates, e.g. only punctuation.
const fallbackSlug = "bootcamp"

func bootcampSlug(name string) string {
	if s := slug.Make(name); s != "" {
		return s
	}
	return fallbackSlug
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
