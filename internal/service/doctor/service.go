package doctor

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/clinicore/clinic-api/internal/model"
	"github.com/clinicore/clinic-api/internal/repository"
	apperrors "github.com/clinicore/clinic-api/pkg/errors"
)

const (
	cacheKeyAll        = "doctors:all"
	cacheKeyDepartment = "doctors:department:"
)

// Service manages the doctor roster. Listings are read-mostly so they
// are served from a short-TTL cache, flushed on registration.
type Service struct {
	repo  repository.DoctorRepository
	cache *gocache.Cache
}

func NewService(repo repository.DoctorRepository) *Service {
	return &Service{
		repo:  repo,
		cache: gocache.New(30*time.Second, time.Minute),
	}
}

func (s *Service) Register(ctx context.Context, name, department, phone string) (*model.Doctor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidation("doctor name is required")
	}
	if strings.TrimSpace(department) == "" {
		return nil, apperrors.NewValidation("department is required")
	}
	if !model.ValidPhone(phone) {
		return nil, apperrors.NewValidation("phone number must match 010-XXXX-XXXX")
	}

	doctor := &model.Doctor{
		Name:       name,
		Department: strings.TrimSpace(department),
		Phone:      phone,
	}
	if err := s.repo.Create(ctx, doctor); err != nil {
		return nil, apperrors.Wrap(err)
	}
	s.cache.Flush()
	return doctor, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	doctor, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(err)
	}
	return doctor, nil
}

// List returns the roster ordered by department then name, with each
// doctor's booked count for today.
func (s *Service) List(ctx context.Context) ([]*model.Doctor, error) {
	if cached, ok := s.cache.Get(cacheKeyAll); ok {
		return cached.([]*model.Doctor), nil
	}

	doctors, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err)
	}
	s.cache.SetDefault(cacheKeyAll, doctors)
	return doctors, nil
}

func (s *Service) ListByDepartment(ctx context.Context, department string) ([]*model.Doctor, error) {
	department = strings.TrimSpace(department)
	if department == "" {
		return nil, apperrors.NewValidation("department is required")
	}

	key := cacheKeyDepartment + department
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]*model.Doctor), nil
	}

	doctors, err := s.repo.ListByDepartment(ctx, department)
	if err != nil {
		return nil, apperrors.Wrap(err)
	}
	s.cache.SetDefault(key, doctors)
	return doctors, nil
}
