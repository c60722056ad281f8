package patient

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clinicore/clinic-api/internal/model"
	"github.com/clinicore/clinic-api/internal/repository"
	apperrors "github.com/clinicore/clinic-api/pkg/errors"
)

type Service struct {
	repo repository.PatientRepository
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{repo: repo}
}

// Register validates and stores a new patient. All checks run before
// any storage access.
func (s *Service) Register(ctx context.Context, name string, birthDate time.Time, phone string, gender model.Gender) (*model.Patient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidation("patient name is required")
	}
	if !model.ValidPhone(phone) {
		return nil, apperrors.NewValidation("phone number must match 010-XXXX-XXXX")
	}
	if !model.ValidGender(gender) {
		return nil, apperrors.NewValidation("gender must be M or F")
	}

	patient := &model.Patient{
		Name:      name,
		BirthDate: birthDate,
		Phone:     phone,
		Gender:    gender,
	}
	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, apperrors.Wrap(err)
	}
	return patient, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(err)
	}
	return patient, nil
}

// List returns all patients by name, with their most recent visit.
func (s *Service) List(ctx context.Context) ([]*model.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err)
	}
	return patients, nil
}

// Search finds patients whose name contains the given substring.
func (s *Service) Search(ctx context.Context, name string) ([]*model.Patient, error) {
	patients, err := s.repo.Search(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, apperrors.Wrap(err)
	}
	return patients, nil
}
