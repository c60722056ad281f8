package patient

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/clinic-api/internal/model"
	apperrors "github.com/clinicore/clinic-api/pkg/errors"
)

type fakeRepo struct {
	patients  []*model.Patient
	createErr error
}

func (f *fakeRepo) Create(ctx context.Context, p *model.Patient) error {
	if f.createErr != nil {
		return f.createErr
	}
	p.ID = uuid.New()
	f.patients = append(f.patients, p)
	return nil
}

func (f *fakeRepo) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	for _, p := range f.patients {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperrors.NewNotFound("patient", nil)
}

func (f *fakeRepo) List(ctx context.Context) ([]*model.Patient, error) {
	return f.patients, nil
}

func (f *fakeRepo) Search(ctx context.Context, name string) ([]*model.Patient, error) {
	return f.patients, nil
}

func (f *fakeRepo) DeleteTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error {
	return nil
}

var birthDate = time.Date(1990, 3, 14, 0, 0, 0, 0, time.UTC)

func TestRegister(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	created, err := svc.Register(context.Background(), "  Kim Minji ", birthDate, "010-1234-5678", model.GenderFemale)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "Kim Minji", created.Name)
	assert.Equal(t, model.GenderFemale, created.Gender)
	assert.Len(t, repo.patients, 1)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewService(&fakeRepo{})

	tests := []struct {
		name    string
		patient string
		phone   string
		gender  model.Gender
	}{
		{"empty name", "  ", "010-1234-5678", model.GenderMale},
		{"bad phone", "Kim Minji", "011-1234-5678", model.GenderFemale},
		{"short phone", "Kim Minji", "010-123-5678", model.GenderFemale},
		{"bad gender", "Kim Minji", "010-1234-5678", model.Gender("X")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.patient, birthDate, tt.phone, tt.gender)
			assert.True(t, apperrors.IsCode(err, apperrors.ErrValidation))
		})
	}
}

func TestRegisterDuplicatePhone(t *testing.T) {
	repo := &fakeRepo{createErr: apperrors.NewConflict("phone number already registered", nil)}
	svc := NewService(repo)

	_, err := svc.Register(context.Background(), "Kim Minji", birthDate, "010-1234-5678", model.GenderFemale)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrConflict))
}

func TestGetUnknown(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.Get(context.Background(), uuid.New())
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
}
