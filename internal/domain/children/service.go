package children

import (
	"context"
	"errors"
	"strings"
	"time"

	"vaccine-reminder/internal/domain/vaccines"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo  Repository
	table []vaccines.Definition
	now   func() time.Time
}

func NewService(repo Repository, table []vaccines.Definition) *Service {
	return &Service{
		repo:  repo,
		table: table,
		now:   time.Now,
	}
}

type RegisterInput struct {
	Name      string
	BirthDate time.Time
}

// Register da de alta un niño y calcula de una vez toda su secuencia de
// dosis. El nombre debe ser único por dueño. Si la operación falla, no queda
// estado a medias (la secuencia se calcula antes de tocar el repo).
func (s *Service) Register(ctx context.Context, ownerUserID string, in RegisterInput) (Child, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	name := strings.TrimSpace(in.Name)

	if ownerUserID == "" || name == "" {
		return Child{}, ErrInvalidInput
	}
	if in.BirthDate.IsZero() {
		return Child{}, ErrInvalidInput
	}

	// nombre duplicado por dueño
	existing, err := s.repo.ListByOwner(ctx, ownerUserID)
	if err != nil {
		return Child{}, err
	}
	for _, c := range existing {
		if c.Name == name {
			return Child{}, ErrInvalidInput
		}
	}

	obligations, err := ComputeSchedule(s.table, in.BirthDate)
	if err != nil {
		// tabla mal formada: fallo de configuración, fatal para el alta
		return Child{}, err
	}

	now := s.now()
	c := Child{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		Name:        name,
		BirthDate:   dateOnly(in.BirthDate),
		Obligations: obligations,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Child{}, err
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Child, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Child{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Child, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

// Deregister elimina el niño y con él toda su secuencia de dosis.
func (s *Service) Deregister(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

// SetAdministered fija el estado de una dosis. Es un set idempotente, no un
// toggle estricto: repetir con el mismo estado es un no-op (salvo la fecha).
//   - administered == true: marca administrada; AdministeredAt toma la fecha
//     dada o RecommendedStart por defecto.
//   - administered == false: vuelve a pendiente y limpia AdministeredAt.
//
// doseIndex es la posición dentro de la secuencia ordenada; fuera de rango
// devuelve ErrNotFound sin tocar nada.
func (s *Service) SetAdministered(ctx context.Context, childID string, doseIndex int, administered bool, administeredAt *time.Time) (Child, error) {
	c, err := s.repo.GetByID(ctx, childID)
	if err != nil {
		return Child{}, err
	}

	if doseIndex < 0 || doseIndex >= len(c.Obligations) {
		return Child{}, ErrNotFound
	}

	o := c.Obligations[doseIndex]
	if administered {
		var date time.Time
		if administeredAt != nil {
			date = *administeredAt
		}
		o = o.WithAdministered(date)
	} else {
		o = o.WithPending()
	}
	c.Obligations[doseIndex] = o
	c.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, c); err != nil {
		return Child{}, err
	}
	return c, nil
}
