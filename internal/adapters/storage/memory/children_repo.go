package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"vaccine-reminder/internal/domain/children"
)

// childrenRepo guarda cada niño con su secuencia de dosis completa. El mutex
// es el único punto de exclusión del sistema: cubre tanto el toggle de dosis
// (Update) como las lecturas que después derivan estado.
type childrenRepo struct {
	mu   sync.RWMutex
	byID map[string]children.Child
}

func NewChildrenRepo() children.Repository {
	return &childrenRepo{
		byID: make(map[string]children.Child),
	}
}

func (r *childrenRepo) Create(ctx context.Context, c children.Child) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("child id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("child already exists")
	}
	r.byID[c.ID] = cloneChild(c)
	return nil
}

func (r *childrenRepo) GetByID(ctx context.Context, id string) (children.Child, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return children.Child{}, children.ErrNotFound
	}
	return cloneChild(c), nil
}

func (r *childrenRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]children.Child, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]children.Child, 0)
	for _, c := range r.byID {
		if c.OwnerUserID == ownerUserID {
			out = append(out, cloneChild(c))
		}
	}

	// Orden estable por created_at asc (solo para consistencia en dev)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *childrenRepo) Update(ctx context.Context, c children.Child) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("child id required")
	}
	if _, exists := r.byID[c.ID]; !exists {
		return children.ErrNotFound
	}
	r.byID[c.ID] = cloneChild(c)
	return nil
}

func (r *childrenRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return children.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// cloneChild copia el slice de dosis para que el map no comparta backing
// array con lo que devolvemos/recibimos (evita aliasing entre callers).
func cloneChild(c children.Child) children.Child {
	obligations := make([]children.DoseObligation, len(c.Obligations))
	copy(obligations, c.Obligations)
	c.Obligations = obligations
	return c
}
