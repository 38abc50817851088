package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Cheertaboi/refill-pricing-service/internal/models"
)

// MemoryPrescriptionRepo is a catalog kept in process memory.
type MemoryPrescriptionRepo struct {
	mu     sync.RWMutex
	nextID int
	store  map[string]models.Prescription
}

func NewMemoryPrescriptionRepo(seed ...models.Prescription) *MemoryPrescriptionRepo {
	r := &MemoryPrescriptionRepo{store: make(map[string]models.Prescription)}
	for _, p := range seed {
		_, _ = r.Upsert(context.Background(), p)
	}
	return r
}

func (r *MemoryPrescriptionRepo) GetByName(_ context.Context, name string) (*models.Prescription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.store[name]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *MemoryPrescriptionRepo) List(_ context.Context) ([]models.Prescription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Prescription, 0, len(r.store))
	for _, p := range r.store {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MemoryPrescriptionRepo) Upsert(_ context.Context, p models.Prescription) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	if existing, ok := r.store[p.Name]; ok {
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
	} else {
		r.nextID++
		p.ID = r.nextID
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	r.store[p.Name] = p
	return p.ID, nil
}
