package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"dachshund-registry/internal/domain/dachshunds"

	"github.com/google/uuid"
)

type entry struct {
	d   dachshunds.Dachshund
	seq int
}

type dachshundsRepo struct {
	mu   sync.RWMutex
	byID map[string]entry
	next int
}

// NewDachshundsRepo devuelve el adapter in-memory (modo dev y tests).
func NewDachshundsRepo() dachshunds.Repository {
	return &dachshundsRepo{byID: make(map[string]entry)}
}

func (r *dachshundsRepo) List(ctx context.Context, f dachshunds.Filter, s *dachshunds.Sort) ([]dachshunds.Dachshund, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]entry, 0, len(r.byID))
	for _, e := range r.byID {
		if matches(e.d, f) {
			entries = append(entries, e)
		}
	}

	// Orden natural = orden de inserción; el map no lo garantiza.
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	if s != nil {
		applySort(entries, *s)
	}

	out := make([]dachshunds.Dachshund, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.d)
	}
	return out, nil
}

func (r *dachshundsRepo) GetByID(ctx context.Context, id string) (dachshunds.Dachshund, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return dachshunds.Dachshund{}, dachshunds.ErrNotFound
	}
	return e.d, nil
}

func (r *dachshundsRepo) Insert(ctx context.Context, d dachshunds.Dachshund) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d.ID = uuid.NewString()
	r.byID[d.ID] = entry{d: d, seq: r.next}
	r.next++
	return d.ID, nil
}

func (r *dachshundsRepo) Update(ctx context.Context, id string, p dachshunds.Patch) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[id]
	if !ok {
		return false, nil
	}

	if p.Name != nil {
		e.d.Name = *p.Name
	}
	if p.Age != nil {
		e.d.Age = *p.Age
	}
	if p.Breed != nil {
		e.d.Breed = *p.Breed
	}
	if p.Description != nil {
		e.d.Description = *p.Description
	}
	if p.Status != nil {
		e.d.Status = *p.Status
	}
	if p.PasswordHash != nil {
		e.d.PasswordHash = *p.PasswordHash
	}

	r.byID[id] = e
	return true, nil
}

func (r *dachshundsRepo) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

func matches(d dachshunds.Dachshund, f dachshunds.Filter) bool {
	if f.Name != "" && !containsFold(d.Name, f.Name) {
		return false
	}
	if f.Breed != "" && !containsFold(d.Breed, f.Breed) {
		return false
	}
	if f.Status != "" && d.Status != f.Status {
		return false
	}
	if f.MinAge != nil && d.Age < *f.MinAge {
		return false
	}
	if f.MaxAge != nil && d.Age > *f.MaxAge {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func applySort(entries []entry, s dachshunds.Sort) {
	less := func(a, b dachshunds.Dachshund) bool {
		switch s.Field {
		case "age":
			return a.Age < b.Age
		case "breed":
			return a.Breed < b.Breed
		case "status":
			return a.Status < b.Status
		default:
			return a.Name < b.Name
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if s.Desc {
			return less(entries[j].d, entries[i].d)
		}
		return less(entries[i].d, entries[j].d)
	})
}
