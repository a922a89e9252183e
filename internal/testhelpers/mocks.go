package testhelpers

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/hospistay/backend/internal/service"
	"github.com/hospistay/backend/internal/types"
)

// FakeIntakeStore is an in-memory IntakeStore for tests
type FakeIntakeStore struct {
	mu      sync.Mutex
	entries map[uuid.UUID]types.Intake
}

func NewFakeIntakeStore() *FakeIntakeStore {
	return &FakeIntakeStore{entries: make(map[uuid.UUID]types.Intake)}
}

func (s *FakeIntakeStore) Put(ctx context.Context, userID uuid.UUID, intake *types.Intake) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[userID] = *intake
	return nil
}

func (s *FakeIntakeStore) Get(ctx context.Context, userID uuid.UUID) (*types.Intake, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	intake, ok := s.entries[userID]
	if !ok {
		return nil, nil
	}
	return &intake, nil
}

func (s *FakeIntakeStore) Clear(ctx context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, userID)
	return nil
}

// Has reports whether an intake is currently stashed for the user
func (s *FakeIntakeStore) Has(userID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[userID]
	return ok
}

// StubAdvisoryProvider returns canned advisories, or the static fallback
// list when no advisories are configured
type StubAdvisoryProvider struct {
	Advisories []string
}

func (p *StubAdvisoryProvider) Available() bool {
	return p.Advisories != nil
}

func (p *StubAdvisoryProvider) GenerateAdvisories(ctx context.Context, count int) []string {
	if p.Advisories == nil {
		return append([]string(nil), service.FallbackAdvisories...)
	}
	return append([]string(nil), p.Advisories...)
}
