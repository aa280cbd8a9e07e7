package engine

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/shibashis07/time-logger/internal/domain"
	"github.com/shibashis07/time-logger/internal/errors"
	"github.com/shibashis07/time-logger/internal/store"
)

// mockStore implements store.Store for testing, with call counters and
// failure injection.
type mockStore struct {
	mu      sync.Mutex
	records []*domain.ActivityRecord
	nextID  int

	appendCalls int
	listCalls   int
	deleteCalls int

	failAppend bool
	failList   bool
}

func newMockStore() *mockStore {
	return &mockStore{nextID: 1}
}

func (m *mockStore) Append(ctx context.Context, record *domain.ActivityRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.appendCalls++
	if m.failAppend {
		return errors.NewPersistenceError("append record", fmt.Errorf("backend unavailable"))
	}

	record.ID = fmt.Sprintf("rec-%d", m.nextID)
	m.nextID++

	stored := *record
	m.records = append(m.records, &stored)
	return nil
}

func (m *mockStore) List(ctx context.Context, filter store.Filter) ([]*domain.ActivityRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.listCalls++
	if m.failList {
		return nil, errors.NewPersistenceError("list records", fmt.Errorf("backend unavailable"))
	}

	var result []*domain.ActivityRecord
	for _, record := range m.records {
		if filter.Matches(record) {
			copied := *record
			result = append(result, &copied)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartTime < result[j].StartTime
	})
	return result, nil
}

func (m *mockStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.deleteCalls++
	for i, record := range m.records {
		if record.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return errors.NewNotFoundError("activity record", id)
}

func (m *mockStore) Close() error {
	return nil
}

func (m *mockStore) storedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}
