package persistence

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	items   map[string][]byte
	saves   int
	loadErr error
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{items: make(map[string][]byte)}
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.items[key] = append([]byte(nil), data...)
	return nil
}

func TestTracker_Fresh(t *testing.T) {
	tr := newTracker(newMemStore())
	assert.Equal(t, Progress{}, tr.Progress())
}

func TestTracker_ReachedKeepsFurthest(t *testing.T) {
	store := newMemStore()
	tr := newTracker(store)

	tr.Reached(0)
	tr.Reached(2)
	tr.Reached(1)

	assert.Equal(t, 3, tr.Progress().FurthestLevel)
	assert.Equal(t, 2, store.saves, "only advances are written")
}

func TestTracker_RoundTripThroughStore(t *testing.T) {
	store := newMemStore()
	tr := newTracker(store)
	tr.Reached(1)
	tr.Won()
	tr.Won()

	reloaded := newTracker(store)
	assert.Equal(t, Progress{FurthestLevel: 2, Wins: 2}, reloaded.Progress())
}

func TestTracker_BadData(t *testing.T) {
	tests := []struct {
		name  string
		store *memStore
	}{
		{"load error", &memStore{items: map[string][]byte{}, loadErr: errors.New("disk gone")}},
		{"corrupt json", &memStore{items: map[string][]byte{progressKey: []byte("{nope")}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTracker(tt.store)
			assert.Equal(t, Progress{}, tr.Progress())
		})
	}
}

func TestTracker_SaveErrorKeepsMemoryState(t *testing.T) {
	store := newMemStore()
	store.saveErr = errors.New("read-only")
	tr := newTracker(store)

	tr.Won()
	require.Equal(t, 1, tr.Progress().Wins)
	assert.Empty(t, store.items)
}
