// Package persistence stores player progress between runs.
package persistence

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

const progressKey = "progress"

// Progress is the data saved on disk
type Progress struct {
	// FurthestLevel is 1-based; 0 means no level was ever entered
	FurthestLevel int `json:"furthestLevel"`
	Wins          int `json:"wins"`
}

type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Tracker records level entries and wins and writes them through on change
type Tracker struct {
	store    itemStore
	progress Progress
}

// Open opens the gdata store for appName and loads saved progress
func Open(appName string) (*Tracker, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open progress store: %w", err)
	}
	return newTracker(m), nil
}

func newTracker(store itemStore) *Tracker {
	t := &Tracker{store: store}

	data, err := store.LoadItem(progressKey)
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
		return t
	}
	if len(data) == 0 {
		return t
	}
	if err := json.Unmarshal(data, &t.progress); err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		t.progress = Progress{}
	}
	return t
}

// Progress returns a copy of the current progress
func (t *Tracker) Progress() Progress {
	return t.progress
}

// Reached records entry into the level with the given 0-based index
func (t *Tracker) Reached(level int) {
	if level+1 <= t.progress.FurthestLevel {
		return
	}
	t.progress.FurthestLevel = level + 1
	t.save()
}

// Won records a completed run
func (t *Tracker) Won() {
	t.progress.Wins++
	t.save()
}

func (t *Tracker) save() {
	data, err := json.Marshal(t.progress)
	if err != nil {
		log.Printf("Warning: Could not serialize progress: %v", err)
		return
	}
	if err := t.store.SaveItem(progressKey, data); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
	}
}
