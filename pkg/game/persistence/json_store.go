package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"wasteland/pkg/engine/world"
	"wasteland/pkg/game/submap"
)

// JSONStore keeps every submap in a single local JSON file
type JSONStore struct {
	filePath string
	mutex    sync.RWMutex
	data     *JSONData
}

// JSONData represents the structure of the JSON file
type JSONData struct {
	Submaps map[string]json.RawMessage `json:"submaps"`
}

// NewJSONStore opens the store at filePath, creating the file if it doesn't exist
func NewJSONStore(filePath string) (*JSONStore, error) {
	store := &JSONStore{
		filePath: filePath,
		data:     &JSONData{Submaps: make(map[string]json.RawMessage)},
	}

	if _, err := os.Stat(filePath); err == nil {
		if err := store.loadFromFile(); err != nil {
			return nil, fmt.Errorf("failed to load JSON store: %w", err)
		}
	} else {
		if err := store.saveToFile(); err != nil {
			return nil, fmt.Errorf("failed to create JSON store file: %w", err)
		}
	}

	return store, nil
}

func key(pos world.Tripoint) string {
	return pos.String()
}

// loadFromFile loads data from the JSON file
func (js *JSONStore) loadFromFile() error {
	js.mutex.Lock()
	defer js.mutex.Unlock()

	file, err := os.ReadFile(js.filePath)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(file, js.data); err != nil {
		return err
	}
	if js.data.Submaps == nil {
		js.data.Submaps = make(map[string]json.RawMessage)
	}
	return nil
}

// saveToFile writes the whole store to a temporary file and renames it into place
func (js *JSONStore) saveToFile() error {
	js.mutex.RLock()
	data, err := json.MarshalIndent(js.data, "", "  ")
	js.mutex.RUnlock()
	if err != nil {
		return err
	}

	tmp := js.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, js.filePath)
}

// SaveSubmap stores a snapshot of sm at pos
func (js *JSONStore) SaveSubmap(ctx context.Context, pos world.Tripoint, sm *submap.Submap) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := json.Marshal(sm)
	if err != nil {
		return fmt.Errorf("failed to marshal submap %v: %w", pos, err)
	}

	js.mutex.Lock()
	js.data.Submaps[key(pos)] = raw
	js.mutex.Unlock()

	return js.saveToFile()
}

// SaveSubmaps stores snapshots of every submap and rewrites the file once
func (js *JSONStore) SaveSubmaps(ctx context.Context, submaps map[world.Tripoint]*submap.Submap) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(submaps) == 0 {
		return nil
	}
	raws := make(map[string]json.RawMessage, len(submaps))
	for pos, sm := range submaps {
		raw, err := json.Marshal(sm)
		if err != nil {
			return fmt.Errorf("failed to marshal submap %v: %w", pos, err)
		}
		raws[key(pos)] = raw
	}

	js.mutex.Lock()
	for k, raw := range raws {
		js.data.Submaps[k] = raw
	}
	js.mutex.Unlock()

	return js.saveToFile()
}

// LoadSubmap loads the submap stored at pos
func (js *JSONStore) LoadSubmap(ctx context.Context, pos world.Tripoint) (*submap.Submap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	js.mutex.RLock()
	raw, exists := js.data.Submaps[key(pos)]
	js.mutex.RUnlock()
	if !exists {
		return nil, fmt.Errorf("submap %v: %w", pos, ErrNotFound)
	}

	var sm submap.Submap
	if err := json.Unmarshal(raw, &sm); err != nil {
		return nil, fmt.Errorf("failed to unmarshal submap %v: %w", pos, err)
	}
	return &sm, nil
}

// DeleteSubmap removes the submap stored at pos
func (js *JSONStore) DeleteSubmap(ctx context.Context, pos world.Tripoint) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	js.mutex.Lock()
	_, exists := js.data.Submaps[key(pos)]
	delete(js.data.Submaps, key(pos))
	js.mutex.Unlock()
	if !exists {
		return fmt.Errorf("submap %v: %w", pos, ErrNotFound)
	}
	return js.saveToFile()
}

// Close closes the store (no-op for JSON store)
func (js *JSONStore) Close() error {
	return nil
}
