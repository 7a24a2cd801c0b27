package model

import (
	"time"

	"github.com/google/uuid"
)

// BoxPreset is a named, reusable box description.
type BoxPreset struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   string    `json:"created_at"`
	Params      RawParams `json:"params"`
}

// NewBoxPreset creates a preset with a fresh ID and creation timestamp.
func NewBoxPreset(name, description string, params RawParams) BoxPreset {
	return BoxPreset{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		Params:      params,
	}
}

// PresetStore holds a collection of box presets.
type PresetStore struct {
	Presets []BoxPreset `json:"presets"`
}

// NewPresetStore creates an empty preset store.
func NewPresetStore() PresetStore {
	return PresetStore{
		Presets: []BoxPreset{},
	}
}

// Add adds a preset to the store, replacing any preset with the same name.
func (ps *PresetStore) Add(p BoxPreset) {
	for i := range ps.Presets {
		if ps.Presets[i].Name == p.Name {
			ps.Presets[i] = p
			return
		}
	}
	ps.Presets = append(ps.Presets, p)
}

// Remove removes a preset by ID or name. Returns true if found and removed.
func (ps *PresetStore) Remove(idOrName string) bool {
	for i, p := range ps.Presets {
		if p.ID == idOrName || p.Name == idOrName {
			ps.Presets = append(ps.Presets[:i], ps.Presets[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns a pointer to the preset with the given ID or name, or nil.
func (ps *PresetStore) Find(idOrName string) *BoxPreset {
	for i := range ps.Presets {
		if ps.Presets[i].ID == idOrName || ps.Presets[i].Name == idOrName {
			return &ps.Presets[i]
		}
	}
	return nil
}

// Names returns the preset names in insertion order.
func (ps *PresetStore) Names() []string {
	names := make([]string, len(ps.Presets))
	for i, p := range ps.Presets {
		names[i] = p.Name
	}
	return names
}
