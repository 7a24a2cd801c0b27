package project

import (
	"path/filepath"
	"testing"

	"github.com/piwi3910/BoxCut/internal/model"
)

func TestSaveAndLoadPresets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.json")

	store := model.NewPresetStore()
	store.Add(model.NewBoxPreset("Tea box", "Loose-leaf tea", model.RawParams{
		Width:     model.Float(200),
		Depth:     model.Float(120),
		Height:    model.Float(90),
		Thickness: model.Float(6),
		Material:  "birch_plywood_12mm",
	}))

	if err := SavePresets(path, store); err != nil {
		t.Fatalf("SavePresets error: %v", err)
	}

	loaded, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets error: %v", err)
	}

	if len(loaded.Presets) != 1 {
		t.Fatalf("expected 1 preset, got %d", len(loaded.Presets))
	}
	p := loaded.Presets[0]
	if p.Name != "Tea box" {
		t.Errorf("expected 'Tea box', got %q", p.Name)
	}
	if p.Params.Thickness == nil || *p.Params.Thickness != 6 {
		t.Error("expected thickness 6 to survive a round trip")
	}
	if p.Params.Kerf != nil {
		t.Error("unset kerf must stay unset")
	}
}

func TestLoadPresets_NotFound(t *testing.T) {
	store, err := LoadPresets(filepath.Join(t.TempDir(), "nonexistent.json"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if len(store.Presets) != 0 {
		t.Errorf("expected empty store, got %d presets", len(store.Presets))
	}
}
