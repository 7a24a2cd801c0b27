package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/BoxCut/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultKerf = 4.0
	cfg.DefaultMaterial = "mdf_18mm"
	cfg.StrictFit = true
	cfg.RecentDesigns = []string{"a1b2c3d4", "e5f6a7b8"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded.DefaultKerf != 4.0 {
		t.Errorf("expected DefaultKerf=4.0, got %f", loaded.DefaultKerf)
	}
	if loaded.DefaultMaterial != "mdf_18mm" {
		t.Errorf("expected DefaultMaterial=mdf_18mm, got %s", loaded.DefaultMaterial)
	}
	if !loaded.StrictFit {
		t.Error("expected StrictFit to survive a round trip")
	}
	if len(loaded.RecentDesigns) != 2 {
		t.Errorf("expected 2 recent designs, got %d", len(loaded.RecentDesigns))
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}

	defaults := model.DefaultAppConfig()
	if cfg.DefaultThickness != defaults.DefaultThickness {
		t.Errorf("expected default thickness %f, got %f", defaults.DefaultThickness, cfg.DefaultThickness)
	}
}

func TestLoadAppConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"default_kerf":3.2}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.DefaultKerf != 3.2 {
		t.Errorf("expected kerf 3.2, got %f", cfg.DefaultKerf)
	}
	if cfg.DefaultThickness != 18.0 {
		t.Errorf("expected thickness to keep its default, got %f", cfg.DefaultThickness)
	}
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := os.WriteFile(path, []byte("not valid json{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadAppConfig(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestSaveAppConfigCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "dir", "config.json")

	if err := SaveAppConfig(path, model.DefaultAppConfig()); err != nil {
		t.Fatalf("SaveAppConfig should create parent dirs: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}
}

func TestLoadAppConfigNilRecentDesigns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	data := []byte(`{"default_kerf":3.2,"recent_designs":null}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.RecentDesigns == nil {
		t.Error("RecentDesigns should not be nil after loading")
	}
}

func TestDefaultPathsHonourEnvironment(t *testing.T) {
	t.Setenv("BOXCUT_CONFIG", "/tmp/boxcut-test/config.json")
	t.Setenv("BOXCUT_DB", "/tmp/boxcut-test/history.db")

	if got := DefaultConfigPath(); got != "/tmp/boxcut-test/config.json" {
		t.Errorf("unexpected config path %s", got)
	}
	if got := DefaultHistoryPath(); got != "/tmp/boxcut-test/history.db" {
		t.Errorf("unexpected history path %s", got)
	}
}
