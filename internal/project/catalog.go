package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/BoxCut/internal/model"
	"gopkg.in/yaml.v3"
)

// DefaultCatalogPath returns the default location of the catalog file.
// This is located at ~/.boxcut/catalog.yaml.
func DefaultCatalogPath() string {
	return filepath.Join(DefaultConfigDir(), "catalog.yaml")
}

// SaveCatalog writes the catalog to path as YAML.
func SaveCatalog(path string, catalog model.Catalog) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCatalog reads a YAML catalog. A missing file yields the built-in
// catalog. Fields missing from the file (fallback price, waste margin) keep
// their built-in values, and the result is validated before it is returned.
func LoadCatalog(path string) (model.Catalog, error) {
	if path == "" {
		return model.DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultCatalog(), nil
		}
		return model.Catalog{}, err
	}

	defaults := model.DefaultCatalog()
	catalog := model.Catalog{
		FallbackPrice: defaults.FallbackPrice,
		WasteMargin:   defaults.WasteMargin,
	}
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return model.Catalog{}, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	if err := catalog.Validate(); err != nil {
		return model.Catalog{}, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return catalog, nil
}
