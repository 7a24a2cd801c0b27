package model

import (
	"errors"
	"fmt"
)

// DefaultMaterialKey is the material used when a design does not name one.
const DefaultMaterialKey = "birch_plywood_18mm"

// DefaultWasteMargin is the flat offcut/kerf allowance applied to material cost.
const DefaultWasteMargin = 1.2

// DefaultFallbackPrice is the price (EUR/m²) charged for material keys that are
// not in the catalog. Designs priced this way carry PriceFallback=true.
const DefaultFallbackPrice = 20.0

// SheetSize is one standard stock sheet size.
type SheetSize struct {
	Label  string  `json:"label" yaml:"label"`
	Width  float64 `json:"width" yaml:"width"`   // mm
	Height float64 `json:"height" yaml:"height"` // mm
}

// Area returns the sheet area in sq mm.
func (s SheetSize) Area() float64 {
	return s.Width * s.Height
}

// Material is a priced sheet material.
type Material struct {
	Key        string  `json:"key" yaml:"key"`
	Name       string  `json:"name" yaml:"name"`
	PricePerM2 float64 `json:"price_per_m2" yaml:"price_per_m2"` // EUR per square meter
}

// Catalog holds the read-only pricing and stock tables. Sheets are ordered by
// preference; the first entry is the reference sheet used for estimates.
type Catalog struct {
	Sheets        []SheetSize `json:"sheets" yaml:"sheets"`
	Materials     []Material  `json:"materials" yaml:"materials"`
	FallbackPrice float64     `json:"fallback_price" yaml:"fallback_price"`
	WasteMargin   float64     `json:"waste_margin" yaml:"waste_margin"`
}

// DefaultCatalog returns the built-in stock sizes and material prices.
func DefaultCatalog() Catalog {
	return Catalog{
		Sheets: []SheetSize{
			{Label: "Full sheet 2440x1220 (8'x4')", Width: 2440, Height: 1220},
			{Label: "Euro sheet 2500x1250", Width: 2500, Height: 1250},
			{Label: "Half sheet 1220x610 (4'x2')", Width: 1220, Height: 610},
		},
		Materials: []Material{
			{Key: "birch_plywood_18mm", Name: "Birch plywood 18mm", PricePerM2: 25.0},
			{Key: "birch_plywood_12mm", Name: "Birch plywood 12mm", PricePerM2: 19.0},
			{Key: "mdf_18mm", Name: "MDF 18mm", PricePerM2: 12.0},
			{Key: "pine_board_18mm", Name: "Pine board 18mm", PricePerM2: 18.5},
			{Key: "oak_veneer_18mm", Name: "Oak veneered plywood 18mm", PricePerM2: 42.0},
			{Key: "acrylic_3mm", Name: "Acrylic 3mm", PricePerM2: 45.0},
		},
		FallbackPrice: DefaultFallbackPrice,
		WasteMargin:   DefaultWasteMargin,
	}
}

// Price returns the price per m² for a material key. Unknown keys return the
// catalog's fallback price and known=false.
func (c Catalog) Price(key string) (price float64, known bool) {
	for _, m := range c.Materials {
		if m.Key == key {
			return m.PricePerM2, true
		}
	}
	return c.FallbackPrice, false
}

// FindMaterial returns a pointer to the material with the given key, or nil.
func (c Catalog) FindMaterial(key string) *Material {
	for i := range c.Materials {
		if c.Materials[i].Key == key {
			return &c.Materials[i]
		}
	}
	return nil
}

// MaterialKeys returns the material keys in catalog order.
func (c Catalog) MaterialKeys() []string {
	keys := make([]string, len(c.Materials))
	for i, m := range c.Materials {
		keys[i] = m.Key
	}
	return keys
}

// DefaultSheet returns the preferred (first) sheet size.
func (c Catalog) DefaultSheet() (SheetSize, bool) {
	if len(c.Sheets) == 0 {
		return SheetSize{}, false
	}
	return c.Sheets[0], true
}

// Validate checks that the catalog tables are usable.
func (c Catalog) Validate() error {
	var errs []error
	for i, s := range c.Sheets {
		if s.Width <= 0 || s.Height <= 0 {
			errs = append(errs, fmt.Errorf("sheet %d (%s): dimensions must be positive", i+1, s.Label))
		}
	}
	seen := make(map[string]bool, len(c.Materials))
	for _, m := range c.Materials {
		if m.Key == "" {
			errs = append(errs, errors.New("material with empty key"))
			continue
		}
		if seen[m.Key] {
			errs = append(errs, fmt.Errorf("material %q listed twice", m.Key))
		}
		seen[m.Key] = true
		if m.PricePerM2 < 0 {
			errs = append(errs, fmt.Errorf("material %q: negative price", m.Key))
		}
	}
	if c.FallbackPrice < 0 {
		errs = append(errs, errors.New("fallback price must not be negative"))
	}
	if c.WasteMargin < 1 {
		errs = append(errs, fmt.Errorf("waste margin %.2f must be at least 1", c.WasteMargin))
	}
	return errors.Join(errs...)
}
