package engine

import (
	"math"

	"github.com/piwi3910/BoxCut/internal/model"
)

// Built-in defaults, used when neither the input nor the configured
// defaults provide a value.
var builtinDefaults = model.RawParams{
	Width:     model.Float(400),
	Depth:     model.Float(300),
	Height:    model.Float(150),
	Thickness: model.Float(18.0),
	Kerf:      model.Float(2.0),
	Material:  model.DefaultMaterialKey,
	Style:     string(model.StyleHingedLid),
}

// Normalize validates raw parameters and fills absent fields, first from
// defaults and then from the built-in demonstration box. Explicit values are
// never overridden. Unknown material keys are accepted here; pricing decides
// how to treat them.
func Normalize(raw model.RawParams, defaults model.RawParams) (model.NormalizedParams, error) {
	r := raw.Merge(defaults).Merge(builtinDefaults)

	p := model.NormalizedParams{
		Width:     *r.Width,
		Depth:     *r.Depth,
		Height:    *r.Height,
		Thickness: *r.Thickness,
		Kerf:      *r.Kerf,
		Material:  r.Material,
		Style:     model.Style(r.Style),
	}

	dims := []struct {
		field string
		value float64
	}{
		{"width", p.Width},
		{"depth", p.Depth},
		{"height", p.Height},
		{"thickness", p.Thickness},
	}
	for _, d := range dims {
		if !isFinite(d.value) || d.value <= 0 {
			return model.NormalizedParams{}, &ValidationError{Field: d.field, Value: d.value, Reason: "must be a positive number"}
		}
	}
	if !isFinite(p.Kerf) || p.Kerf < 0 {
		return model.NormalizedParams{}, &ValidationError{Field: "kerf", Value: p.Kerf, Reason: "must not be negative"}
	}

	if p.Width <= 2*p.Thickness {
		return model.NormalizedParams{}, &ValidationError{Field: "width", Value: p.Width, Reason: "must exceed twice the thickness, inner cavity would be empty"}
	}
	if p.Depth <= 2*p.Thickness {
		return model.NormalizedParams{}, &ValidationError{Field: "depth", Value: p.Depth, Reason: "must exceed twice the thickness, inner cavity would be empty"}
	}
	if p.Height <= p.Thickness {
		return model.NormalizedParams{}, &ValidationError{Field: "height", Value: p.Height, Reason: "must exceed the thickness, walls would have no height"}
	}

	return p, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
