package engine

import (
	"fmt"

	"github.com/piwi3910/BoxCut/internal/model"
)

// Generator runs the full normalize, derive, estimate pipeline. A Generator
// only reads its fields, so one value may serve concurrent callers.
type Generator struct {
	Defaults  model.RawParams
	Estimator *Estimator
}

func NewGenerator(catalog model.Catalog, cfg model.AppConfig) *Generator {
	return &Generator{
		Defaults:  cfg.Defaults(),
		Estimator: NewEstimator(catalog, EstimatorOptions{StrictFit: cfg.StrictFit}),
	}
}

// WithOptions returns a copy of g using different estimator options.
func (g *Generator) WithOptions(opts EstimatorOptions) *Generator {
	return &Generator{
		Defaults:  g.Defaults,
		Estimator: NewEstimator(g.Estimator.Catalog, opts),
	}
}

// Generate produces a design record from raw parameters. On error the
// returned record is the zero value.
func (g *Generator) Generate(raw model.RawParams) (model.DesignRecord, error) {
	params, err := Normalize(raw, g.Defaults)
	if err != nil {
		return model.DesignRecord{}, err
	}

	panels, err := Derive(params)
	if err != nil {
		return model.DesignRecord{}, err
	}

	est, err := g.Estimator.Estimate(panels, params.Material)
	if err != nil {
		return model.DesignRecord{}, fmt.Errorf("estimating material for %s box: %w", params.Style, err)
	}

	return model.DesignRecord{
		Params:          params,
		Panels:          panels,
		Layout:          est.Layout,
		MaterialArea:    est.MaterialArea,
		WastePercent:    est.WastePercent,
		TotalCost:       est.TotalCost,
		PricePerM2:      est.PricePerM2,
		PriceFallback:   est.PriceFallback,
		ProductionReady: true,
	}, nil
}

// GenerateDesign runs the pipeline with the built-in defaults.
func GenerateDesign(raw model.RawParams, catalog model.Catalog) (model.DesignRecord, error) {
	return NewGenerator(catalog, model.DefaultAppConfig()).Generate(raw)
}
