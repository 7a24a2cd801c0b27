package engine

import (
	"fmt"

	"github.com/piwi3910/BoxCut/internal/model"
)

// ComparisonScenario defines a named what-if variant of a design. Overrides
// replace the matching fields of the base parameters.
type ComparisonScenario struct {
	Name      string
	Overrides model.RawParams
	Options   EstimatorOptions
}

// ComparisonResult holds the design produced for a single scenario.
type ComparisonResult struct {
	Scenario ComparisonScenario
	Record   model.DesignRecord
	Err      error
}

// CompareScenarios runs the pipeline for each scenario and returns the
// results in scenario order. A failing scenario records its error and does
// not stop the others.
func CompareScenarios(gen *Generator, base model.RawParams, scenarios []ComparisonScenario) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		raw := scenario.Overrides.Merge(base)
		record, err := gen.WithOptions(scenario.Options).Generate(raw)
		results = append(results, ComparisonResult{
			Scenario: scenario,
			Record:   record,
			Err:      err,
		})
	}

	return results
}

// BuildDefaultScenarios generates comparison scenarios around the current
// parameters: every other catalog material, a thinner stock, and the strict
// fit check.
func BuildDefaultScenarios(catalog model.Catalog, current model.NormalizedParams, opts EstimatorOptions) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:    "Current Settings",
			Options: opts,
		},
	}

	for _, m := range catalog.Materials {
		if m.Key == current.Material {
			continue
		}
		scenarios = append(scenarios, ComparisonScenario{
			Name:      m.Name,
			Overrides: model.RawParams{Material: m.Key},
			Options:   opts,
		})
	}

	// Thinner stock (simulate 2/3 thickness)
	thinner := current.Thickness * 2 / 3
	scenarios = append(scenarios, ComparisonScenario{
		Name:      fmt.Sprintf("Thickness %.1fmm", thinner),
		Overrides: model.RawParams{Thickness: model.Float(thinner)},
		Options:   opts,
	})

	if !opts.StrictFit {
		strict := opts
		strict.StrictFit = true
		scenarios = append(scenarios, ComparisonScenario{
			Name:    "Strict Fit",
			Options: strict,
		})
	}

	return scenarios
}
