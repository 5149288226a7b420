// Package cleaning implements the customer dataset cleaning pipeline: a
// fixed sequence of idempotent transforms that standardize column names,
// canonicalize categorical values, coerce malformed numeric text into
// numeric columns, and fill missing values with deterministic defaults.
//
// The pipeline neither loads nor persists anything and never logs; callers
// hand it an in-memory table and receive one back.
package cleaning

import (
	"fmt"

	"custclean/internal/table"
)

// Stage is one transform in the pipeline. Stages mutate the table in place
// (or replace columns) and return it, so they compose by simple chaining.
// A failed stage leaves the mutations of earlier stages in place.
type Stage func(*table.Table) (*table.Table, error)

type namedStage struct {
	name string
	run  Stage
}

// Pipeline applies the cleaning stages in their fixed order.
type Pipeline struct {
	stages []namedStage
}

// NewPipeline returns a pipeline with the full stage sequence. The order is
// load-bearing: the filler depends on the column names produced by the
// renamer and on the numeric columns produced by the coercer.
func NewPipeline() *Pipeline {
	return &Pipeline{
		stages: []namedStage{
			{"normalize column names", NormalizeColumnNames},
			{"normalize gender", NormalizeGender},
			{"normalize state", NormalizeState},
			{"normalize education", NormalizeEducation},
			{"normalize vehicle class", NormalizeVehicleClass},
			{"coerce numerics", CoerceNumerics},
			{"fill missing values", FillMissing},
		},
	}
}

// Run threads the table through every stage and returns the cleaned table.
// The first failing stage halts the run with its error wrapped in the stage
// name.
func (p *Pipeline) Run(t *table.Table) (*table.Table, error) {
	var err error
	for _, s := range p.stages {
		if t, err = s.run(t); err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return t, nil
}
