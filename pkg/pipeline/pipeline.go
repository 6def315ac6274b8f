package pipeline

import (
	"fmt"

	"github.com/lintang-b-s/toll-distance-matrix/pkg"
	"github.com/lintang-b-s/toll-distance-matrix/pkg/datastructure"
	"github.com/lintang-b-s/toll-distance-matrix/pkg/distance"
	"github.com/lintang-b-s/toll-distance-matrix/pkg/loader"
	"github.com/lintang-b-s/toll-distance-matrix/pkg/toll"
	"go.uber.org/zap"
)

type Options struct {
	// ExpanderWorkers > 1 expands location pairs on a worker pool.
	ExpanderWorkers int
}

type Pipeline struct {
	opts   Options
	logger *zap.Logger
}

func New(opts Options, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		opts:   opts,
		logger: logger,
	}
}

// Result holds every stage output of one run. stages are computed once, accessors hand out copies.
type Result struct {
	matrix    *datastructure.DistanceMatrix
	distances []datastructure.DistanceRecord
	tolls     []datastructure.TollRecord
	bands     []datastructure.TimeBandRecord
	warning   pkg.DisconnectedGraphWarning
}

// Run executes loader output -> matrix -> unroll -> toll rates -> time bands. each stage fully
// consumes the previous one. any error aborts the run without a partial result.
func (p *Pipeline) Run(ds *loader.Dataset) (*Result, error) {
	if ds == nil {
		return nil, fmt.Errorf("pipeline: nil dataset")
	}

	builder := distance.NewMatrixBuilder(p.logger)
	matrix, err := builder.Build(ds.IDs, ds.Edges)
	if err != nil {
		return nil, fmt.Errorf("building distance matrix: %w", err)
	}

	distances := distance.Unroll(matrix)
	p.logger.Sugar().Infof("unrolled distance matrix into %d records", len(distances))

	tolls := toll.CalculateTollRates(distances)
	bands := toll.NewTimeWindowExpander(p.opts.ExpanderWorkers, p.logger).Expand(tolls)

	return &Result{
		matrix:    matrix,
		distances: distances,
		tolls:     tolls,
		bands:     bands,
		warning:   builder.Warning(),
	}, nil
}

func (r *Result) Matrix() *datastructure.DistanceMatrix {
	return r.matrix.Clone()
}

func (r *Result) DistanceRecords() []datastructure.DistanceRecord {
	return append([]datastructure.DistanceRecord(nil), r.distances...)
}

func (r *Result) TollRecords() []datastructure.TollRecord {
	return append([]datastructure.TollRecord(nil), r.tolls...)
}

func (r *Result) TimeBandRecords() []datastructure.TimeBandRecord {
	return append([]datastructure.TimeBandRecord(nil), r.bands...)
}

func (r *Result) Warning() pkg.DisconnectedGraphWarning {
	return r.warning
}

// FindIDsWithinThreshold runs the 10% mean distance query against the unrolled records.
func (r *Result) FindIDsWithinThreshold(reference datastructure.LocationID) ([]datastructure.LocationID, error) {
	return distance.FindIDsWithinThreshold(r.distances, reference)
}
