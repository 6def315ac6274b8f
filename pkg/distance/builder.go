package distance

import (
	"fmt"
	"math"

	"github.com/lintang-b-s/toll-distance-matrix/pkg"
	"github.com/lintang-b-s/toll-distance-matrix/pkg/datastructure"
	"github.com/lintang-b-s/toll-distance-matrix/pkg/loader"
	"go.uber.org/zap"
)

type MatrixBuilder struct {
	logger  *zap.Logger
	warning pkg.DisconnectedGraphWarning
}

func NewMatrixBuilder(logger *zap.Logger) *MatrixBuilder {
	return &MatrixBuilder{
		logger: logger,
	}
}

/*
Build builds the all-pairs shortest distance matrix with floyd-warshall.

direct edges are set first (minimum wins if a pair is given twice), then for every intermediate k
and every pair (i,j): if d(i,k) + d(k,j) < d(i,j) both d(i,j) and d(j,i) are updated.
O(n^3) time and O(n^2) memory, see pkg.MAX_RECOMMENDED_LOCATIONS.

unreachable pairs stay +Inf and are reported through Warning().
*/
func (b *MatrixBuilder) Build(ids []datastructure.LocationID, edges []loader.Edge) (*datastructure.DistanceMatrix, error) {
	m := datastructure.NewDistanceMatrix(ids)
	n := m.NumberOfLocations()
	if n > pkg.MAX_RECOMMENDED_LOCATIONS {
		b.logger.Sugar().Warnf("building distance matrix over %d locations, floyd-warshall is O(n^3)", n)
	}

	for _, e := range edges {
		u, ok := m.GetIndex(e.ID1)
		if !ok {
			return nil, unknownEdgeEndpoint(e, e.ID1)
		}
		v, ok := m.GetIndex(e.ID2)
		if !ok {
			return nil, unknownEdgeEndpoint(e, e.ID2)
		}
		if e.Distance < 0 {
			return nil, &pkg.NegativeDistanceError{ID1: int64(e.ID1), ID2: int64(e.ID2), Distance: e.Distance}
		}
		if u == v {
			continue
		}
		if e.Distance < m.Get(u, v) {
			m.SetSymmetric(u, v, e.Distance)
		}
	}

	for k := 0; k < n; k++ {
		rowK := m.Row(datastructure.Index(k))
		for i := 0; i < n; i++ {
			dik := m.Get(datastructure.Index(i), datastructure.Index(k))
			if math.IsInf(dik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				through := dik + rowK[j]
				if through < m.Get(datastructure.Index(i), datastructure.Index(j)) {
					m.SetSymmetric(datastructure.Index(i), datastructure.Index(j), through)
				}
			}
		}
	}

	b.warning = disconnectedWarning(m)
	if !b.warning.Empty() {
		b.logger.Warn(b.warning.Error(), zap.Int("unreachable_pairs", len(b.warning.UnreachablePairs)))
	}
	b.logger.Sugar().Infof("distance matrix resolved over %d locations", n)
	return m, nil
}

// Warning returns the disconnected graph warning of the last Build.
func (b *MatrixBuilder) Warning() pkg.DisconnectedGraphWarning {
	return b.warning
}

func disconnectedWarning(m *datastructure.DistanceMatrix) pkg.DisconnectedGraphWarning {
	pairs := m.UnreachablePairs()
	w := pkg.DisconnectedGraphWarning{UnreachablePairs: make([][2]int64, 0, len(pairs))}
	for _, p := range pairs {
		w.UnreachablePairs = append(w.UnreachablePairs, [2]int64{int64(p[0]), int64(p[1])})
	}
	return w
}

func unknownEdgeEndpoint(e loader.Edge, id datastructure.LocationID) error {
	record := []string{
		fmt.Sprintf("%d", e.ID1),
		fmt.Sprintf("%d", e.ID2),
		fmt.Sprintf("%v", e.Distance),
	}
	return pkg.NewMalformedInputError(0, record, fmt.Sprintf("location %d is not in the location universe", id))
}
