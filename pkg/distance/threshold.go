package distance

import (
	"github.com/lintang-b-s/toll-distance-matrix/pkg"
	"github.com/lintang-b-s/toll-distance-matrix/pkg/datastructure"
)

type meanAcc struct {
	sum   float64
	count int
}

func (a meanAcc) mean() float64 {
	return a.sum / float64(a.count)
}

// FindIDsWithinThreshold returns the sorted origins whose mean outbound distance lies within
// [0.9, 1.1] times the mean outbound distance of reference, bounds inclusive. the reference itself is included.
func FindIDsWithinThreshold(records []datastructure.DistanceRecord, reference datastructure.LocationID) ([]datastructure.LocationID, error) {
	means := make(map[datastructure.LocationID]meanAcc)
	for _, r := range records {
		acc := means[r.Origin]
		acc.sum += r.Distance
		acc.count++
		means[r.Origin] = acc
	}

	ref, ok := means[reference]
	if !ok {
		return nil, &pkg.UnknownReferenceError{Reference: int64(reference)}
	}
	refMean := ref.mean()
	lower := refMean * (1 - pkg.THRESHOLD_RATIO)
	upper := refMean * (1 + pkg.THRESHOLD_RATIO)

	ids := make([]datastructure.LocationID, 0)
	for origin, acc := range means {
		avg := acc.mean()
		if avg >= lower && avg <= upper {
			ids = append(ids, origin)
		}
	}
	return datastructure.SortedUnique(ids), nil
}
