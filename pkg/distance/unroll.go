package distance

import (
	"github.com/lintang-b-s/toll-distance-matrix/pkg/datastructure"
)

// Unroll flattens the matrix into n*(n-1) directed records, origins then destinations in ascending id order.
// self pairs are skipped, +Inf distances are kept as they are.
func Unroll(m *datastructure.DistanceMatrix) []datastructure.DistanceRecord {
	n := m.NumberOfLocations()
	if n < 2 {
		return []datastructure.DistanceRecord{}
	}

	records := make([]datastructure.DistanceRecord, 0, n*(n-1))
	for i := 0; i < n; i++ {
		origin := m.GetID(datastructure.Index(i))
		row := m.Row(datastructure.Index(i))
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			records = append(records, datastructure.NewDistanceRecord(origin, m.GetID(datastructure.Index(j)), row[j]))
		}
	}
	return records
}
