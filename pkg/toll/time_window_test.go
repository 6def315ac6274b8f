package toll

import (
	"testing"
	"time"

	"github.com/lintang-b-s/toll-distance-matrix/pkg"
	"github.com/lintang-b-s/toll-distance-matrix/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleTolls() []datastructure.TollRecord {
	return CalculateTollRates([]datastructure.DistanceRecord{
		datastructure.NewDistanceRecord(3, 1, 8),
		datastructure.NewDistanceRecord(1, 2, 5),
		datastructure.NewDistanceRecord(1, 3, 8),
		datastructure.NewDistanceRecord(2, 1, 5),
	})
}

func TestScheduleOrder(t *testing.T) {
	s := Schedule()
	require.Len(t, s, pkg.BANDS_PER_PAIR)

	assert.Equal(t, time.Monday, s[0].Day)
	assert.Equal(t, "00:00:00", s[0].Start.String())
	assert.Equal(t, "10:00:00", s[0].End.String())
	assert.Equal(t, "10:00:00", s[1].Start.String())
	assert.Equal(t, "18:00:00", s[1].End.String())
	assert.Equal(t, "18:00:00", s[2].Start.String())
	assert.Equal(t, "23:59:59", s[2].End.String())
	assert.Equal(t, time.Friday, s[14].Day)
	assert.Equal(t, time.Saturday, s[15].Day)
	assert.Equal(t, time.Sunday, s[16].Day)
	assert.Equal(t, "23:59:59", s[16].End.String())

	s[0].Factor = 99
	assert.Equal(t, 0.8, Schedule()[0].Factor)
}

func TestExpand(t *testing.T) {
	rows := NewTimeWindowExpander(1, zap.NewNop()).Expand(sampleTolls())
	require.Len(t, rows, 4*pkg.BANDS_PER_PAIR)

	// grouped by ascending (origin, destination)
	pairs := [][2]datastructure.LocationID{{1, 2}, {1, 3}, {2, 1}, {3, 1}}
	for p, pair := range pairs {
		for b := 0; b < pkg.BANDS_PER_PAIR; b++ {
			row := rows[p*pkg.BANDS_PER_PAIR+b]
			assert.Equal(t, pair[0], row.Origin)
			assert.Equal(t, pair[1], row.Destination)
			assert.Equal(t, row.StartDay, row.EndDay)
		}
	}

	// (1,3): car base 9.6
	ac := rows[pkg.BANDS_PER_PAIR : 2*pkg.BANDS_PER_PAIR]
	base := 8 * 1.2
	for i, row := range ac {
		var factor float64
		switch {
		case i >= 15:
			factor = 0.7
		case i%3 == 1:
			factor = 1.2
		default:
			factor = 0.8
		}
		for _, v := range pkg.VehicleClasses() {
			assert.InDelta(t, 8*Coefficient(v)*factor, row.GetToll(v), 1e-9, "band %d class %s", i, v)
		}
		assert.Equal(t, 8.0, row.Distance)
	}

	monPeak := ac[1]
	assert.Equal(t, time.Monday, monPeak.StartDay)
	assert.InDelta(t, 11.52, monPeak.GetToll(pkg.CAR), 1e-9)

	sat := ac[15]
	assert.Equal(t, time.Saturday, sat.StartDay)
	assert.InDelta(t, 6.72, sat.GetToll(pkg.CAR), 1e-9)

	sun := ac[16]
	assert.Equal(t, time.Sunday, sun.StartDay)
	assert.InDelta(t, base*0.7, sun.GetToll(pkg.CAR), 1e-9)
}

func TestExpandDoesNotMutateBase(t *testing.T) {
	tolls := sampleTolls()
	before := append([]datastructure.TollRecord(nil), tolls...)

	NewTimeWindowExpander(1, zap.NewNop()).Expand(tolls)
	assert.Equal(t, before, tolls)
}

func TestExpandDuplicatePairExpandedOnce(t *testing.T) {
	tolls := sampleTolls()
	tolls = append(tolls, tolls[0])

	rows := NewTimeWindowExpander(1, zap.NewNop()).Expand(tolls)
	assert.Len(t, rows, 4*pkg.BANDS_PER_PAIR)
}

func TestExpandParallelMatchesSequential(t *testing.T) {
	records := make([]datastructure.DistanceRecord, 0)
	for o := 1; o <= 12; o++ {
		for d := 1; d <= 12; d++ {
			if o != d {
				records = append(records, datastructure.NewDistanceRecord(
					datastructure.LocationID(o), datastructure.LocationID(d), float64(o*d)))
			}
		}
	}
	tolls := CalculateTollRates(records)

	seq := NewTimeWindowExpander(1, zap.NewNop()).Expand(tolls)
	par := NewTimeWindowExpander(8, zap.NewNop()).Expand(tolls)
	assert.Equal(t, seq, par)
	assert.Len(t, seq, len(records)*pkg.BANDS_PER_PAIR)
}

func TestExpandEmpty(t *testing.T) {
	rows := NewTimeWindowExpander(4, zap.NewNop()).Expand(nil)
	assert.Empty(t, rows)
}
