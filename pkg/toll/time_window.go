package toll

import (
	"sort"
	"time"

	"github.com/lintang-b-s/toll-distance-matrix/pkg/concurrent"
	"github.com/lintang-b-s/toll-distance-matrix/pkg/datastructure"
	"go.uber.org/zap"
)

// TimeBand is a clock interval on one day with its toll factor.
type TimeBand struct {
	Day    time.Weekday
	Start  datastructure.ClockTime
	End    datastructure.ClockTime
	Factor float64
}

const (
	weekdayOffPeakFactor = 0.8
	weekdayPeakFactor    = 1.2
	weekendFactor        = 0.7
)

var (
	weekdays = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
	weekend  = []time.Weekday{time.Saturday, time.Sunday}

	weekdayBands = []struct {
		start, end datastructure.ClockTime
		factor     float64
	}{
		{datastructure.Midnight, datastructure.NewClockTime(10, 0, 0), weekdayOffPeakFactor},
		{datastructure.NewClockTime(10, 0, 0), datastructure.NewClockTime(18, 0, 0), weekdayPeakFactor},
		{datastructure.NewClockTime(18, 0, 0), datastructure.LastSecond, weekdayOffPeakFactor},
	}

	schedule = buildSchedule()
)

// Mon..Fri x morning, afternoon, evening, then Sat, Sun full day.
func buildSchedule() []TimeBand {
	bands := make([]TimeBand, 0, len(weekdays)*len(weekdayBands)+len(weekend))
	for _, day := range weekdays {
		for _, b := range weekdayBands {
			bands = append(bands, TimeBand{Day: day, Start: b.start, End: b.end, Factor: b.factor})
		}
	}
	for _, day := range weekend {
		bands = append(bands, TimeBand{Day: day, Start: datastructure.Midnight, End: datastructure.LastSecond, Factor: weekendFactor})
	}
	return bands
}

// Schedule returns a copy of the weekly band table in output order.
func Schedule() []TimeBand {
	return append([]TimeBand(nil), schedule...)
}

type TimeWindowExpander struct {
	workers int
	logger  *zap.Logger
}

func NewTimeWindowExpander(workers int, logger *zap.Logger) *TimeWindowExpander {
	return &TimeWindowExpander{
		workers: workers,
		logger:  logger,
	}
}

// Expand emits one record per (pair, band). rows are grouped by ascending (origin, destination);
// a pair given more than once is expanded once from its first record.
func (e *TimeWindowExpander) Expand(tolls []datastructure.TollRecord) []datastructure.TimeBandRecord {
	pairs := distinctPairs(tolls)

	var perPair [][]datastructure.TimeBandRecord
	if e.workers > 1 {
		perPair = concurrent.MapOrdered(e.workers, pairs, expandPair)
	} else {
		perPair = make([][]datastructure.TimeBandRecord, len(pairs))
		for i, p := range pairs {
			perPair[i] = expandPair(p)
		}
	}

	out := make([]datastructure.TimeBandRecord, 0, len(pairs)*len(schedule))
	for _, rows := range perPair {
		out = append(out, rows...)
	}
	e.logger.Sugar().Infof("expanded %d location pairs into %d time band records", len(pairs), len(out))
	return out
}

// every band scales the untouched base tolls, factors never compound.
func expandPair(base datastructure.TollRecord) []datastructure.TimeBandRecord {
	rows := make([]datastructure.TimeBandRecord, 0, len(schedule))
	for _, band := range schedule {
		row := datastructure.TimeBandRecord{
			TollRecord: datastructure.TollRecord{DistanceRecord: base.DistanceRecord},
			StartDay:   band.Day,
			StartTime:  band.Start,
			EndDay:     band.Day,
			EndTime:    band.End,
		}
		for v, toll := range base.Tolls {
			row.Tolls[v] = toll * band.Factor
		}
		rows = append(rows, row)
	}
	return rows
}

func distinctPairs(tolls []datastructure.TollRecord) []datastructure.TollRecord {
	type key struct {
		origin, destination datastructure.LocationID
	}
	seen := make(map[key]struct{}, len(tolls))
	pairs := make([]datastructure.TollRecord, 0, len(tolls))
	for _, t := range tolls {
		k := key{t.Origin, t.Destination}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		pairs = append(pairs, t)
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].Origin != pairs[j].Origin {
			return pairs[i].Origin < pairs[j].Origin
		}
		return pairs[i].Destination < pairs[j].Destination
	})
	return pairs
}
