package datastructure

import (
	"fmt"
	"time"

	"github.com/lintang-b-s/toll-distance-matrix/pkg"
)

// DistanceRecord is one directed (origin, destination) entry of the unrolled matrix.
type DistanceRecord struct {
	Origin      LocationID
	Destination LocationID
	Distance    float64
}

func NewDistanceRecord(origin, destination LocationID, distance float64) DistanceRecord {
	return DistanceRecord{
		Origin:      origin,
		Destination: destination,
		Distance:    distance,
	}
}

type TollRecord struct {
	DistanceRecord
	Tolls [pkg.NUM_VEHICLE_CLASSES]float64
}

func (t TollRecord) GetToll(v pkg.VehicleClass) float64 {
	return t.Tolls[v]
}

// ClockTime is a time of day in seconds since midnight.
type ClockTime uint32

const (
	Midnight   ClockTime = 0
	LastSecond ClockTime = 23*3600 + 59*60 + 59
)

func NewClockTime(hour, minute, second int) ClockTime {
	return ClockTime(hour*3600 + minute*60 + second)
}

// ParseClockTime parses HH:MM:SS.
func ParseClockTime(s string) (ClockTime, error) {
	var h, m, sec int
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	return NewClockTime(h, m, sec), nil
}

func (c ClockTime) Hour() int {
	return int(c) / 3600
}

func (c ClockTime) Minute() int {
	return int(c) % 3600 / 60
}

func (c ClockTime) Second() int {
	return int(c) % 60
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour(), c.Minute(), c.Second())
}

// TimeBandRecord is a toll record rescaled for one day/time band.
type TimeBandRecord struct {
	TollRecord
	StartDay  time.Weekday
	StartTime ClockTime
	EndDay    time.Weekday
	EndTime   ClockTime
}
