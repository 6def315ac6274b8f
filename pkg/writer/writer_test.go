package writer

import (
	"bytes"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lintang-b-s/toll-distance-matrix/pkg"
	"github.com/lintang-b-s/toll-distance-matrix/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDistanceRecords(t *testing.T) {
	var buf bytes.Buffer
	err := WriteDistanceRecords(&buf, []datastructure.DistanceRecord{
		datastructure.NewDistanceRecord(1, 3, 8),
		datastructure.NewDistanceRecord(1, 4, math.Inf(1)),
	})
	require.NoError(t, err)
	assert.Equal(t, "id_start,id_end,distance\n1,3,8\n1,4,+Inf\n", buf.String())
}

func TestWriteTollRecords(t *testing.T) {
	var buf bytes.Buffer
	rec := datastructure.TollRecord{
		DistanceRecord: datastructure.NewDistanceRecord(1, 3, 10),
		Tolls:          [pkg.NUM_VEHICLE_CLASSES]float64{8, 12, 15, 22, 36},
	}
	require.NoError(t, WriteTollRecords(&buf, []datastructure.TollRecord{rec}))
	assert.Equal(t, "id_start,id_end,distance,moto,car,rv,bus,truck\n1,3,10,8,12,15,22,36\n", buf.String())
}

func TestWriteTimeBandRecords(t *testing.T) {
	var buf bytes.Buffer
	rec := datastructure.TimeBandRecord{
		TollRecord: datastructure.TollRecord{
			DistanceRecord: datastructure.NewDistanceRecord(2, 1, 1),
			Tolls:          [pkg.NUM_VEHICLE_CLASSES]float64{0.5, 1, 1.5, 2, 2.5},
		},
		StartDay:  time.Saturday,
		StartTime: datastructure.Midnight,
		EndDay:    time.Saturday,
		EndTime:   datastructure.LastSecond,
	}
	require.NoError(t, WriteTimeBandRecords(&buf, []datastructure.TimeBandRecord{rec}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id_start,id_end,distance,moto,car,rv,bus,truck,start_day,start_time,end_day,end_time", lines[0])
	assert.Equal(t, "2,1,1,0.5,1,1.5,2,2.5,Saturday,00:00:00,Saturday,23:59:59", lines[1])
}

func TestWriteFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "distances.csv")
	err := WriteFile(filename, func(w io.Writer) error {
		return WriteDistanceRecords(w, []datastructure.DistanceRecord{datastructure.NewDistanceRecord(1, 2, 5)})
	})
	require.NoError(t, err)

	b, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "id_start,id_end,distance\n1,2,5\n", string(b))
}

func TestSummaryRoundTrip(t *testing.T) {
	s := RunSummary{
		DatasetPath:     "dataset.csv",
		Locations:       4,
		Edges:           2,
		DistanceRecords: 12,
		TollRecords:     12,
		TimeBandRecords: 204,
		Threshold:       &ThresholdSummary{ReferenceID: 1, IDs: []int64{1, 2}},
	}
	s.SetWarning(pkg.DisconnectedGraphWarning{UnreachablePairs: [][2]int64{{1, 3}}})

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, s))
	assert.Contains(t, buf.String(), "time_band_records: 204")

	got, err := ReadSummary(&buf)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}
