package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/toll-distance-matrix/pkg"
	"github.com/lintang-b-s/toll-distance-matrix/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleCSV = `ID1,ID2,Distance
1001400,1001402,9.7
1001402,1001404,20.2
1001404,1001406,16.0
1001402,1001400,8.5
`

func TestLoadObservations(t *testing.T) {
	t.Run("duplicate pair keeps minimum distance", func(t *testing.T) {
		ds, err := LoadObservations([]Observation{
			{Row: 1, ID1: "1", ID2: "2", Distance: "5"},
			{Row: 2, ID1: "2", ID2: "1", Distance: "3"},
			{Row: 3, ID1: "1", ID2: "2", Distance: "7"},
		})
		require.NoError(t, err)
		assert.Equal(t, []datastructure.LocationID{1, 2}, ds.IDs)
		assert.Equal(t, []Edge{{ID1: 1, ID2: 2, Distance: 3}}, ds.Edges)
	})

	t.Run("self row adds location without edge", func(t *testing.T) {
		ds, err := LoadObservations([]Observation{
			{Row: 1, ID1: "4", ID2: "4", Distance: "0"},
			{Row: 2, ID1: "3", ID2: "1", Distance: "2.5"},
		})
		require.NoError(t, err)
		assert.Equal(t, []datastructure.LocationID{1, 3, 4}, ds.IDs)
		assert.Equal(t, []Edge{{ID1: 1, ID2: 3, Distance: 2.5}}, ds.Edges)
	})

	t.Run("empty input gives empty dataset", func(t *testing.T) {
		ds, err := LoadObservations(nil)
		require.NoError(t, err)
		assert.Empty(t, ds.IDs)
		assert.Empty(t, ds.Edges)
	})

	malformed := []struct {
		name string
		obs  Observation
	}{
		{"missing distance", Observation{Row: 7, ID1: "1", ID2: "2"}},
		{"missing id", Observation{Row: 7, ID2: "2", Distance: "1"}},
		{"non integer id", Observation{Row: 7, ID1: "A", ID2: "2", Distance: "1"}},
		{"non numeric distance", Observation{Row: 7, ID1: "1", ID2: "2", Distance: "far"}},
		{"nan distance", Observation{Row: 7, ID1: "1", ID2: "2", Distance: "NaN"}},
		{"infinite distance", Observation{Row: 7, ID1: "1", ID2: "2", Distance: "+Inf"}},
	}
	for _, tt := range malformed {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := LoadObservations([]Observation{tt.obs})
			assert.Nil(t, ds)
			require.ErrorIs(t, err, pkg.ErrMalformedInput)

			var mErr *pkg.MalformedInputError
			require.True(t, errors.As(err, &mErr))
			assert.Equal(t, 7, mErr.Row)
		})
	}

	t.Run("negative distance", func(t *testing.T) {
		_, err := LoadObservations([]Observation{
			{Row: 1, ID1: "1", ID2: "2", Distance: "1"},
			{Row: 2, ID1: "2", ID2: "3", Distance: "-0.5"},
		})
		require.ErrorIs(t, err, pkg.ErrNegativeDistance)
		assert.ErrorIs(t, err, pkg.ErrMalformedInput)

		var nErr *pkg.NegativeDistanceError
		require.True(t, errors.As(err, &nErr))
		assert.Equal(t, 2, nErr.Row)
		assert.Equal(t, int64(2), nErr.ID1)
		assert.Equal(t, int64(3), nErr.ID2)
	})
}

func TestReadCSV(t *testing.T) {
	t.Run("reads rows by header name", func(t *testing.T) {
		rows, err := ReadCSV(strings.NewReader("Distance,extra,ID2,ID1\n4.5,x,2,1\n"))
		require.NoError(t, err)
		assert.Equal(t, []Observation{{Row: 1, ID1: "1", ID2: "2", Distance: "4.5"}}, rows)
	})

	t.Run("missing column", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader("ID1,ID2\n1,2\n"))
		assert.ErrorIs(t, err, pkg.ErrMalformedInput)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader(""))
		assert.ErrorIs(t, err, pkg.ErrMalformedInput)
	})

	t.Run("short row yields missing field", func(t *testing.T) {
		rows, err := ReadCSV(strings.NewReader("ID1,ID2,Distance\n1,2\n"))
		require.NoError(t, err)
		_, err = LoadObservations(rows)
		assert.ErrorIs(t, err, pkg.ErrMalformedInput)
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	l := NewLoader(zap.NewNop())

	t.Run("plain csv", func(t *testing.T) {
		path := filepath.Join(dir, "dataset.csv")
		require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0644))

		ds, err := l.LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []datastructure.LocationID{1001400, 1001402, 1001404, 1001406}, ds.IDs)
		assert.Len(t, ds.Edges, 3)
		assert.Equal(t, 8.5, ds.Edges[0].Distance)
	})

	t.Run("bzip2 csv", func(t *testing.T) {
		path := filepath.Join(dir, "dataset.csv.bz2")
		f, err := os.Create(path)
		require.NoError(t, err)
		bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
		require.NoError(t, err)
		_, err = bz.Write([]byte(sampleCSV))
		require.NoError(t, err)
		require.NoError(t, bz.Close())
		require.NoError(t, f.Close())

		ds, err := l.LoadFile(path)
		require.NoError(t, err)
		assert.Len(t, ds.IDs, 4)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := l.LoadFile(filepath.Join(dir, "missing.csv"))
		assert.Error(t, err)
	})
}
