package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/toll-distance-matrix/pkg"
	"github.com/lintang-b-s/toll-distance-matrix/pkg/datastructure"
	"go.uber.org/zap"
)

const (
	ID1_COLUMN      = "ID1"
	ID2_COLUMN      = "ID2"
	DISTANCE_COLUMN = "Distance"
)

// Observation is one raw (id1, id2, distance) row as read from the tabular source.
type Observation struct {
	Row      int
	ID1      string
	ID2      string
	Distance string
}

func (o Observation) record() []string {
	return []string{o.ID1, o.ID2, o.Distance}
}

// Edge is an undirected edge with ID1 < ID2.
type Edge struct {
	ID1      datastructure.LocationID
	ID2      datastructure.LocationID
	Distance float64
}

type Dataset struct {
	IDs   []datastructure.LocationID
	Edges []Edge
}

type Loader struct {
	logger *zap.Logger
}

func NewLoader(logger *zap.Logger) *Loader {
	return &Loader{logger: logger}
}

// LoadFile reads a csv dataset. files ending with .bz2 are decompressed first.
func (l *Loader) LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open dataset: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".bz2") {
		bz, err := bzip2.NewReader(f, nil)
		if err != nil {
			return nil, fmt.Errorf("could not open bzip2 dataset: %w", err)
		}
		defer bz.Close()
		r = bz
	}

	rows, err := ReadCSV(r)
	if err != nil {
		return nil, err
	}
	l.logger.Sugar().Infof("read %d distance observations from %s", len(rows), path)

	ds, err := LoadObservations(rows)
	if err != nil {
		return nil, err
	}
	l.logger.Sugar().Infof("dataset has %d locations and %d distinct edges", len(ds.IDs), len(ds.Edges))
	return ds, nil
}

// ReadCSV reads rows with ID1, ID2 and Distance header columns. column order is free, extra columns are ignored.
func ReadCSV(r io.Reader) ([]Observation, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, pkg.NewMalformedInputError(0, nil, "empty input, missing header")
		}
		return nil, fmt.Errorf("could not read csv header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}
	idx := make([]int, 0, 3)
	for _, name := range []string{ID1_COLUMN, ID2_COLUMN, DISTANCE_COLUMN} {
		i, ok := cols[name]
		if !ok {
			return nil, pkg.NewMalformedInputError(0, header, fmt.Sprintf("missing column %s", name))
		}
		idx = append(idx, i)
	}

	field := func(record []string, i int) string {
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	rows := make([]Observation, 0)
	for row := 1; ; row++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, pkg.NewMalformedInputError(row, record, err.Error())
		}
		rows = append(rows, Observation{
			Row:      row,
			ID1:      field(record, idx[0]),
			ID2:      field(record, idx[1]),
			Distance: field(record, idx[2]),
		})
	}
	return rows, nil
}

type pairKey struct {
	a, b datastructure.LocationID
}

// LoadObservations validates rows and builds the sorted location universe and the edge list.
// the same unordered pair seen more than once keeps its minimum distance.
func LoadObservations(rows []Observation) (*Dataset, error) {
	ids := make([]datastructure.LocationID, 0, 2*len(rows))
	edges := make(map[pairKey]float64)

	for _, o := range rows {
		id1, id2, d, err := parseObservation(o)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id1, id2)
		if id1 == id2 {
			continue
		}
		if id2 < id1 {
			id1, id2 = id2, id1
		}
		key := pairKey{id1, id2}
		if old, ok := edges[key]; !ok || d < old {
			edges[key] = d
		}
	}

	ds := &Dataset{
		IDs:   datastructure.SortedUnique(ids),
		Edges: make([]Edge, 0, len(edges)),
	}
	for k, d := range edges {
		ds.Edges = append(ds.Edges, Edge{ID1: k.a, ID2: k.b, Distance: d})
	}
	sort.Slice(ds.Edges, func(i, j int) bool {
		if ds.Edges[i].ID1 != ds.Edges[j].ID1 {
			return ds.Edges[i].ID1 < ds.Edges[j].ID1
		}
		return ds.Edges[i].ID2 < ds.Edges[j].ID2
	})
	return ds, nil
}

func parseObservation(o Observation) (datastructure.LocationID, datastructure.LocationID, float64, error) {
	if o.ID1 == "" || o.ID2 == "" || o.Distance == "" {
		return 0, 0, 0, pkg.NewMalformedInputError(o.Row, o.record(), "missing required field")
	}

	id1, err := strconv.ParseInt(o.ID1, 10, 64)
	if err != nil {
		return 0, 0, 0, pkg.NewMalformedInputError(o.Row, o.record(), fmt.Sprintf("invalid %s %q", ID1_COLUMN, o.ID1))
	}
	id2, err := strconv.ParseInt(o.ID2, 10, 64)
	if err != nil {
		return 0, 0, 0, pkg.NewMalformedInputError(o.Row, o.record(), fmt.Sprintf("invalid %s %q", ID2_COLUMN, o.ID2))
	}

	d, err := strconv.ParseFloat(o.Distance, 64)
	if err != nil || math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, 0, 0, pkg.NewMalformedInputError(o.Row, o.record(), fmt.Sprintf("non-numeric distance %q", o.Distance))
	}
	if d < 0 {
		return 0, 0, 0, &pkg.NegativeDistanceError{Row: o.Row, ID1: id1, ID2: id2, Distance: d}
	}

	return datastructure.LocationID(id1), datastructure.LocationID(id2), d, nil
}
