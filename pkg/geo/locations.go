package geo

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lintang-b-s/toll-distance-matrix/pkg"
	"github.com/lintang-b-s/toll-distance-matrix/pkg/datastructure"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"go.uber.org/zap"
)

// Catalogue maps location ids to coordinates.
type Catalogue map[datastructure.LocationID]datastructure.Location

func (c Catalogue) Get(id datastructure.LocationID) (datastructure.Coordinate, bool) {
	l, ok := c[id]
	if !ok {
		return datastructure.Coordinate{}, false
	}
	return l.GetCoordinate(), true
}

// LoadLocations picks the reader by file suffix: .osm.pbf or csv.
func LoadLocations(path string, wanted []datastructure.LocationID, logger *zap.Logger) (Catalogue, error) {
	if strings.HasSuffix(path, ".osm.pbf") {
		return LoadLocationsOSM(path, wanted, logger)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open locations file: %w", err)
	}
	defer f.Close()

	cat, err := ReadLocationsCSV(f)
	if err != nil {
		return nil, err
	}
	logger.Sugar().Infof("loaded %d location coordinates from %s", len(cat), path)
	return cat, nil
}

// ReadLocationsCSV reads an id,lat,lon csv with header.
func ReadLocationsCSV(r io.Reader) (Catalogue, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, pkg.NewMalformedInputError(0, nil, "empty locations file")
		}
		return nil, err
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	idx := make([]int, 0, 3)
	for _, name := range []string{"id", "lat", "lon"} {
		i, ok := cols[name]
		if !ok {
			return nil, pkg.NewMalformedInputError(0, header, fmt.Sprintf("missing column %s", name))
		}
		idx = append(idx, i)
	}

	cat := make(Catalogue)
	for row := 1; ; row++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, pkg.NewMalformedInputError(row, record, err.Error())
		}

		id, err := strconv.ParseInt(strings.TrimSpace(record[idx[0]]), 10, 64)
		if err != nil {
			return nil, pkg.NewMalformedInputError(row, record, "invalid location id")
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(record[idx[1]]), 64)
		if err != nil || lat < -90 || lat > 90 {
			return nil, pkg.NewMalformedInputError(row, record, "invalid latitude")
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(record[idx[2]]), 64)
		if err != nil || lon < -180 || lon > 180 {
			return nil, pkg.NewMalformedInputError(row, record, "invalid longitude")
		}
		cat[datastructure.LocationID(id)] = datastructure.NewLocation(datastructure.LocationID(id), lat, lon)
	}
	return cat, nil
}

// LoadLocationsOSM reads node coordinates from an openstreetmap pbf extract. the osm node id is the location id.
// only wanted ids are kept, all nodes if wanted is empty.
func LoadLocationsOSM(mapFile string, wanted []datastructure.LocationID, logger *zap.Logger) (Catalogue, error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, fmt.Errorf("could not open osm file: %w", err)
	}
	defer f.Close()

	want := make(map[int64]struct{}, len(wanted))
	for _, id := range wanted {
		want[int64(id)] = struct{}{}
	}

	scanner := osmpbf.New(context.Background(), f, 0)
	defer scanner.Close()
	scanner.SkipWays = true
	scanner.SkipRelations = true

	cat := make(Catalogue)
	countNodes := 0
	for scanner.Scan() {
		o := scanner.Object()
		if o.ObjectID().Type() != osm.TypeNode {
			continue
		}
		if (countNodes+1)%50000 == 0 {
			logger.Sugar().Infof("scanning openstreetmap nodes: %d...", countNodes+1)
		}
		countNodes++

		node := o.(*osm.Node)
		id := int64(node.ID)
		if _, ok := want[id]; len(want) > 0 && !ok {
			continue
		}
		cat[datastructure.LocationID(id)] = datastructure.NewLocation(datastructure.LocationID(id), node.Lat, node.Lon)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning osm file: %w", err)
	}

	logger.Sugar().Infof("found %d of %d wanted locations in %s", len(cat), len(want), mapFile)
	return cat, nil
}
