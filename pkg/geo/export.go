package geo

import (
	"math"

	"github.com/lintang-b-s/toll-distance-matrix/pkg/datastructure"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/twpayne/go-polyline"
	"go.uber.org/zap"
)

func PolylineFromCoords(path []datastructure.Coordinate) string {
	coords := make([][]float64, 0, len(path))
	for _, p := range path {
		coords = append(coords, []float64{p.GetLat(), p.GetLon()})
	}
	return string(polyline.EncodeCoords(coords))
}

// ExportGeoJSON turns distance records into LineString features between origin and destination.
// records with an endpoint missing from the catalogue are skipped. unreachable records get a null distance.
func ExportGeoJSON(records []datastructure.DistanceRecord, cat Catalogue, logger *zap.Logger) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	skipped := 0
	for _, r := range records {
		from, ok := cat.Get(r.Origin)
		if !ok {
			skipped++
			continue
		}
		to, ok := cat.Get(r.Destination)
		if !ok {
			skipped++
			continue
		}

		line := orb.LineString{
			orb.Point{from.GetLon(), from.GetLat()},
			orb.Point{to.GetLon(), to.GetLat()},
		}
		f := geojson.NewFeature(line)
		straight := GreatCircleDistance(from, to)

		f.Properties["id_start"] = int64(r.Origin)
		f.Properties["id_end"] = int64(r.Destination)
		f.Properties["straight_km"] = straight
		f.Properties["polyline"] = PolylineFromCoords([]datastructure.Coordinate{from, to})
		if math.IsInf(r.Distance, 1) {
			f.Properties["distance"] = nil
			f.Properties["reachable"] = false
		} else {
			f.Properties["distance"] = r.Distance
			f.Properties["reachable"] = true
			f.Properties["detour_ratio"] = DetourRatio(r.Distance, straight)
		}
		fc.Append(f)
	}
	if skipped > 0 {
		logger.Sugar().Infof("geojson export skipped %d records without coordinates", skipped)
	}
	return fc
}
