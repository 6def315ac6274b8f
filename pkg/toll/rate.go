package toll

import (
	"github.com/lintang-b-s/toll-distance-matrix/pkg"
	"github.com/lintang-b-s/toll-distance-matrix/pkg/datastructure"
)

// per distance unit
var rateCoefficients = [pkg.NUM_VEHICLE_CLASSES]float64{
	pkg.MOTO:  0.8,
	pkg.CAR:   1.2,
	pkg.RV:    1.5,
	pkg.BUS:   2.2,
	pkg.TRUCK: 3.6,
}

func Coefficient(v pkg.VehicleClass) float64 {
	return rateCoefficients[v]
}

func CalculateTollRate(r datastructure.DistanceRecord) datastructure.TollRecord {
	t := datastructure.TollRecord{DistanceRecord: r}
	for v, coefficient := range rateCoefficients {
		t.Tolls[v] = r.Distance * coefficient
	}
	return t
}

func CalculateTollRates(records []datastructure.DistanceRecord) []datastructure.TollRecord {
	tolls := make([]datastructure.TollRecord, len(records))
	for i, r := range records {
		tolls[i] = CalculateTollRate(r)
	}
	return tolls
}
