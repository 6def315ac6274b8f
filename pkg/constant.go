package pkg

// enum of vehicle_class
type VehicleClass uint8

const (
	MOTO VehicleClass = iota
	CAR
	RV
	BUS
	TRUCK
)

const (
	NUM_VEHICLE_CLASSES = 5
)

const (
	THRESHOLD_RATIO = 0.1

	// floyd-warshall is O(n^3) over a dense n*n matrix. fine for a few hundred locations, not more.
	MAX_RECOMMENDED_LOCATIONS = 500

	BANDS_PER_PAIR = 17
)

var vehicleClassNames = [NUM_VEHICLE_CLASSES]string{"moto", "car", "rv", "bus", "truck"}

func (v VehicleClass) String() string {
	if int(v) >= len(vehicleClassNames) {
		return "unknown"
	}
	return vehicleClassNames[v]
}

func VehicleClasses() []VehicleClass {
	return []VehicleClass{MOTO, CAR, RV, BUS, TRUCK}
}
