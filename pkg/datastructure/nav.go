package datastructure

type Coordinate struct {
	lat float64
	lon float64
}

func (c Coordinate) GetLat() float64 {
	return c.lat
}

func (c Coordinate) GetLon() float64 {
	return c.lon
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		lat: lat,
		lon: lon,
	}
}

// Location is a location id with its coordinate, used by the geo export.
type Location struct {
	id    LocationID
	coord Coordinate
}

func NewLocation(id LocationID, lat, lon float64) Location {
	return Location{
		id:    id,
		coord: NewCoordinate(lat, lon),
	}
}

func (l Location) GetID() LocationID {
	return l.id
}

func (l Location) GetCoordinate() Coordinate {
	return l.coord
}
