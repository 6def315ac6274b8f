package writer

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/lintang-b-s/toll-distance-matrix/pkg"
	"github.com/lintang-b-s/toll-distance-matrix/pkg/datastructure"
)

var (
	distanceHeader = []string{"id_start", "id_end", "distance"}
	bandHeader     = []string{"start_day", "start_time", "end_day", "end_time"}
)

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func distanceColumns(r datastructure.DistanceRecord) []string {
	return []string{
		strconv.FormatInt(int64(r.Origin), 10),
		strconv.FormatInt(int64(r.Destination), 10),
		formatFloat(r.Distance),
	}
}

func tollHeader() []string {
	header := append([]string(nil), distanceHeader...)
	for _, v := range pkg.VehicleClasses() {
		header = append(header, v.String())
	}
	return header
}

func tollColumns(r datastructure.TollRecord) []string {
	cols := distanceColumns(r.DistanceRecord)
	for _, v := range pkg.VehicleClasses() {
		cols = append(cols, formatFloat(r.GetToll(v)))
	}
	return cols
}

func WriteDistanceRecords(w io.Writer, records []datastructure.DistanceRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(distanceHeader); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(distanceColumns(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteTollRecords(w io.Writer, records []datastructure.TollRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tollHeader()); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(tollColumns(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteTimeBandRecords(w io.Writer, records []datastructure.TimeBandRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append(tollHeader(), bandHeader...)); err != nil {
		return err
	}
	for _, r := range records {
		cols := append(tollColumns(r.TollRecord),
			r.StartDay.String(), r.StartTime.String(),
			r.EndDay.String(), r.EndTime.String(),
		)
		if err := cw.Write(cols); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile creates filename and hands it to write.
func WriteFile(filename string, write func(w io.Writer) error) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := write(f); err != nil {
		return err
	}
	return f.Close()
}
