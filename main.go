package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"

	"github.com/lintang-b-s/toll-distance-matrix/pkg/config"
	"github.com/lintang-b-s/toll-distance-matrix/pkg/datastructure"
	"github.com/lintang-b-s/toll-distance-matrix/pkg/geo"
	"github.com/lintang-b-s/toll-distance-matrix/pkg/loader"
	"github.com/lintang-b-s/toll-distance-matrix/pkg/logger"
	"github.com/lintang-b-s/toll-distance-matrix/pkg/pipeline"
	"github.com/lintang-b-s/toll-distance-matrix/pkg/writer"
	"go.uber.org/zap"
)

var configPath = flag.String("config", "", "path to yaml config file")

func main() {
	flag.Parse()

	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	if err := run(cfg, log); err != nil {
		log.Fatal("toll pipeline failed", zap.Error(err))
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	ds, err := loader.NewLoader(log).LoadFile(cfg.DatasetPath)
	if err != nil {
		return err
	}

	res, err := pipeline.New(pipeline.Options{ExpanderWorkers: cfg.ExpanderWorkers}, log).Run(ds)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return err
	}
	out := func(name string) string {
		return filepath.Join(cfg.OutputDir, name)
	}

	if err := res.Matrix().WriteMatrix(out("distance_matrix.bz2")); err != nil {
		return err
	}
	if err := writer.WriteFile(out("distances.csv"), func(w io.Writer) error {
		return writer.WriteDistanceRecords(w, res.DistanceRecords())
	}); err != nil {
		return err
	}
	if err := writer.WriteFile(out("toll_rates.csv"), func(w io.Writer) error {
		return writer.WriteTollRecords(w, res.TollRecords())
	}); err != nil {
		return err
	}
	if err := writer.WriteFile(out("time_based_toll_rates.csv"), func(w io.Writer) error {
		return writer.WriteTimeBandRecords(w, res.TimeBandRecords())
	}); err != nil {
		return err
	}

	summary := writer.RunSummary{
		DatasetPath:     cfg.DatasetPath,
		Locations:       len(ds.IDs),
		Edges:           len(ds.Edges),
		DistanceRecords: len(res.DistanceRecords()),
		TollRecords:     len(res.TollRecords()),
		TimeBandRecords: len(res.TimeBandRecords()),
	}
	summary.SetWarning(res.Warning())

	if cfg.ReferenceID != 0 {
		th := &writer.ThresholdSummary{ReferenceID: cfg.ReferenceID, IDs: []int64{}}
		ids, err := res.FindIDsWithinThreshold(datastructure.LocationID(cfg.ReferenceID))
		if err != nil {
			log.Warn("threshold query failed", zap.Error(err))
			th.Error = err.Error()
		}
		for _, id := range ids {
			th.IDs = append(th.IDs, int64(id))
		}
		log.Sugar().Infof("%d locations within 10%% of reference %d", len(th.IDs), cfg.ReferenceID)
		summary.Threshold = th
	}

	if cfg.WriteGeoJSON {
		cat, err := geo.LoadLocations(cfg.LocationsPath, ds.IDs, log)
		if err != nil {
			return err
		}
		fc := geo.ExportGeoJSON(res.DistanceRecords(), cat, log)
		b, err := fc.MarshalJSON()
		if err != nil {
			return err
		}
		if err := os.WriteFile(out("distances.geojson"), b, 0644); err != nil {
			return err
		}
	}

	if err := writer.WriteFile(out("summary.yaml"), func(w io.Writer) error {
		return writer.WriteSummary(w, summary)
	}); err != nil {
		return err
	}

	log.Sugar().Infof("artifacts written to %s", cfg.OutputDir)
	return nil
}
