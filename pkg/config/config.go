package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	// DatasetPath is the ID1,ID2,Distance csv (optionally .bz2).
	DatasetPath string `mapstructure:"dataset_path" yaml:"dataset_path"`
	// LocationsPath is an optional id,lat,lon csv or .osm.pbf used for the geojson export.
	LocationsPath   string `mapstructure:"locations_path" yaml:"locations_path"`
	OutputDir       string `mapstructure:"output_dir" yaml:"output_dir"`
	ReferenceID     int64  `mapstructure:"reference_id" yaml:"reference_id"`
	ExpanderWorkers int    `mapstructure:"expander_workers" yaml:"expander_workers"`
	WriteGeoJSON    bool   `mapstructure:"write_geojson" yaml:"write_geojson"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dataset_path", "./data/dataset-2.csv")
	v.SetDefault("locations_path", "")
	v.SetDefault("output_dir", "./output")
	v.SetDefault("reference_id", 0)
	v.SetDefault("expander_workers", 1)
	v.SetDefault("write_geojson", false)
}

// Load reads the optional yaml file at path, then applies TOLL_* environment overrides
// (e.g. TOLL_DATASET_PATH, TOLL_REFERENCE_ID).
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("TOLL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("could not read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("could not decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.DatasetPath == "":
		return errors.New("dataset_path must not be empty")
	case c.OutputDir == "":
		return errors.New("output_dir must not be empty")
	case c.ExpanderWorkers < 1:
		return errors.New("expander_workers should be greater than 0")
	case c.WriteGeoJSON && c.LocationsPath == "":
		return errors.New("write_geojson requires locations_path")
	}
	return nil
}
