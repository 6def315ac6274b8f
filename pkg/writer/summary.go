package writer

import (
	"io"

	"github.com/lintang-b-s/toll-distance-matrix/pkg"
	"gopkg.in/yaml.v3"
)

type ThresholdSummary struct {
	ReferenceID int64   `yaml:"reference_id"`
	IDs         []int64 `yaml:"ids"`
	Error       string  `yaml:"error,omitempty"`
}

// RunSummary is the yaml report written next to the csv artifacts.
type RunSummary struct {
	DatasetPath      string            `yaml:"dataset_path"`
	Locations        int               `yaml:"locations"`
	Edges            int               `yaml:"edges"`
	DistanceRecords  int               `yaml:"distance_records"`
	TollRecords      int               `yaml:"toll_records"`
	TimeBandRecords  int               `yaml:"time_band_records"`
	UnreachablePairs [][2]int64        `yaml:"unreachable_pairs,flow,omitempty"`
	Threshold        *ThresholdSummary `yaml:"threshold,omitempty"`
}

func (s *RunSummary) SetWarning(w pkg.DisconnectedGraphWarning) {
	s.UnreachablePairs = w.UnreachablePairs
}

func WriteSummary(w io.Writer, s RunSummary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}

func ReadSummary(r io.Reader) (RunSummary, error) {
	var s RunSummary
	err := yaml.NewDecoder(r).Decode(&s)
	return s, err
}
