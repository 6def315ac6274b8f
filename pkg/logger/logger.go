package logger

import (
	"time"

	"github.com/lintang-b-s/toll-distance-matrix/pkg/logger/config"
	myZap "github.com/lintang-b-s/toll-distance-matrix/pkg/logger/zap"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// New builds the process logger. level and time format come from TOLL_LOG_LEVEL / TOLL_LOG_TIME_FORMAT.
func New() (*zap.Logger, error) {
	v := viper.New()
	v.SetEnvPrefix("TOLL")
	v.AutomaticEnv()
	v.SetDefault("LOG_LEVEL", config.INFO_LEVEL)
	v.SetDefault("LOG_TIME_FORMAT", time.RFC3339Nano)
	v.SetDefault("LOG_ENCODING", config.CONSOLE_ENCODING)

	cfg := config.Configuration{
		Level:      v.GetInt("LOG_LEVEL"),
		TimeFormat: v.GetString("LOG_TIME_FORMAT"),
		Encoding:   v.GetString("LOG_ENCODING"),
	}

	return NewWithConfig(cfg)
}

func NewWithConfig(cfg config.Configuration) (*zap.Logger, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	log, err := myZap.New(cfg)
	if err != nil {
		return nil, err
	}

	return log, nil
}
