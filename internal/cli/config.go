package cli

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/yosefmih/fibseq/fibonacci"
)

const envPrefix = "FIBSEQ"

// Config holds the optional settings read from FIBSEQ_* environment variables.
type Config struct {
	Algorithm string
	LogLevel  string
}

func loadConfig(v *viper.Viper) Config {
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetDefault("algorithm", fibonacci.Default)
	v.SetDefault("log_level", logrus.WarnLevel.String())

	return Config{
		Algorithm: v.GetString("algorithm"),
		LogLevel:  v.GetString("log_level"),
	}
}

func newLogger(cfg Config, w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return log, nil
}
