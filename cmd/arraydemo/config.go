package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix      = "ARRAYDEMO"
	configFileName = "arraydemo"
	configFileType = "yaml"

	cfgKeyFill      = "fill"
	cfgKeyFront     = "front"
	cfgKeySecond    = "second"
	cfgKeyThird     = "third"
	cfgKeyFactor    = "factor"
	cfgKeyFormat    = "format"
	cfgKeyLogLevel  = "log-level"
	cfgKeyLogFormat = "log-format"

	formatText = "text"
	formatYAML = "yaml"
)

var errInvalidConfig = errors.New("invalid configuration")

// config holds the resolved demo settings.
type config struct {
	Fill      int
	Front     int
	Second    int
	Third     int
	Factor    int
	Format    string
	LogLevel  string
	LogFormat string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(cfgKeyFill, 777)
	v.SetDefault(cfgKeyFront, 999)
	v.SetDefault(cfgKeySecond, 3)
	v.SetDefault(cfgKeyThird, 1234)
	v.SetDefault(cfgKeyFactor, 2)
	v.SetDefault(cfgKeyFormat, formatText)
	v.SetDefault(cfgKeyLogLevel, "warn")
	v.SetDefault(cfgKeyLogFormat, "text")
}

// loadConfig resolves settings with precedence flag > ARRAYDEMO_* env >
// config file > default. An explicit configFile must exist; otherwise
// arraydemo.yaml in the working directory is read if present.
func loadConfig(cmd *cobra.Command, configFile string) (config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return config{}, fmt.Errorf("bind flags: %w", err)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return config{}, fmt.Errorf("%w: read config: %w", errInvalidConfig, err)
		}
	}

	cfg := config{
		Fill:      v.GetInt(cfgKeyFill),
		Front:     v.GetInt(cfgKeyFront),
		Second:    v.GetInt(cfgKeySecond),
		Third:     v.GetInt(cfgKeyThird),
		Factor:    v.GetInt(cfgKeyFactor),
		Format:    strings.ToLower(v.GetString(cfgKeyFormat)),
		LogLevel:  v.GetString(cfgKeyLogLevel),
		LogFormat: v.GetString(cfgKeyLogFormat),
	}

	switch cfg.Format {
	case formatText, formatYAML:
	default:
		return config{}, fmt.Errorf("%w: unknown format %q", errInvalidConfig, cfg.Format)
	}

	return cfg, nil
}
