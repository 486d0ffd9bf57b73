package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/pnl-dashboard/pkg/store/client"
	"github.com/spf13/viper"
)

const envPrefix = "PNL"

type Settings struct {
	Endpoint EndpointSettings `mapstructure:"endpoint"`
	Fetch    FetchSettings    `mapstructure:"fetch"`
	Server   ServerSettings   `mapstructure:"server"`
	Log      LogSettings      `mapstructure:"log"`
}

type EndpointSettings struct {
	URL         string `mapstructure:"url"`
	ResultsPath string `mapstructure:"results_path"`
}

type FetchSettings struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type ServerSettings struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type LogSettings struct {
	Level string `mapstructure:"level"`
}

// LoadSettings reads settings from the file at path (optional) with PNL_*
// environment overrides, e.g. PNL_ENDPOINT_URL or PNL_SERVER_PORT.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Settings
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("endpoint.url", client.DefaultEndpoint)
	v.SetDefault("endpoint.results_path", client.DefaultResultsPath)
	v.SetDefault("fetch.timeout", time.Duration(0))
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("log.level", "info")
}

// ApplyProfile overrides the endpoint settings with the ones of profile.
func (s *Settings) ApplyProfile(profile *Profile) {
	if profile == nil {
		return
	}
	s.Endpoint.URL = profile.Endpoint
	if profile.ResultsPath != "" {
		s.Endpoint.ResultsPath = profile.ResultsPath
	}
	if profile.Timeout > 0 {
		s.Fetch.Timeout = profile.Timeout
	}
}
