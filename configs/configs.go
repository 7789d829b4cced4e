package configs

import (
	"errors"

	"github.com/spf13/viper"
)

type Conf struct {
	AppEnv            string `mapstructure:"APP_ENV"`
	ServiceName       string `mapstructure:"SERVICE_NAME"`
	OtelCollectorAddr string `mapstructure:"OTEL_COLLECTOR_ADDR"`
}

func (c *Conf) IsProd() bool {
	return c.AppEnv == "production"
}

// LoadConfig reads path/.env when present; environment variables always win.
func LoadConfig(path string) (*Conf, error) {
	var cfg *Conf

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("SERVICE_NAME", "acme")
	v.SetDefault("OTEL_COLLECTOR_ADDR", "")

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
