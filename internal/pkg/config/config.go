package config

import (
	"strings"

	"github.com/DrRobsonAmuiJr/ROE/internal/pkg/constants"
	"github.com/spf13/viper"
)

// Load configures the global viper instance: defaults first, then an optional
// config.yaml next to the binary, then environment overrides (ROE_HTTP_ADDR etc.).
func Load() error {
	viper.SetDefault(constants.ViperKeyHTTPAddr, ":8080")
	viper.SetDefault(constants.ViperKeyDatabaseDSN, "postgres://localhost:5432/roe")
	viper.SetDefault(constants.ViperKeyCORSOrigin, "http://localhost:3000")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("roe")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	return nil
}
