package cmd

import (
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/mobileinf/repocp/pkg/appconfig"
	"github.com/spf13/viper"
)

var flagConfigFile string

var TheAppConfig appconfig.Config

func initConfig() {
	if flagConfigFile != "" {
		viper.SetConfigFile(flagConfigFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(path.Join(home, ".repocp"))
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("REPOCP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Running without a config file is fine, everything has a default.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "error reading config '%v': %v\n", viper.ConfigFileUsed(), err)
		}
	}
	if err := viper.Unmarshal(&TheAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "error unmarshalling config '%v': %v\n", viper.ConfigFileUsed(), err)
	}
}
