package store

import (
	"log"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config interface {
	BasePath() string
	ExportDir() string
}

func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.oneiro.db")
	viper.SetDefault("exportdir", "~/Downloads")
	viper.SetConfigName(".oneiro") // .yaml is implicit
	viper.SetEnvPrefix("ONEIRO")
	viper.AutomaticEnv()

	if override := os.Getenv("ONEIRO_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	return &fileConfig{
		Path:   expand(viper.GetString("path")),
		Export: expand(viper.GetString("exportdir")),
	}, nil
}

func expand(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}

type fileConfig struct {
	Path   string `json:"path"`
	Export string `json:"exportdir"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) ExportDir() string {
	return f.Export
}
