package domain

import (
	"os"

	"gopkg.in/yaml.v3"
)

var config *RuntimeConfig

type RuntimeConfig struct {
	File FileConfig `yaml:"file"`
}

type FileConfig struct {
	Path        string `yaml:"path"`
	Codec       string `yaml:"codec"`
	InitialData string `yaml:"initial_data"`
}

// LoadConfigs loads the configuration file
func LoadConfigs(path string) (*RuntimeConfig, error) {
	config = &RuntimeConfig{}

	// search for the config file
	configData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// pase the config
	err = yaml.Unmarshal(configData, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}

func GetConfig() *RuntimeConfig {
	return config
}
