package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Database struct {
		Driver string `yaml:"driver"`
		URL    string `yaml:"url"`
	} `yaml:"database"`
	Redis struct {
		Addr string `yaml:"addr"`
	} `yaml:"redis"`
	JWT struct {
		SigningKey string `yaml:"signing_key"`
	} `yaml:"jwt"`
	Catalog struct {
		Conditions []string `yaml:"conditions"`
		Statuses   []string `yaml:"statuses"`
	} `yaml:"catalog"`
}

func LoadConfig() Config {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		log.Fatalf("Failed to unmarshal config data: %v", err)
	}

	// The enumerated value sets are configuration data; fall back to the
	// defaults when the file does not override them.
	if len(cfg.Catalog.Conditions) == 0 {
		cfg.Catalog.Conditions = []string{"new", "used", "for_parts"}
	}
	if len(cfg.Catalog.Statuses) == 0 {
		cfg.Catalog.Statuses = []string{"awaits", "accepted", "rejected"}
	}
	return cfg
}
