package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Openai struct {
		ApiKey string `yaml:"apiKey"`
	} `yaml:"openai"`

	Gemini struct {
		ApiKey string `yaml:"apiKey"`
	} `yaml:"gemini"`

	Frontend struct {
		Origins []string `yaml:"origins"`
		Dist    string   `yaml:"dist"`
	} `yaml:"frontend"`

	Dataset struct {
		Dir string `yaml:"dir"`
	} `yaml:"dataset"`

	Log struct {
		Json  bool `yaml:"json"`
		Debug bool `yaml:"debug"`
	} `yaml:"log"`
}

// LoadConfig reads the configuration file and applies environment
// overrides. A missing file is not an error so the server can run from
// environment variables alone.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	applyEnv(&cfg)

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Dataset.Dir == "" {
		cfg.Dataset.Dir = "datasets"
	}
	if cfg.Frontend.Dist == "" {
		cfg.Frontend.Dist = "frontend/dist"
	}
	if len(cfg.Frontend.Origins) == 0 {
		cfg.Frontend.Origins = []string{
			"http://localhost:8080",
			"http://127.0.0.1:8080",
			"http://localhost:3000",
			"http://127.0.0.1:3000",
		}
	}

	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.Openai.ApiKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Gemini.ApiKey = v
	}
	if v := os.Getenv("FRONTEND_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.Frontend.Origins = origins
		}
	}
	if v := os.Getenv("DATASET_DIR"); v != "" {
		cfg.Dataset.Dir = v
	}
	if v := os.Getenv("FRONTEND_DIST"); v != "" {
		cfg.Frontend.Dist = v
	}
}
