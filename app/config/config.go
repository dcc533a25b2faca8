package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Thresholds struct {
	District           float64 `yaml:"district" json:"district"`
	NeighborhoodFirst  float64 `yaml:"neighborhood_first" json:"neighborhood_first"`
	NeighborhoodSecond float64 `yaml:"neighborhood_second" json:"neighborhood_second"`
}

type Datasets struct {
	Provinces     string `yaml:"provinces" json:"provinces"`
	Districts     string `yaml:"districts" json:"districts"`
	Neighborhoods string `yaml:"neighborhoods" json:"neighborhoods"`
	Source        string `yaml:"source" json:"source"`
	Output        string `yaml:"output" json:"output"`
}

type ResolverCfg struct {
	Thresholds Thresholds `yaml:"thresholds" json:"thresholds"`
	Datasets   Datasets   `yaml:"datasets" json:"datasets"`
	CacheSize  int        `yaml:"cache_size" json:"cache_size"`
}

var C ResolverCfg

func Load(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, &C); err != nil {
		return err
	}
	applyDefaults()
	applyEnvOverrides()
	return nil
}

func applyDefaults() {
	if C.Thresholds.District == 0 {
		C.Thresholds.District = 0.90
	}
	if C.Thresholds.NeighborhoodFirst == 0 {
		C.Thresholds.NeighborhoodFirst = 0.93
	}
	if C.Thresholds.NeighborhoodSecond == 0 {
		C.Thresholds.NeighborhoodSecond = 0.85
	}
	if C.CacheSize == 0 {
		C.CacheSize = 10000
	}
}

// ENV overrides for threshold tuning without editing the config file.
func applyEnvOverrides() {
	if v, ok := floatEnv("DISTRICT_THRESHOLD"); ok {
		C.Thresholds.District = v
	}
	if v, ok := floatEnv("NEIGHBORHOOD_THRESHOLD_FIRST"); ok {
		C.Thresholds.NeighborhoodFirst = v
	}
	if v, ok := floatEnv("NEIGHBORHOOD_THRESHOLD_SECOND"); ok {
		C.Thresholds.NeighborhoodSecond = v
	}
}

func floatEnv(key string) (float64, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
