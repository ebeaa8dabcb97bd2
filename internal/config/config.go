package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Spike struct {
	At       float64 `yaml:"at"`       // секунда старта
	Duration float64 `yaml:"duration"` // длительность
	Factor   float64 `yaml:"factor"`   // множитель к arrival_rate
}

type Config struct {
	Generator struct {
		Seed *int32 `yaml:"seed"` // nil -> DefaultSeed
	} `yaml:"generator"`

	Bench struct {
		Iterations int      `yaml:"iterations"` // значений за один проход
		Rounds     int      `yaml:"rounds"`
		Kinds      []string `yaml:"kinds"`
	} `yaml:"bench"`

	Analysis struct {
		Samples int    `yaml:"samples"`
		Bins    int    `yaml:"bins"`
		Kind    string `yaml:"kind"` // float32 | float64 | decimal
	} `yaml:"analysis"`

	Simulation struct {
		TimeSeconds float64 `yaml:"time_seconds"`
		StepSeconds float64 `yaml:"step_seconds"` // шаг для snapshot'ов очереди
		ArrivalRate float64 `yaml:"arrival_rate"` // jobs/s, \lambda Пуассона
		ServiceMean float64 `yaml:"service_mean"` // секунд
		ServiceCV   float64 `yaml:"service_cv"`
		Spikes      []Spike `yaml:"spikes"`
	} `yaml:"simulation"`

	Output struct {
		Dir   string `yaml:"dir"`
		Plots bool   `yaml:"plots"`
	} `yaml:"output"`
}

// DefaultSeed is the seed used by the reference benchmark.
const DefaultSeed = 783247234

var DefaultKinds = []string{"int32", "int16", "uint8", "float64", "int64", "bytes"}

func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("error when parsing config: %w", err)
	}

	fillDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("error when validating config: %w", err)
	}
	return &cfg, nil
}

func Default() *Config {
	var cfg Config
	fillDefaults(&cfg)
	return &cfg
}

func fillDefaults(c *Config) {
	if c.Generator.Seed == nil {
		seed := int32(DefaultSeed)
		c.Generator.Seed = &seed
	}
	if c.Bench.Iterations == 0 {
		c.Bench.Iterations = 100_000
	}
	if c.Bench.Rounds == 0 {
		c.Bench.Rounds = 5
	}
	if len(c.Bench.Kinds) == 0 {
		c.Bench.Kinds = append([]string(nil), DefaultKinds...)
	}
	if c.Analysis.Samples == 0 {
		c.Analysis.Samples = 1_000_000
	}
	if c.Analysis.Bins == 0 {
		c.Analysis.Bins = 100
	}
	if c.Analysis.Kind == "" {
		c.Analysis.Kind = "float64"
	}
	if c.Simulation.TimeSeconds == 0 {
		c.Simulation.TimeSeconds = 600
	}
	if c.Simulation.StepSeconds == 0 {
		c.Simulation.StepSeconds = 1
	}
	if c.Simulation.ArrivalRate == 0 {
		c.Simulation.ArrivalRate = 8
	}
	if c.Simulation.ServiceMean == 0 {
		c.Simulation.ServiceMean = 0.1
	}
	if c.Simulation.ServiceCV == 0 {
		c.Simulation.ServiceCV = 0.5
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "./results"
	}
}

// Seed returns the configured generator seed. Zero is a valid seed.
func (c *Config) Seed() int32 {
	if c.Generator.Seed == nil {
		return DefaultSeed
	}
	return *c.Generator.Seed
}

func (c *Config) SetSeed(seed int32) {
	c.Generator.Seed = &seed
}

func (c *Config) Validate() error {
	var errs []error
	if c.Bench.Iterations < 0 {
		errs = append(errs, fmt.Errorf("bench.iterations must be >= 0, got %d", c.Bench.Iterations))
	}
	if c.Bench.Rounds < 1 {
		errs = append(errs, fmt.Errorf("bench.rounds must be >= 1, got %d", c.Bench.Rounds))
	}
	if c.Analysis.Samples < 1 {
		errs = append(errs, fmt.Errorf("analysis.samples must be >= 1, got %d", c.Analysis.Samples))
	}
	if c.Analysis.Bins < 2 {
		errs = append(errs, fmt.Errorf("analysis.bins must be >= 2, got %d", c.Analysis.Bins))
	}
	switch c.Analysis.Kind {
	case "float32", "float64", "decimal":
	default:
		errs = append(errs, fmt.Errorf("analysis.kind %q is not a [0,1) kind", c.Analysis.Kind))
	}
	if c.Simulation.StepSeconds <= 0 || c.Simulation.TimeSeconds <= 0 {
		errs = append(errs, errors.New("simulation.time_seconds and step_seconds must be > 0"))
	}
	if c.Simulation.ArrivalRate <= 0 {
		errs = append(errs, fmt.Errorf("simulation.arrival_rate must be > 0, got %v", c.Simulation.ArrivalRate))
	}
	if c.Simulation.ServiceMean <= 0 || c.Simulation.ServiceCV <= 0 {
		errs = append(errs, errors.New("simulation.service_mean and service_cv must be > 0"))
	}
	for i, sp := range c.Simulation.Spikes {
		if sp.At < 0 || sp.Duration <= 0 || sp.Factor <= 0 {
			errs = append(errs, fmt.Errorf("simulation.spikes[%d] is invalid", i))
		}
	}
	return errors.Join(errs...)
}
